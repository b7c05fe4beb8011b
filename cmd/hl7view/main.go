package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/klauseduard/hl7-tools/internal/anonymize"
	hl7crypto "github.com/klauseduard/hl7-tools/internal/crypto"
	"github.com/klauseduard/hl7-tools/internal/diff"
	"github.com/klauseduard/hl7-tools/internal/encoding"
	"github.com/klauseduard/hl7-tools/internal/hl7"
	"github.com/klauseduard/hl7-tools/internal/mllp"
	"github.com/klauseduard/hl7-tools/internal/profile"
	"github.com/klauseduard/hl7-tools/internal/render"
	"github.com/klauseduard/hl7-tools/internal/report"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	switch cmd {
	case "view":
		viewCmd(os.Args[2:])
	case "raw":
		rawCmd(os.Args[2:])
	case "field":
		fieldCmd(os.Args[2:])
	case "diff":
		diffCmd(os.Args[2:])
	case "anon":
		anonCmd(os.Args[2:])
	case "send":
		sendCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	case "-V", "--version":
		fmt.Printf("hl7view %s (built %s)\n", version, buildDate)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `hl7view %s (built %s) <command> [options]

Commands:
  view      [--verbose] [--empty] [--no-color] [--hl7-version <ver>] [--profile <profile.json>] [FILE...]
  raw       [FILE...]
  field     --addr <SEG-N> [FILE]
  diff      [--no-color] [--identical] [--json <out.json>] [--pdf <out.pdf>] [--lang en|et] FILE_A FILE_B
  anon      [--non-ascii] [--seed <n>] [--audit <log.jsonl>] [FILE]
  send      --to <host:port> [--timeout <sec>] [--no-wait] [--tls] [--tls-ca <pem>] [--tls-cert <pem> --tls-key <pem>] [--tls-insecure] [FILE]
  validate  --profile <profile.json> [FILE]

With no FILE, view/raw/field/anon/send/validate read the message from stdin.
`, version, buildDate)
}

// readMessage loads one message from a file or stdin, decoding byte
// encodings the way the viewer does.
func readMessage(path string) (string, encoding.Result, error) {
	var raw []byte
	var err error
	if path == "" || path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return "", encoding.Result{}, err
	}
	text, res, err := encoding.Decode(raw)
	if err != nil {
		return "", res, err
	}
	return text, res, nil
}

func parseMessage(path string) (*hl7.ParsedMessage, encoding.Result, error) {
	text, res, err := readMessage(path)
	if err != nil {
		return nil, res, err
	}
	msg, err := hl7.Parse(text)
	if err != nil {
		return nil, res, err
	}
	return msg, res, nil
}

// stdinFallback returns the positional files, or one stdin marker when
// there are none.
func stdinFallback(args []string) []string {
	if len(args) == 0 {
		return []string{""}
	}
	return args
}

func isTTY() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func loadProfileFlag(path string) *profile.Profile {
	if path == "" {
		return nil
	}
	p, err := profile.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load profile:", err)
		os.Exit(1)
	}
	return p
}

func viewCmd(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "show component breakdown")
	empty := fs.Bool("empty", false, "include empty fields")
	noColor := fs.Bool("no-color", false, "disable colors")
	hl7Version := fs.String("hl7-version", "", "force definition version (2.3, 2.5 or 2.8)")
	profilePath := fs.String("profile", "", "integration profile JSON")
	anon := fs.Bool("anon", false, "anonymize PHI fields (ASCII pool)")
	anonNonASCII := fs.Bool("anon-non-ascii", false, "anonymize PHI fields (non-ASCII pool)")
	fs.Parse(args)

	prof := loadProfileFlag(*profilePath)
	opts := render.Options{
		Color:     !*noColor && isTTY(),
		Verbose:   *verbose,
		ShowEmpty: *empty,
		Version:   *hl7Version,
		Profile:   prof,
	}

	ok := true
	for i, path := range stdinFallback(fs.Args()) {
		if i > 0 {
			fmt.Println()
		}
		msg, encRes, err := parseMessage(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", displayName(path), err)
			ok = false
			continue
		}
		if *anon || *anonNonASCII {
			msg = anonymize.New(*anonNonASCII).Message(msg)
		}
		if header := render.EncodingHeader(encRes, msg.DeclaredCharset, opts.Color); header != "" {
			fmt.Println(header)
		}
		fmt.Print(render.Message(msg, opts))
	}
	if !ok {
		os.Exit(1)
	}
}

func rawCmd(args []string) {
	fs := flag.NewFlagSet("raw", flag.ExitOnError)
	fs.Parse(args)

	for _, path := range stdinFallback(fs.Args()) {
		msg, _, err := parseMessage(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read %s: %v\n", displayName(path), err)
			os.Exit(1)
		}
		fmt.Print(render.Raw(msg))
	}
}

func fieldCmd(args []string) {
	fs := flag.NewFlagSet("field", flag.ExitOnError)
	addr := fs.String("addr", "", "field address, e.g. PID-5 or OBX[2]-3")
	fs.Parse(args)

	if *addr == "" {
		fmt.Fprintln(os.Stderr, "required: --addr")
		os.Exit(1)
	}
	path := ""
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	msg, _, err := parseMessage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", displayName(path), err)
		os.Exit(1)
	}
	val, ok := render.FieldValue(msg, *addr)
	if !ok {
		fmt.Fprintf(os.Stderr, "field %s not found\n", *addr)
		os.Exit(1)
	}
	fmt.Println(val)
}

func diffCmd(args []string) {
	fs := flag.NewFlagSet("diff", flag.ExitOnError)
	noColor := fs.Bool("no-color", false, "disable colors")
	identical := fs.Bool("identical", false, "show identical fields too")
	jsonOut := fs.String("json", "", "write comparison document JSON")
	pdfOut := fs.String("pdf", "", "write comparison report PDF")
	langFlag := fs.String("lang", "en", "report language (en, et)")
	signKey := fs.String("sign-key", "", "RSA private key PEM, writes a .jws sidecar next to --json")
	fs.Parse(args)

	if *signKey != "" && *jsonOut == "" {
		fmt.Fprintln(os.Stderr, "--sign-key requires --json")
		os.Exit(1)
	}

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "diff requires exactly 2 files")
		os.Exit(1)
	}
	pathA, pathB := fs.Arg(0), fs.Arg(1)
	a, _, err := parseMessage(pathA)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", pathA, err)
		os.Exit(1)
	}
	b, _, err := parseMessage(pathB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", pathB, err)
		os.Exit(1)
	}

	d := diff.Compare(a, b)
	fmt.Print(render.Diff(d, render.DiffOptions{
		Color:         !*noColor && isTTY(),
		ShowIdentical: *identical,
	}))

	if *jsonOut == "" && *pdfOut == "" {
		return
	}
	doc := report.Build(pathA, pathB, d)
	if *jsonOut != "" {
		if err := report.SaveJSON(doc, *jsonOut); err != nil {
			fmt.Fprintln(os.Stderr, "write json:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *jsonOut)
		if *signKey != "" {
			if err := signReport(*jsonOut, *signKey); err != nil {
				fmt.Fprintln(os.Stderr, "sign report:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote", *jsonOut+".jws")
		}
	}
	if *pdfOut != "" {
		lang, err := report.ParseLanguage(*langFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := report.SavePDF(doc, *pdfOut, lang); err != nil {
			fmt.Fprintln(os.Stderr, "write pdf:", err)
			os.Exit(1)
		}
		fmt.Println("Wrote", *pdfOut)
	}
}

// signReport writes a detached JWS sidecar covering the saved JSON
// document.
func signReport(jsonPath, keyPath string) error {
	payload, err := os.ReadFile(jsonPath)
	if err != nil {
		return err
	}
	keyPEM, err := os.ReadFile(keyPath)
	if err != nil {
		return err
	}
	j, err := hl7crypto.SignDetachedJWS(payload, keyPEM)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(jsonPath+".jws", append(data, '\n'), 0o644)
}

func anonCmd(args []string) {
	fs := flag.NewFlagSet("anon", flag.ExitOnError)
	nonASCII := fs.Bool("non-ascii", false, "use the non-ASCII replacement pool")
	seed := fs.String("seed", "", "RNG seed for reproducible output")
	auditPath := fs.String("audit", "", "write audit trail (jsonl)")
	fs.Parse(args)

	path := ""
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	msg, _, err := parseMessage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", displayName(path), err)
		os.Exit(1)
	}

	var anon *anonymize.Anonymizer
	if *seed != "" {
		n, err := strconv.ParseInt(*seed, 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "invalid seed:", err)
			os.Exit(1)
		}
		anon = anonymize.NewSeeded(*nonASCII, n)
	} else {
		anon = anonymize.New(*nonASCII)
	}
	if *auditPath != "" {
		anon.Audit = anonymize.NewAuditLog(*auditPath)
	}

	scrubbed := anon.Message(msg)
	fmt.Print(render.Raw(scrubbed))
	if *auditPath != "" {
		fmt.Fprintln(os.Stderr, "Audit log:", *auditPath)
	}
}

func sendCmd(args []string) {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	to := fs.String("to", "", "target host:port")
	timeout := fs.Int("timeout", 10, "send timeout in seconds")
	noWait := fs.Bool("no-wait", false, "fire and forget (do not wait for ACK)")
	useTLS := fs.Bool("tls", false, "enable TLS")
	tlsCA := fs.String("tls-ca", "", "CA certificate PEM for server verification")
	tlsCert := fs.String("tls-cert", "", "client certificate PEM (enables mTLS)")
	tlsKey := fs.String("tls-key", "", "client private key PEM")
	tlsInsecure := fs.Bool("tls-insecure", false, "skip server certificate verification")
	noColor := fs.Bool("no-color", false, "disable colors")
	fs.Parse(args)

	if *to == "" {
		fmt.Fprintln(os.Stderr, "required: --to")
		os.Exit(1)
	}
	if *tlsCert != "" && *tlsKey == "" {
		fmt.Fprintln(os.Stderr, "--tls-cert requires --tls-key")
		os.Exit(1)
	}

	path := ""
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	msg, _, err := parseMessage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", displayName(path), err)
		os.Exit(1)
	}

	var tlsOpts *mllp.TLSOptions
	if *useTLS || *tlsCA != "" || *tlsCert != "" || *tlsInsecure {
		tlsOpts = &mllp.TLSOptions{
			CACert:     *tlsCA,
			ClientCert: *tlsCert,
			ClientKey:  *tlsKey,
			Insecure:   *tlsInsecure,
		}
	}
	client := &mllp.Client{
		Addr:    *to,
		Timeout: time.Duration(*timeout) * time.Second,
		TLS:     tlsOpts,
	}

	result, err := client.Send(context.Background(), hl7.Reconstruct(msg), !*noWait)
	if err != nil {
		fmt.Fprintln(os.Stderr, "send:", err)
		os.Exit(1)
	}

	tlsLabel := ""
	if tlsOpts != nil {
		tlsLabel = " TLS"
		if tlsOpts.ClientCert != "" {
			tlsLabel = " mTLS"
		}
	}
	elapsedMS := result.Elapsed.Milliseconds()

	if *noWait {
		fmt.Printf("Sent to %s (%dms%s, no-wait)\n", *to, elapsedMS, tlsLabel)
		return
	}
	if result.Response == "" {
		fmt.Fprintf(os.Stderr, "empty response from %s\n", *to)
		os.Exit(1)
	}

	fmt.Printf("Response from %s (%dms%s):\n", *to, elapsedMS, tlsLabel)
	resp, err := hl7.Parse(result.Response)
	if err != nil {
		// Not parseable as a message; show it as-is.
		fmt.Println(result.Response)
		return
	}
	fmt.Print(render.Message(resp, render.Options{Color: !*noColor && isTTY()}))

	switch ackCode(resp) {
	case "", "AA", "CA":
	default:
		os.Exit(1)
	}
}

// ackCode extracts the MSA-1 acknowledgment code from a response.
func ackCode(msg *hl7.ParsedMessage) string {
	msa := msg.Segment("MSA", 1)
	if msa == nil {
		return ""
	}
	f := msa.Field(1)
	if f == nil {
		return ""
	}
	return f.Value
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	profilePath := fs.String("profile", "", "integration profile JSON")
	fs.Parse(args)

	prof := loadProfileFlag(*profilePath)
	path := ""
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	msg, _, err := parseMessage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", displayName(path), err)
		os.Exit(1)
	}

	findings := profile.Validate(msg, prof)
	errors := 0
	for _, f := range findings {
		fmt.Printf("%-7s %-12s %s: %s\n", f.Severity, f.Address, f.Code, f.Message)
		if f.Severity == profile.SeverityError {
			errors++
		}
	}
	if len(findings) == 0 {
		fmt.Println("No findings")
	}
	if errors > 0 {
		os.Exit(1)
	}
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "(stdin)"
	}
	return path
}
