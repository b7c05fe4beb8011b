// Package encoding classifies raw message bytes as ASCII, UTF-8, UTF-16
// or ISO-8859-1 and decodes them to text for the parser. Detection is a
// small fixed cascade: byte-order marks first, then a UTF-8 validity
// scan, with Latin-1 as the high-byte fallback that never fails.
package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Result describes one detection run.
type Result struct {
	Encoding     string `json:"encoding"`     // canonical label: ASCII, UTF-8, UTF-16LE, UTF-16BE, ISO-8859-1
	HasBOM       bool   `json:"hasBom"`
	HasHighBytes bool   `json:"hasHighBytes"`
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Detect classifies buf without decoding it.
func Detect(buf []byte) Result {
	switch {
	case bytes.HasPrefix(buf, bomUTF8):
		return Result{Encoding: "UTF-8", HasBOM: true, HasHighBytes: hasHighBytes(buf)}
	case bytes.HasPrefix(buf, bomUTF16LE):
		return Result{Encoding: "UTF-16LE", HasBOM: true, HasHighBytes: true}
	case bytes.HasPrefix(buf, bomUTF16BE):
		return Result{Encoding: "UTF-16BE", HasBOM: true, HasHighBytes: true}
	}
	if !hasHighBytes(buf) {
		return Result{Encoding: "ASCII"}
	}
	if utf8.Valid(buf) {
		return Result{Encoding: "UTF-8", HasHighBytes: true}
	}
	return Result{Encoding: "ISO-8859-1", HasHighBytes: true}
}

// Decode detects buf and returns its text along with the detection
// result. ISO-8859-1 decoding cannot fail; the UTF-16 paths surface
// transform errors from truncated input.
func Decode(buf []byte) (string, Result, error) {
	res := Detect(buf)
	switch res.Encoding {
	case "ASCII":
		return string(buf), res, nil
	case "UTF-8":
		if res.HasBOM {
			buf = buf[len(bomUTF8):]
		}
		return string(buf), res, nil
	case "UTF-16LE", "UTF-16BE":
		endian := unicode.LittleEndian
		if res.Encoding == "UTF-16BE" {
			endian = unicode.BigEndian
		}
		dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
		out, err := dec.Bytes(buf)
		if err != nil {
			return "", res, fmt.Errorf("encoding: decode %s: %w", res.Encoding, err)
		}
		return string(out), res, nil
	default:
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
		if err != nil {
			return "", res, fmt.Errorf("encoding: decode latin-1: %w", err)
		}
		return string(out), res, nil
	}
}

func hasHighBytes(buf []byte) bool {
	for _, b := range buf {
		if b >= 0x80 {
			return true
		}
	}
	return false
}

// MSH18ToEncoding maps the character-set names messages declare in
// MSH-18 to the canonical labels Detect produces, so a declared/detected
// mismatch can be surfaced as a data-quality note.
var MSH18ToEncoding = map[string]string{
	"ASCII":         "ASCII",
	"UNICODE UTF-8": "UTF-8",
	"UNICODE":       "UTF-8",
	"8859/1":        "ISO-8859-1",
	"8859/2":        "ISO-8859-2",
	"8859/15":       "ISO-8859-15",
}

// DeclaredMatches reports whether a declared MSH-18 token is consistent
// with the detected encoding. Unknown declarations are not treated as
// mismatches. ASCII bytes are valid under every declared set.
func DeclaredMatches(declared string, res Result) bool {
	want, ok := MSH18ToEncoding[declared]
	if !ok {
		return true
	}
	if res.Encoding == "ASCII" {
		return true
	}
	return want == res.Encoding
}
