// Package server exposes the parsing, comparison and anonymization
// operations over HTTP. All endpoints speak JSON; message payloads
// travel as plain strings inside the request body.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/klauseduard/hl7-tools/internal/anonymize"
	"github.com/klauseduard/hl7-tools/internal/defs"
	"github.com/klauseduard/hl7-tools/internal/diff"
	"github.com/klauseduard/hl7-tools/internal/encoding"
	"github.com/klauseduard/hl7-tools/internal/hl7"
	"github.com/klauseduard/hl7-tools/internal/profile"
	"github.com/klauseduard/hl7-tools/internal/report"
)

// Server holds the daemon's request-independent state.
type Server struct {
	maxBody  int64
	logger   *log.Logger
	profiles map[string]*profile.Profile
}

// NewServer constructs a Server from options, loading every configured
// profile overlay.
func NewServer(opts Options) (*Server, error) {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	profiles, err := loadProfiles(opts.ProfilePaths)
	if err != nil {
		return nil, err
	}
	return &Server{
		maxBody:  maxBody,
		logger:   logger,
		profiles: profiles,
	}, nil
}

// decodeRequest enforces the body limit and parses the JSON request.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, fmt.Sprintf("invalid json: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

// lookupProfile resolves an optional profile name from a request.
func (s *Server) lookupProfile(name string) (*profile.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	p, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q", name)
	}
	return p, nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, profileNames(s.profiles))
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Message string `json:"message"`
		Profile string `json:"profile"`
	}
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if req.Message == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}
	p, err := s.lookupProfile(req.Profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	encInfo := encoding.Detect([]byte(req.Message))
	msg, err := hl7.Parse(req.Message)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse: %v", err), http.StatusUnprocessableEntity)
		return
	}
	findings := profile.Validate(msg, p)

	resp := struct {
		Message    *hl7.ParsedMessage `json:"message"`
		Generation string             `json:"generation"`
		Encoding   encoding.Result    `json:"encoding"`
		Findings   []profile.Finding  `json:"findings"`
	}{
		Message:    msg,
		Generation: defs.ResolveVersion(msg.Version),
		Encoding:   encInfo,
		Findings:   findings,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	stream := r.URL.Query().Get("stream") == "true"
	var req struct {
		Message string `json:"message"`
		Profile string `json:"profile"`
	}
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if req.Message == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}
	p, err := s.lookupProfile(req.Profile)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	msg, err := hl7.Parse(req.Message)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse: %v", err), http.StatusUnprocessableEntity)
		return
	}
	findings := profile.Validate(msg, p)

	if stream {
		w.Header().Set("Content-Type", "application/x-ndjson")
		writer := NewNDJSONWriter(w)
		for _, f := range findings {
			if err := writer.WriteFinding(f); err != nil {
				return
			}
		}
		_ = writer.WriteObject(findingSummary(findings))
		return
	}

	resp := struct {
		Findings []profile.Finding `json:"findings"`
		Summary  map[string]int    `json:"summary"`
	}{
		Findings: findings,
		Summary:  findingSummary(findings),
	}
	writeJSON(w, http.StatusOK, resp)
}

func findingSummary(findings []profile.Finding) map[string]int {
	summary := map[string]int{"total": len(findings)}
	for _, f := range findings {
		summary[string(f.Severity)]++
	}
	return summary
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		MessageA string `json:"messageA"`
		MessageB string `json:"messageB"`
		SourceA  string `json:"sourceA"`
		SourceB  string `json:"sourceB"`
	}
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if req.MessageA == "" || req.MessageB == "" {
		http.Error(w, "messageA and messageB required", http.StatusBadRequest)
		return
	}
	a, err := hl7.Parse(req.MessageA)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse messageA: %v", err), http.StatusUnprocessableEntity)
		return
	}
	b, err := hl7.Parse(req.MessageB)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse messageB: %v", err), http.StatusUnprocessableEntity)
		return
	}
	doc := report.Build(req.SourceA, req.SourceB, diff.Compare(a, b))
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleAnonymize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Message  string `json:"message"`
		NonASCII bool   `json:"nonAscii"`
		Seed     *int64 `json:"seed"`
	}
	if !s.decodeRequest(w, r, &req) {
		return
	}
	if req.Message == "" {
		http.Error(w, "message required", http.StatusBadRequest)
		return
	}
	msg, err := hl7.Parse(req.Message)
	if err != nil {
		http.Error(w, fmt.Sprintf("parse: %v", err), http.StatusUnprocessableEntity)
		return
	}

	var anon *anonymize.Anonymizer
	if req.Seed != nil {
		anon = anonymize.NewSeeded(req.NonASCII, *req.Seed)
	} else {
		anon = anonymize.New(req.NonASCII)
	}
	scrubbed := anon.Message(msg)

	resp := struct {
		Message string `json:"message"`
	}{
		Message: hl7.Reconstruct(scrubbed),
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
