package server

import "net/http"

// NewRouter wires HTTP routes to the server's handlers.
func NewRouter(s *Server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/parse", s.handleParse)
	mux.HandleFunc("/validate", s.handleValidate)
	mux.HandleFunc("/diff", s.handleDiff)
	mux.HandleFunc("/anonymize", s.handleAnonymize)
	mux.HandleFunc("/profiles", s.handleProfiles)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}
