package api

import "net/http"

// registerRoutes sets up all API routes. The static catch-all is registered
// last; the more specific API patterns take priority over it.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", s.metrics.Handler())

	mux.HandleFunc("GET /api/characters", s.handleListCharacters)
	mux.HandleFunc("GET /api/characters/{id}", s.handleGetCharacter)
	mux.HandleFunc("GET /api/races", s.handleListRaces)

	if s.cfg.StaticDir != "" {
		s.registerStatic(mux)
	}
}
