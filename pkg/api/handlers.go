package api

import (
	"encoding/json"
	"net/http"

	"github.com/herodex/herodex/pkg/query"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Records int    `json:"records"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Uptime:  s.Uptime().String(),
		Records: s.engine.Size(),
	})
}

// handleListCharacters handles GET /api/characters: the paginated,
// filterable, searchable list view.
func (s *Server) handleListCharacters(w http.ResponseWriter, r *http.Request) {
	spec := query.ParseSpec(r.URL.Query(), s.cfg.DefaultPageSize)
	result := s.engine.Run(spec, nil)
	writeJSON(w, http.StatusOK, result)
}

// handleGetCharacter handles GET /api/characters/{id}: the unprojected
// detail view, addressable by id or slug.
func (s *Server) handleGetCharacter(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("id")
	rec := s.engine.Find(key)
	if rec == nil {
		writeError(w, http.StatusNotFound, "not_found", "no character with id or slug "+key)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleListRaces handles GET /api/races: the distinct race values across
// the collection.
func (s *Server) handleListRaces(w http.ResponseWriter, r *http.Request) {
	races := s.engine.Races()
	if races == nil {
		races = []string{}
	}
	writeJSON(w, http.StatusOK, races)
}
