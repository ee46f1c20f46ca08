package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// registerStatic registers a catch-all handler serving the configured
// frontend directory. API routes registered on more specific patterns take
// priority; any path not matched by the API falls through here.
//
// The handler implements SPA routing: paths without a file extension that do
// not exist on disk serve index.html so a frontend router can handle
// client-side navigation.
func (s *Server) registerStatic(mux *http.ServeMux) {
	dir := s.cfg.StaticDir
	fileServer := http.FileServer(http.Dir(dir))

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if path != "/" && !strings.Contains(filepath.Base(path), ".") {
			if _, err := os.Stat(filepath.Join(dir, filepath.Clean(path))); err != nil {
				r.URL.Path = "/"
			}
		}
		fileServer.ServeHTTP(w, r)
	})
}
