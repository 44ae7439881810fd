package rest

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// staticFiles serves the frontend directory; "/" resolves to index.html.
// When the directory is missing every request gets a 404.
func (h *Handler) staticFiles() http.Handler {
	if h.staticDir == "" {
		return http.NotFoundHandler()
	}
	if _, err := os.Stat(filepath.Join(h.staticDir, "index.html")); err != nil {
		logrus.WithField("dir", h.staticDir).Warn("rest: frontend index.html not found")
	}
	return http.FileServer(http.Dir(h.staticDir))
}
