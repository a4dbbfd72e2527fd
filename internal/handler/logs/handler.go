package logs

import (
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/howtolabs/howto-teacher/pkg/utils"
)

// Handler serves the transcript log file back to clients.
type Handler struct {
	path string
}

// New creates a logs handler reading from path.
func New(path string) *Handler {
	return &Handler{path: path}
}

// RegisterRoutes mounts the log routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/logs", h.handleDownload)
	r.Get("/logs/raw", h.handleRaw)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.path); err != nil {
		utils.RespondError(w, http.StatusNotFound, "no logs")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(h.path)))
	http.ServeFile(w, r, h.path)
}

func (h *Handler) handleRaw(w http.ResponseWriter, _ *http.Request) {
	content, err := os.ReadFile(h.path)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "no logs")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!doctype html><html><head><meta charset=\"utf-8\"><title>Logs</title></head><body><pre>%s</pre></body></html>", html.EscapeString(string(content)))
}
