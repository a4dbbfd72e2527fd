package home

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html
var page []byte

// Handler serves the single-page form UI.
type Handler struct{}

// New creates the home page handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the home page.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
}

func (h *Handler) handleHome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}
