package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/howtolabs/howto-teacher/internal/handler/home"
	lessonHandler "github.com/howtolabs/howto-teacher/internal/handler/lesson"
	logsHandler "github.com/howtolabs/howto-teacher/internal/handler/logs"
	middlewarePkg "github.com/howtolabs/howto-teacher/internal/middleware"
	lessonService "github.com/howtolabs/howto-teacher/internal/service/lesson"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(lessons *lessonService.Service, logPath string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	home.New().RegisterRoutes(r)
	lessonHandler.New(lessons).RegisterRoutes(r)
	logsHandler.New(logPath).RegisterRoutes(r)

	return r
}
