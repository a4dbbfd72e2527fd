package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/howtolabs/howto-teacher/internal/config"
	"github.com/howtolabs/howto-teacher/internal/handler"
	"github.com/howtolabs/howto-teacher/internal/service/cohere"
	lessonService "github.com/howtolabs/howto-teacher/internal/service/lesson"
	"github.com/howtolabs/howto-teacher/internal/service/lessonlog"
	"github.com/howtolabs/howto-teacher/internal/service/search"
	"github.com/howtolabs/howto-teacher/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := session.NewMemoryStore()
	searcher := search.NewFallback(search.NewDuckDuckGo(), search.NewWikipedia())
	chatClient := cohere.NewClient(cfg.Cohere.APIKey, cfg.Cohere.BaseURL)
	transcript := lessonlog.New(cfg.Log.File)

	lessons := lessonService.NewService(store, searcher, chatClient, transcript)

	router := handler.NewRouter(lessons, transcript.Path())

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("How-To Teacher backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
