package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ipget/ipget/internal/store"
)

type LatestReader interface {
	ReadLatest(ctx context.Context) (record *store.Record, err error)
}

type handlers struct {
	db      LatestReader
	logger  Logger
	version string
}

func newHandler(logger Logger, db LatestReader, version string) http.Handler {
	handlers := &handlers{
		db:      db,
		logger:  logger,
		version: version,
	}

	router := chi.NewRouter()
	router.Get("/api/v1/ip", handlers.getLatestIP)
	router.Get("/api/v1/version", handlers.getVersion)
	return router
}
