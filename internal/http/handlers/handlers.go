// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the service interfaces consumed by the handlers and the
// Handlers aggregate wired by the router. Handlers are transport-thin: they
// read and validate transport-level inputs, delegate to application services,
// and map service sentinel errors to the standard response envelope.
package handlers

import (
	"context"

	"github.com/tbourn/go-webhook-backend/internal/domain"
	"github.com/tbourn/go-webhook-backend/internal/repo"
	"github.com/tbourn/go-webhook-backend/internal/services"
)

// IngestService is the ingestion pipeline consumed by the webhook endpoint.
type IngestService interface {
	Ingest(ctx context.Context, rawBody []byte, declaredSig string) (services.Outcome, *domain.Message, error)
}

// MessageService is the read-side collaborator behind /messages and /stats.
type MessageService interface {
	List(ctx context.Context, f repo.Filter, offset, limit int) ([]domain.Message, int64, error)
	Stats(ctx context.Context) (*repo.Stats, error)
	ListVersion(ctx context.Context) (count int64, maxCreatedUnix int64, err error)
}

// Handlers bundles the HTTP endpoints with their injected services.
type Handlers struct {
	ingestSvc IngestService
	msgSvc    MessageService
}

// New constructs the Handlers aggregate from the application services.
func New(ingestSvc IngestService, msgSvc MessageService) *Handlers {
	return &Handlers{ingestSvc: ingestSvc, msgSvc: msgSvc}
}
