// Package services – MessageService
//
// Read-side collaborator over the message store: paginated, filtered
// listings and aggregate statistics. It owns no correctness contract beyond
// delegating to the repo's query operations.
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tbourn/go-webhook-backend/internal/domain"
	"github.com/tbourn/go-webhook-backend/internal/repo"
)

// MessageService implements the read use-cases consumed by the HTTP layer.
type MessageService struct {
	// DB is the database handle used for all queries.
	DB *gorm.DB
}

// List returns one page of messages matching f (ordered ts ASC, message_id
// ASC) plus the total number of matching rows. Filter values are assumed to
// be validated by the caller; store failures are wrapped as ErrUnavailable.
func (s *MessageService) List(ctx context.Context, f repo.Filter, offset, limit int) ([]domain.Message, int64, error) {
	out, total, err := repo.ListMessages(ctx, s.DB, f, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return out, total, nil
}

// Stats returns aggregate statistics over all stored messages.
func (s *MessageService) Stats(ctx context.Context) (*repo.Stats, error) {
	st, err := repo.MessageStats(ctx, s.DB)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return st, nil
}

// ListVersion exposes the repo's list version stamp for conditional (ETag)
// responses. Best effort: callers treat errors as "no validator available".
func (s *MessageService) ListVersion(ctx context.Context) (int64, int64, error) {
	count, maxCreated, err := repo.ListVersion(ctx, s.DB)
	if err != nil {
		return 0, 0, err
	}
	var ts int64
	if maxCreated != nil {
		ts = maxCreated.Unix()
	}
	return count, ts, nil
}
