// Package services – IngestService
//
// This file implements the webhook ingestion pipeline. Each request walks a
// fixed state machine:
//
//	Received → SignatureCheck → ValidationCheck → PersistAttempt
//
// Signature failure and validation failure are terminal with no side
// effects; the persistence attempt is made exactly once, with the store's
// primary key as the idempotency arbiter. Created and Duplicate are both
// successful outcomes; they differ only for metrics and logs.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-webhook-backend/internal/domain"
	"github.com/tbourn/go-webhook-backend/internal/repo"
	"github.com/tbourn/go-webhook-backend/internal/signature"
)

// Outcome classifies how an ingestion attempt ended. The values double as
// the Prometheus result label, so they are stable strings.
type Outcome string

const (
	OutcomeCreated        Outcome = "created"
	OutcomeDuplicate      Outcome = "duplicate"
	OutcomeBadSignature   Outcome = "invalid_signature"
	OutcomeInvalidPayload Outcome = "invalid_payload"
)

// IngestService orchestrates signature verification, payload validation, and
// idempotent persistence for inbound webhook requests.
//
// The service holds no per-request state and is safe for concurrent use; the
// store's uniqueness constraint is the only synchronization point.
type IngestService struct {
	// DB is the database handle used for the single persistence attempt.
	DB *gorm.DB

	// Secret is the shared HMAC key. An empty secret rejects every request;
	// readiness reports the misconfiguration separately.
	Secret []byte

	// MaxTextRunes caps the optional text field; <= 0 uses the domain default.
	MaxTextRunes int
}

// Ingest processes one raw webhook delivery.
//
// Returns:
//   - (OutcomeCreated, message, nil) on first successful persistence
//   - (OutcomeDuplicate, nil, nil) when the message_id was already stored;
//     an idempotent success, not an error
//   - (OutcomeBadSignature, nil, ErrBadSignature) before the payload is even
//     parsed, so unauthenticated callers learn nothing about validation
//   - (OutcomeInvalidPayload, nil, ErrInvalidPayload-wrapped) with the
//     violated constraints in the error message
//   - ("", nil, ErrUnavailable-wrapped) when the store cannot be written;
//     no partial write is visible, the caller may retry
//
// Exactly one persistence attempt is made per call; transient storage
// failures are reported upward, never retried here.
func (s *IngestService) Ingest(ctx context.Context, rawBody []byte, declaredSig string) (Outcome, *domain.Message, error) {
	if !signature.Verify(rawBody, declaredSig, s.Secret) {
		return OutcomeBadSignature, nil, ErrBadSignature
	}

	var p domain.WebhookPayload
	if err := json.Unmarshal(rawBody, &p); err != nil {
		return OutcomeInvalidPayload, nil, fmt.Errorf("%w: body must be a JSON object", ErrInvalidPayload)
	}
	if violations := p.Validate(s.MaxTextRunes); len(violations) > 0 {
		return OutcomeInvalidPayload, nil, fmt.Errorf("%w: %s", ErrInvalidPayload, strings.Join(violations, "; "))
	}

	m, err := repo.InsertMessage(ctx, s.DB, &p, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return OutcomeDuplicate, nil, nil
		}
		return "", nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return OutcomeCreated, m, nil
}
