// Package repo implements the data persistence layer for webhook messages,
// backed by GORM. This file provides the idempotent insert and the filtered,
// paginated listing over the messages table.
package repo

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-webhook-backend/internal/domain"
)

// ErrDuplicate indicates that a message row with the same message_id already
// exists. It is a successful idempotent outcome for callers, not a failure.
var ErrDuplicate = errors.New("duplicate message")

// ErrNotFound is returned by lookup helpers when no row matches.
var ErrNotFound = errors.New("not found")

// Filter restricts ListMessages results. Zero-valued fields are ignored;
// set fields compose conjunctively.
type Filter struct {
	From  string // exact sender match
	Since string // ts >= Since (ISO-8601 UTC; lexicographic == chronological)
	Q     string // substring match on text
}

// InsertMessage attempts to persist p as a new row. Exactly one concurrent
// caller for a given message_id gets the row back; all others get
// ErrDuplicate. The messages-table primary key is the arbiter; there is no
// prior existence check, so a lost race surfaces as a constraint violation
// instead of a second row.
//
// p.TS is caller-supplied and trusted as the ordering key; now becomes the
// server-side created_at audit instant.
func InsertMessage(ctx context.Context, db *gorm.DB, p *domain.WebhookPayload, now time.Time) (*domain.Message, error) {
	m := &domain.Message{
		MessageID:  p.MessageID,
		FromMSISDN: p.From,
		ToMSISDN:   p.To,
		TS:         p.TS,
		Text:       p.Text,
		CreatedAt:  now.UTC(),
	}
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		// glebarez/sqlite often returns plain-text errors for UNIQUE violations.
		low := strings.ToLower(err.Error())
		if errors.Is(err, gorm.ErrDuplicatedKey) ||
			strings.Contains(low, "unique constraint failed") ||
			strings.Contains(low, "constraint failed: unique") {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return m, nil
}

// GetMessage fetches a message by id, or ErrNotFound.
func GetMessage(ctx context.Context, db *gorm.DB, id string) (*domain.Message, error) {
	var m domain.Message
	err := db.WithContext(ctx).Where("message_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListMessages returns one page of messages matching f, ordered
// deterministically (ts ASC, message_id ASC), along with the total number of
// rows matching f regardless of pagination.
func ListMessages(ctx context.Context, db *gorm.DB, f Filter, offset, limit int) ([]domain.Message, int64, error) {
	q := db.WithContext(ctx).Model(&domain.Message{})
	if f.From != "" {
		q = q.Where("from_msisdn = ?", f.From)
	}
	if f.Since != "" {
		q = q.Where("ts >= ?", f.Since)
	}
	if f.Q != "" {
		q = q.Where("text LIKE ?", "%"+f.Q+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []domain.Message
	err := q.
		Order("ts ASC, message_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
