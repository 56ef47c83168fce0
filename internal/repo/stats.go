// Package repo implements the data persistence layer for webhook messages,
// backed by GORM. This file provides aggregate queries: the /stats payload
// and the cheap version stamp used for conditional (ETag) list responses.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-webhook-backend/internal/domain"
)

// SenderCount is one entry of the per-sender leaderboard.
type SenderCount struct {
	From  string `json:"from"  gorm:"column:from_msisdn"`
	Count int64  `json:"count" gorm:"column:count"`
}

// Stats is the aggregate view served by GET /stats. Timestamp fields are nil
// when the store is empty (serialized as JSON null).
type Stats struct {
	TotalMessages     int64         `json:"total_messages"`
	SendersCount      int64         `json:"senders_count"`
	MessagesPerSender []SenderCount `json:"messages_per_sender"`
	FirstMessageTS    *string       `json:"first_message_ts"`
	LastMessageTS     *string       `json:"last_message_ts"`
}

// MessageStats computes aggregates over all stored messages: total row count,
// distinct sender count, the top 10 senders by message count (descending,
// sender ascending on ties for determinism), and the min/max caller-supplied
// timestamps.
//
// Each call observes a consistent best-effort snapshot; it is not serialized
// against concurrent inserts.
func MessageStats(ctx context.Context, db *gorm.DB) (*Stats, error) {
	s := &Stats{MessagesPerSender: []SenderCount{}}
	q := db.WithContext(ctx).Model(&domain.Message{})

	if err := q.Count(&s.TotalMessages).Error; err != nil {
		return nil, err
	}
	if s.TotalMessages == 0 {
		return s, nil
	}

	err := db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT from_msisdn) FROM messages").
		Scan(&s.SendersCount).Error
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).Model(&domain.Message{}).
		Select("from_msisdn, COUNT(*) AS count").
		Group("from_msisdn").
		Order("count DESC, from_msisdn ASC").
		Limit(10).
		Scan(&s.MessagesPerSender).Error
	if err != nil {
		return nil, err
	}

	var bounds struct {
		FirstTS *string `gorm:"column:first_ts"`
		LastTS  *string `gorm:"column:last_ts"`
	}
	err = db.WithContext(ctx).
		Raw("SELECT MIN(ts) AS first_ts, MAX(ts) AS last_ts FROM messages").
		Scan(&bounds).Error
	if err != nil {
		return nil, err
	}
	s.FirstMessageTS = bounds.FirstTS
	s.LastMessageTS = bounds.LastTS

	return s, nil
}

// ListVersion returns aggregate metadata for the whole messages table: the
// row count and the greatest created_at among rows (nil when empty). Any
// insert changes at least the count, so the pair is a usable weak validator
// for list responses.
func ListVersion(ctx context.Context, db *gorm.DB) (count int64, maxCreated *time.Time, err error) {
	q := db.WithContext(ctx).Model(&domain.Message{})

	if err = q.Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest created_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		CreatedAt time.Time
	}
	if err = q.Select("created_at").Order("created_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.CreatedAt, nil
}
