// Package domain defines the persistence model for webhook messages. The
// Message type is mapped with GORM and forms the core data layer of the
// ingestion service.
package domain

import "time"

// Message is a single ingested SMS-style message. Rows are immutable: they
// are created exactly once by the ingestion pipeline and never updated or
// deleted.
//
// Fields:
//   - MessageID: caller-supplied unique identifier; primary key. The PK is
//     the arbiter of idempotency; a second insert with the same id fails
//     with a unique-constraint violation, never a silent second row.
//   - FromMSISDN / ToMSISDN: E.164 phone numbers; sender is indexed for the
//     "from" filter.
//   - TS: caller-supplied ISO-8601 UTC instant, stored as TEXT so that
//     lexicographic ordering matches chronological ordering. Indexed for
//     range filters and sorting.
//   - Text: optional free-form body; NULL when absent.
//   - CreatedAt: server-assigned ingestion instant, for audit only. Not
//     exposed in filtering and not serialized.
type Message struct {
	MessageID  string    `json:"message_id" gorm:"column:message_id;type:TEXT;primaryKey"`
	FromMSISDN string    `json:"from"       gorm:"column:from_msisdn;type:TEXT;not null;index:idx_from_msisdn"`
	ToMSISDN   string    `json:"to"         gorm:"column:to_msisdn;type:TEXT;not null"`
	TS         string    `json:"ts"         gorm:"column:ts;type:TEXT;not null;index:idx_ts"`
	Text       *string   `json:"text"       gorm:"column:text;type:TEXT"`
	CreatedAt  time.Time `json:"-"          gorm:"column:created_at;not null"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }
