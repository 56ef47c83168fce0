// Package domain – webhook payload DTO and field validation.
package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultMaxTextRunes caps the optional text body. Matches the wire contract.
const DefaultMaxTextRunes = 4096

// msisdnRE matches E.164-style numbers: '+' followed by 1-15 digits.
var msisdnRE = regexp.MustCompile(`^\+[0-9]{1,15}$`)

// WebhookPayload is the JSON body accepted by POST /webhook. It is parsed
// from the raw request bytes only after the signature has been verified.
type WebhookPayload struct {
	MessageID string  `json:"message_id"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	TS        string  `json:"ts"`
	Text      *string `json:"text"`
}

// ValidMSISDN reports whether s is an E.164-style phone number.
func ValidMSISDN(s string) bool { return msisdnRE.MatchString(s) }

// ValidTimestamp reports whether s is an ISO-8601 UTC instant with a trailing
// 'Z' designator (e.g. 2025-01-15T10:00:00Z).
func ValidTimestamp(s string) bool {
	if !strings.HasSuffix(s, "Z") {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// Validate checks field presence and format and returns one violation string
// per broken constraint, or nil when the payload is well formed. maxTextRunes
// caps the optional text body; values <= 0 fall back to DefaultMaxTextRunes.
//
// Validation never touches storage; a payload that fails here must not reach
// the persistence layer.
func (p *WebhookPayload) Validate(maxTextRunes int) []string {
	if maxTextRunes <= 0 {
		maxTextRunes = DefaultMaxTextRunes
	}

	var violations []string
	if strings.TrimSpace(p.MessageID) == "" {
		violations = append(violations, "message_id: must be a non-empty string")
	}
	if !ValidMSISDN(p.From) {
		violations = append(violations, "from: must be E.164 format (+ followed by digits)")
	}
	if !ValidMSISDN(p.To) {
		violations = append(violations, "to: must be E.164 format (+ followed by digits)")
	}
	if !ValidTimestamp(p.TS) {
		violations = append(violations, "ts: must be an ISO-8601 UTC timestamp ending in Z")
	}
	if p.Text != nil && utf8.RuneCountInString(*p.Text) > maxTextRunes {
		violations = append(violations, fmt.Sprintf("text: must be at most %d characters", maxTextRunes))
	}
	return violations
}
