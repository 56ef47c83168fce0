// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants that are mapped to HTTP
// responses via the fail() helper in this package. Codes are lowercase,
// snake_case, and stable: clients branch on them programmatically while the
// accompanying message stays human-readable.
//
// Example response:
//
//	{
//	  "request_id": "e1b9be03-4999-4289-9f03-999b042d65d6",
//	  "code": "invalid_signature",
//	  "message": "invalid signature"
//	}
package handlers

const (
	ErrCodeBadRequest       = "bad_request"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeRateLimited      = "too_many_requests"
	ErrCodeInternal         = "internal_error"

	// Domain-specific:
	ErrCodeInvalidSignature = "invalid_signature"
	ErrCodeInvalidPayload   = "invalid_payload"
	ErrCodeInvalidQuery     = "invalid_query"
	ErrCodeUnavailable      = "storage_unavailable"
	ErrCodeListFailed       = "list_failed"
	ErrCodeStatsFailed      = "stats_failed"
	ErrCodeNotReady         = "not_ready"
)
