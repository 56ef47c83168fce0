// Package services defines the business logic for webhook ingestion and the
// message read APIs. This file centralizes common service-level error values
// so that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer; mapping to
// user-facing messages or HTTP status codes happens at the handler layer.
package services

import "errors"

var (
	// ErrBadSignature indicates that the declared request signature does not
	// match the HMAC of the raw body under the configured secret (or that no
	// secret is configured). The request was rejected before validation.
	ErrBadSignature = errors.New("invalid signature")

	// ErrInvalidPayload is returned when the verified request body is not a
	// well-formed message. It is wrapped with the list of violated fields.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrUnavailable is returned when the store cannot be reached or written.
	// No partial write occurred, so the caller may safely retry.
	ErrUnavailable = errors.New("storage unavailable")
)
