// Webhook HTTP handler.
//
// POST /webhook receives signed message deliveries. The handler reads the
// exact raw body bytes (the signature covers them, so no binding/decoding
// happens first), delegates to the IngestService, classifies the outcome for
// metrics and logs, and maps the result to the wire contract:
//
//	200 {"status":"ok"}  for Created and Duplicate (idempotent success)
//	401                  for signature failure (no detail leaked)
//	422                  for payload validation failure (violations listed)
//	500                  when the store cannot be written (retry-safe)
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-webhook-backend/internal/http/middleware"
	"github.com/tbourn/go-webhook-backend/internal/services"
)

// HeaderSignature carries the hex HMAC-SHA256 digest of the raw request body.
const HeaderSignature = "X-Signature"

// WebhookResponse is the success envelope for POST /webhook.
type WebhookResponse struct {
	Status string `json:"status" example:"ok"`
}

// Webhook godoc
// @ID          webhook
// @Summary     Ingest a signed webhook message
// @Description Verifies the X-Signature HMAC over the raw body, validates the
// @Description payload, and persists it idempotently. Retries with the same
// @Description message_id are safe and return the same success response.
// @Tags        Webhook
// @Accept      json
// @Produce     json
//
// @Param       X-Signature  header  string                  true  "Hex HMAC-SHA256 of the raw request body"
// @Param       body         body    domain.WebhookPayload   true  "Message payload"
//
// @Success     200  {object}  handlers.WebhookResponse  "Created or duplicate"
// @Failure     401  {object}  handlers.ErrorResponse    "Invalid signature"
// @Failure     422  {object}  handlers.ErrorResponse    "Payload validation failed"
// @Failure     500  {object}  handlers.ErrorResponse    "Storage unavailable"
// @Router      /webhook [post]
func (h *Handlers) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		// Body over the size cap or client hung up mid-read.
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "unable to read request body")
		return
	}

	outcome, m, err := h.ingestSvc.Ingest(ctx, rawBody, c.GetHeader(HeaderSignature))
	if outcome != "" {
		middleware.WebhookOutcome(string(outcome))
	}

	lg := middleware.LoggerFrom(c)
	switch {
	case err == nil:
		ev := lg.Info().Str("result", string(outcome)).Bool("dup", outcome == services.OutcomeDuplicate)
		if m != nil {
			ev = ev.Str("message_id", m.MessageID)
		}
		ev.Msg("webhook")
		ok(c, http.StatusOK, WebhookResponse{Status: "ok"})

	case errors.Is(err, services.ErrBadSignature):
		lg.Warn().Str("result", string(outcome)).Msg("webhook")
		fail(c, http.StatusUnauthorized, ErrCodeInvalidSignature, "invalid signature")

	case errors.Is(err, services.ErrInvalidPayload):
		lg.Warn().Str("result", string(outcome)).Msg("webhook")
		fail(c, http.StatusUnprocessableEntity, ErrCodeInvalidPayload, err.Error())

	default:
		// services.ErrUnavailable and anything unexpected.
		fail(c, http.StatusInternalServerError, ErrCodeUnavailable, "storage unavailable")
	}
}
