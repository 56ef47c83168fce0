// Message read HTTP handlers.
//
// This file exposes the read-side REST endpoints:
//   - GET /messages  (paginated, filtered listing)
//   - GET /stats     (aggregate statistics)
//
// Handlers are transport-thin:
//   - clamp pagination parameters and validate filter values before the
//     store is ever touched
//   - delegate to the MessageService
//   - implement conditional responses (ETag) on the listing
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-webhook-backend/internal/domain"
	"github.com/tbourn/go-webhook-backend/internal/repo"
	"github.com/tbourn/go-webhook-backend/internal/utils"
)

//
// DTOs
//

// MessagesListResponse is the paginated envelope returned by GET /messages.
// Total counts every row matching the filters, not just the returned page.
type MessagesListResponse struct {
	Data   []domain.Message `json:"data"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

//
// Helpers
//

// clampListParams parses limit/offset from query parameters, applies the wire
// contract's defaults and caps, and returns the validated pair.
func clampListParams(c *gin.Context) (limit, offset int) {
	const (
		defaultLimit = 50
		maxLimit     = 100
	)
	limit = utils.AtoiDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset = utils.AtoiDefault(c.Query("offset"), 0)
	if offset < 0 {
		offset = 0
	}
	return
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List stored messages
// @Description Returns messages ordered by timestamp (ascending, id breaks
// @Description ties) with optional conjunctive filters.
// @Tags        Messages
// @Produce     json
//
// @Param       limit   query  int     false "Page size"                 minimum(1) maximum(100) default(50)
// @Param       offset  query  int     false "Rows to skip"              minimum(0) default(0)
// @Param       from    query  string  false "Exact sender (E.164)"      example(+919876543210)
// @Param       since   query  string  false "Timestamp floor (ISO-8601 UTC)" example(2025-01-15T10:00:00Z)
// @Param       q       query  string  false "Substring match on text"
//
// @Success     200  {object} handlers.MessagesListResponse
// @Failure     422  {object} handlers.ErrorResponse "Malformed filter value"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	// Validate filter values at the edge; the store never sees malformed input.
	f := repo.Filter{
		From:  c.Query("from"),
		Since: c.Query("since"),
		Q:     c.Query("q"),
	}
	if f.From != "" && !domain.ValidMSISDN(f.From) {
		fail(c, http.StatusUnprocessableEntity, ErrCodeInvalidQuery, "from: must be E.164 format (+ followed by digits)")
		return
	}
	if f.Since != "" && !domain.ValidTimestamp(f.Since) {
		fail(c, http.StatusUnprocessableEntity, ErrCodeInvalidQuery, "since: must be an ISO-8601 UTC timestamp ending in Z")
		return
	}

	// ETag pre-check (best effort). Any insert bumps the version pair, so a
	// matching validator means the cached page is still current.
	if count, ts, err := h.msgSvc.ListVersion(ctx); err == nil {
		etag := fmt.Sprintf(`W/"messages:%d:%d"`, count, ts)
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	limit, offset := clampListParams(c)

	items, total, err := h.msgSvc.List(ctx, f, offset, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "unable to list messages")
		return
	}
	if items == nil {
		items = []domain.Message{}
	}
	ok(c, http.StatusOK, MessagesListResponse{
		Data:   items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// Stats godoc
// @ID          stats
// @Summary     Aggregate message statistics
// @Description Returns totals, the distinct sender count, the top 10 senders
// @Description by volume, and the earliest/latest message timestamps.
// @Tags        Messages
// @Produce     json
//
// @Success     200  {object} repo.Stats
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /stats [get]
func (h *Handlers) Stats(c *gin.Context) {
	st, err := h.msgSvc.Stats(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeStatsFailed, "unable to compute statistics")
		return
	}
	ok(c, http.StatusOK, st)
}
