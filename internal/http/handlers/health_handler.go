// Health probe handlers.
//
// Liveness succeeds whenever the process serves requests. Readiness gates on
// the two hard dependencies of the ingestion pipeline: a configured signing
// secret and a reachable, migrated store.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadyCheck reports whether the store can serve reads and writes.
type ReadyCheck func(ctx context.Context) bool

// Health bundles the liveness and readiness endpoints.
type Health struct {
	secretConfigured bool
	storeReady       ReadyCheck
}

// NewHealth constructs the health handlers. storeReady is invoked on every
// readiness probe so a store that comes and goes is reflected live.
func NewHealth(secretConfigured bool, storeReady ReadyCheck) *Health {
	return &Health{secretConfigured: secretConfigured, storeReady: storeReady}
}

// Live godoc
// @ID          healthLive
// @Summary     Liveness probe
// @Tags        Health
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      /health/live [get]
func (h *Health) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready godoc
// @ID          healthReady
// @Summary     Readiness probe
// @Description 503 until the signing secret is configured and the store is
// @Description reachable; 200 afterwards.
// @Tags        Health
// @Produce     json
// @Success     200  {object}  map[string]string
// @Failure     503  {object}  handlers.ErrorResponse
// @Router      /health/ready [get]
func (h *Health) Ready(c *gin.Context) {
	if !h.secretConfigured {
		fail(c, http.StatusServiceUnavailable, ErrCodeNotReady, "webhook secret not configured")
		return
	}
	if h.storeReady == nil || !h.storeReady(c.Request.Context()) {
		fail(c, http.StatusServiceUnavailable, ErrCodeNotReady, "store not ready")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
