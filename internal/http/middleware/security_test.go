package middleware

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func secRequest(t *testing.T, opts SecurityOptions, https bool) http.Header {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SecurityHeaders(opts))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	if https {
		req.TLS = &tls.ConnectionState{}
	}
	r.ServeHTTP(w, req)
	return w.Header()
}

func TestSecurityHeaders_Baseline(t *testing.T) {
	h := secRequest(t, SecurityOptions{}, false)

	if h.Get("X-Content-Type-Options") != "nosniff" ||
		h.Get("X-Frame-Options") != "DENY" ||
		h.Get("Referrer-Policy") != "no-referrer" {
		t.Fatalf("baseline headers missing: %#v", h)
	}
	if h.Get("Permissions-Policy") != "" || h.Get("Cache-Control") != "" {
		t.Fatalf("unexpected optional headers: %#v", h)
	}
	if h.Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS must be off by default: %#v", h)
	}
}

func TestSecurityHeaders_PolicyAndNoStore(t *testing.T) {
	h := secRequest(t, SecurityOptions{NoStore: true, EnablePolicy: true}, false)

	if !strings.Contains(h.Get("Permissions-Policy"), "geolocation=()") {
		t.Fatalf("missing Permissions-Policy: %#v", h)
	}
	if h.Get("X-Permitted-Cross-Domain-Policies") != "none" {
		t.Fatalf("missing cross-domain policy: %#v", h)
	}
	if h.Get("Cache-Control") != "no-store" || h.Get("Pragma") != "no-cache" || h.Get("Expires") != "0" {
		t.Fatalf("missing cache headers: %#v", h)
	}
}

func TestSecurityHeaders_HSTSOnlyOnHTTPS(t *testing.T) {
	opts := SecurityOptions{EnableHSTS: true, HSTSMaxAge: 24 * time.Hour}

	// plain HTTP: never emit HSTS
	if h := secRequest(t, opts, false); h.Get("Strict-Transport-Security") != "" {
		t.Fatalf("HSTS emitted on plain HTTP: %#v", h)
	}

	// HTTPS: emit with the configured max-age
	h := secRequest(t, opts, true)
	hsts := h.Get("Strict-Transport-Security")
	if !strings.Contains(hsts, "max-age=86400") || !strings.Contains(hsts, "includeSubDomains") {
		t.Fatalf("unexpected HSTS value: %q", hsts)
	}

	// max-age <= 0 falls back to 180 days
	h = secRequest(t, SecurityOptions{EnableHSTS: true}, true)
	if !strings.Contains(h.Get("Strict-Transport-Security"), "max-age=15552000") {
		t.Fatalf("default max-age not applied: %q", h.Get("Strict-Transport-Security"))
	}
}
