package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func probe(h *Health, fn gin.HandlerFunc, path string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, fn)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealth_LiveAlwaysOK(t *testing.T) {
	// Liveness must not depend on secret or store state.
	h := NewHealth(false, nil)
	w := probe(h, h.Live, "/health/live")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %q", body["status"])
	}
}

func TestHealth_ReadyStates(t *testing.T) {
	up := func(context.Context) bool { return true }
	down := func(context.Context) bool { return false }

	cases := []struct {
		name       string
		secret     bool
		store      ReadyCheck
		wantStatus int
		wantMsg    string
	}{
		{"all green", true, up, http.StatusOK, ""},
		{"no secret", false, up, http.StatusServiceUnavailable, "webhook secret not configured"},
		{"store down", true, down, http.StatusServiceUnavailable, "store not ready"},
		{"no check wired", true, nil, http.StatusServiceUnavailable, "store not ready"},
		{"secret gate first", false, down, http.StatusServiceUnavailable, "webhook secret not configured"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewHealth(tc.secret, tc.store)
			w := probe(h, h.Ready, "/health/ready")
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if tc.wantStatus == http.StatusOK {
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if body["status"] != "ready" {
					t.Fatalf("status field = %q", body["status"])
				}
				return
			}
			e := decodeError(t, w)
			if e.Code != ErrCodeNotReady {
				t.Fatalf("code = %q", e.Code)
			}
			if e.Message != tc.wantMsg {
				t.Fatalf("message = %q, want %q", e.Message, tc.wantMsg)
			}
		})
	}
}

// Readiness re-evaluates the store on every probe.
func TestHealth_ReadyReflectsStoreRecovery(t *testing.T) {
	healthy := false
	h := NewHealth(true, func(context.Context) bool { return healthy })

	if w := probe(h, h.Ready, "/health/ready"); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 while store is down", w.Code)
	}
	healthy = true
	if w := probe(h, h.Ready, "/health/ready"); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 after recovery", w.Code)
	}
}
