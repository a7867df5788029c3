package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func ownerEcho(t *testing.T, captured *string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = Owner(r.Context())
	})
}

func TestOwnerIdentityFromHeader(t *testing.T) {
	var got string
	mw := NewIdentity("default-user")
	h := mw.OwnerIdentity(ownerEcho(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Owner-ID", "alice")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != "alice" {
		t.Errorf("owner = %q, want alice", got)
	}
}

func TestOwnerIdentityFallsBackToDefault(t *testing.T) {
	var got string
	mw := NewIdentity("default-user")
	h := mw.OwnerIdentity(ownerEcho(t, &got))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got != "default-user" {
		t.Errorf("owner = %q, want default-user", got)
	}
}

func TestOwnerIdentityRejectsWithoutDefault(t *testing.T) {
	var got string
	mw := NewIdentity("")
	h := mw.OwnerIdentity(ownerEcho(t, &got))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if got != "" {
		t.Error("handler ran without an identity")
	}
}
