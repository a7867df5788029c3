package middleware

import (
	"context"
	"net/http"
)

// Identity resolves the owner of a request. Real authentication lives in an
// external collaborator; this middleware only consumes its hand-off, the
// X-Owner-ID header. When the header is absent the configured default owner
// is used — an explicit single-user deployment policy, not a bypass. With
// no default configured, unidentified requests are rejected.
type Identity struct {
	DefaultOwner string
}

func NewIdentity(defaultOwner string) *Identity {
	return &Identity{DefaultOwner: defaultOwner}
}

// context key
type contextKey string

const OwnerKey contextKey = "owner"

const ownerHeader = "X-Owner-ID"

func (m *Identity) OwnerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get(ownerHeader)
		if owner == "" {
			owner = m.DefaultOwner
		}
		if owner == "" {
			http.Error(w, "no owner identity resolved", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), OwnerKey, owner)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Owner extracts the resolved owner id from the request context.
func Owner(ctx context.Context) string {
	owner, _ := ctx.Value(OwnerKey).(string)
	return owner
}
