package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity reads the caller identity from the userid, name and firmid
// cookies, applying the stock defaults for anything absent or
// malformed, and stores it on the request context. This stands in for
// authentication; every request gets an identity.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := domain.DefaultIdentity()

		if c, err := r.Cookie("userid"); err == nil {
			if v, err := strconv.ParseInt(c.Value, 10, 64); err == nil {
				id.UserID = v
			}
		}
		if c, err := r.Cookie("name"); err == nil && c.Value != "" {
			if v, err := url.QueryUnescape(c.Value); err == nil {
				id.Name = v
			} else {
				id.Name = c.Value
			}
		}
		if c, err := r.Cookie("firmid"); err == nil {
			if v, err := strconv.ParseInt(c.Value, 10, 64); err == nil {
				id.FirmID = v
			}
		}

		ctx := context.WithValue(r.Context(), identityKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the identity stored by the Identity
// middleware, or the defaults when the middleware did not run.
func IdentityFromContext(ctx context.Context) domain.Identity {
	if id, ok := ctx.Value(identityKey).(domain.Identity); ok {
		return id
	}
	return domain.DefaultIdentity()
}
