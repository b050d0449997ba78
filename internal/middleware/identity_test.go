package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pindexlabs/agentpanel/internal/domain"
)

func capturedIdentity(req *http.Request) domain.Identity {
	var got domain.Identity
	h := Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = IdentityFromContext(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestIdentityDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	id := capturedIdentity(req)
	assert.Equal(t, domain.DefaultUserID, id.UserID)
	assert.Equal(t, domain.DefaultUserName, id.Name)
	assert.Equal(t, domain.DefaultFirmID, id.FirmID)
}

func TestIdentityFromCookies(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "userid", Value: "42"})
	req.AddCookie(&http.Cookie{Name: "name", Value: "Dana%20Reyes"})
	req.AddCookie(&http.Cookie{Name: "firmid", Value: "9"})

	id := capturedIdentity(req)
	assert.Equal(t, int64(42), id.UserID)
	assert.Equal(t, "Dana Reyes", id.Name)
	assert.Equal(t, int64(9), id.FirmID)
}

func TestIdentityMalformedCookieFallsBack(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "userid", Value: "not-a-number"})

	id := capturedIdentity(req)
	assert.Equal(t, domain.DefaultUserID, id.UserID)
}

func TestIdentityFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	id := IdentityFromContext(req.Context())
	assert.Equal(t, domain.DefaultIdentity(), id)
}
