package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebisa/contabil/internal/http/auth"
)

var secret = []byte("s3cret")

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(auth.User(r.Context())))
	})
}

func TestMiddleware(t *testing.T) {
	valid, err := auth.Sign(secret, "auditor@acme.com", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	expired, err := auth.Sign(secret, "auditor@acme.com", jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	require.NoError(t, err)

	forged, err := auth.Sign([]byte("other"), "auditor@acme.com", nil)
	require.NoError(t, err)

	noEmail, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString(secret)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "Valid", header: "Bearer " + valid, wantStatus: http.StatusOK, wantUser: "auditor@acme.com"},
		{name: "Missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "Expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "WrongSecret", header: "Bearer " + forged, wantStatus: http.StatusUnauthorized},
		{name: "NoEmailClaim", header: "Bearer " + noEmail, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			auth.Middleware(secret, "")(echoUser()).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, rec.Body.String())
			}
		})
	}
}

func TestMiddleware_Disabled(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.Middleware(nil, "local@contabil")(echoUser()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "local@contabil", rec.Body.String())
}
