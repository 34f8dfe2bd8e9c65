// Package auth identifies the user behind a request from the email claim of
// an HS256 bearer token.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey struct{}

var errNoEmail = errors.New("token has no email claim")

// Middleware rejects requests without a valid bearer token. With an empty
// secret authentication is off and every request runs as fallbackUser.
func Middleware(secret []byte, fallbackUser string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(secret) == 0 {
				next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), fallbackUser)))
				return
			}

			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			email, err := emailFrom(raw, secret)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), email)))
		})
	}
}

func emailFrom(raw string, secret []byte) (string, error) {
	claims := jwt.MapClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", errNoEmail
	}

	return email, nil
}

// Sign issues a token for email. It is used by the CLI and tests.
func Sign(secret []byte, email string, claims jwt.MapClaims) (string, error) {
	if claims == nil {
		claims = jwt.MapClaims{}
	}

	claims["email"] = email

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func WithUser(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// User returns the importing user of the request, or "" outside Middleware.
func User(ctx context.Context) string {
	user, _ := ctx.Value(ctxKey{}).(string)
	return user
}
