// internal/httpserver/token.go
//
// Session tokens: a short-lived HS256 JWT carrying the session id, issued
// when a session is created and required on every subsequent turn. Binds
// a session to the client that opened it without any notion of accounts.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errBadToken = errors.New("invalid session token")

func signSessionToken(secret []byte, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// parseSessionToken verifies tok and returns the session id it carries.
func parseSessionToken(secret []byte, tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errBadToken
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		return "", errBadToken
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errBadToken
	}
	return sid, nil
}

// bearerToken extracts "Authorization: Bearer <token>", or "".
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
