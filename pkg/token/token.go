// Package token handles the session token persisted in the auth cookie.
//
// The token is an opaque string issued by the backend; its payload happens to
// be base64-encoded JSON, which this package decodes for display purposes
// only. Nothing here verifies a signature: the backend remains the authority
// for every authorized call.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/vitrine-store/gateway/pkg/models"
)

// CookieName is the single cookie this package reads and writes.
const CookieName = "auth-token"

// CookieTTL is the fixed persistence window for a fresh login.
const CookieTTL = 7 * 24 * time.Hour

var (
	ErrMissing   = errors.New("token: no auth cookie present")
	ErrMalformed = errors.New("token: payload is not decodable")
	ErrExpired   = errors.New("token: payload expiry has passed")
)

type payload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Exp   int64  `json:"exp"` // epoch milliseconds
}

// Decode extracts the display identity from a raw token. It fails when the
// token is not base64 JSON or when its expiry timestamp has passed.
func Decode(raw string) (models.User, error) {
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		// Tokens sometimes arrive without padding.
		if data, err = base64.RawStdEncoding.DecodeString(raw); err != nil {
			return models.User{}, ErrMalformed
		}
	}

	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return models.User{}, ErrMalformed
	}

	if p.Exp <= time.Now().UnixMilli() {
		return models.User{}, ErrExpired
	}

	return models.User{ID: p.ID, Name: p.Name, Email: p.Email}, nil
}

// FromRequest returns the raw token from the auth cookie.
func FromRequest(r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", ErrMissing
	}
	return c.Value, nil
}

// SetCookie persists the raw token for the fixed 7-day window, path-scoped
// with a lax same-site policy.
func SetCookie(w http.ResponseWriter, raw string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    raw,
		Path:     "/",
		Expires:  time.Now().Add(CookieTTL),
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie deletes the persisted token. Safe to call when no cookie is set.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}
