package token

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, id, name, email string, exp time.Time) string {
	t.Helper()
	raw, err := json.Marshal(map[string]interface{}{
		"id":    id,
		"name":  name,
		"email": email,
		"exp":   exp.UnixMilli(),
	})
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(raw)
}

func TestDecodeValidToken(t *testing.T) {
	raw := makeToken(t, "u-1", "Ana", "ana@example.com", time.Now().Add(time.Hour))

	user, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
}

func TestDecodeUnpaddedToken(t *testing.T) {
	padded := makeToken(t, "u-2", "Bia", "bia@example.com", time.Now().Add(time.Hour))
	data, err := base64.StdEncoding.DecodeString(padded)
	require.NoError(t, err)

	user, err := Decode(base64.RawStdEncoding.EncodeToString(data))
	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
}

func TestDecodeExpiredToken(t *testing.T) {
	raw := makeToken(t, "u-1", "Ana", "ana@example.com", time.Now().Add(-time.Minute))

	_, err := Decode(raw)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestDecodeMalformedToken(t *testing.T) {
	_, err := Decode("!!!not-base64!!!")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Decode(base64.StdEncoding.EncodeToString([]byte("not json")))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestCookieRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, "tok-123")

	resp := rec.Result()
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "tok-123", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.WithinDuration(t, time.Now().Add(CookieTTL), cookies[0].Expires, time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	raw, err := FromRequest(req)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", raw)
}

func TestClearCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearCookie(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestFromRequestMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := FromRequest(req)
	assert.ErrorIs(t, err, ErrMissing)
}
