package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carryCookies builds a follow-up request with the cookies set by rec.
func carryCookies(rec *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSessionStoreUserRoundTrip(t *testing.T) {
	store := NewSessionStore("test-secret", 3600, false)

	rec := httptest.NewRecorder()
	require.NoError(t, store.SetUser(rec, httptest.NewRequest(http.MethodGet, "/", nil), testUser))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	got, ok := store.User(carryCookies(rec))
	require.True(t, ok)
	assert.Equal(t, testUser, got)
}

func TestSessionStoreWithoutCookie(t *testing.T) {
	store := NewSessionStore("test-secret", 3600, false)

	_, ok := store.User(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, "", store.Theme(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestSessionStoreRejectsCookieFromOtherSecret(t *testing.T) {
	issuer := NewSessionStore("secret-a", 3600, false)
	verifier := NewSessionStore("secret-b", 3600, false)

	rec := httptest.NewRecorder()
	require.NoError(t, issuer.SetUser(rec, httptest.NewRequest(http.MethodGet, "/", nil), testUser))

	_, ok := verifier.User(carryCookies(rec))
	assert.False(t, ok)
}

func TestSessionStoreRejectsTamperedCookie(t *testing.T) {
	store := NewSessionStore("test-secret", 3600, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-valid-cookie"})

	_, ok := store.User(req)
	assert.False(t, ok)
}

func TestSessionStoreClearKeepsTheme(t *testing.T) {
	store := NewSessionStore("test-secret", 3600, false)

	signedIn := httptest.NewRecorder()
	require.NoError(t, store.SetUser(signedIn, httptest.NewRequest(http.MethodGet, "/", nil), testUser))

	themed := httptest.NewRecorder()
	require.NoError(t, store.SetTheme(themed, carryCookies(signedIn), "dark"))

	signedOut := httptest.NewRecorder()
	require.NoError(t, store.Clear(signedOut, carryCookies(themed)))

	next := carryCookies(signedOut)
	_, ok := store.User(next)
	assert.False(t, ok)
	assert.Equal(t, "dark", store.Theme(next))
}
