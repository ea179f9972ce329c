package auth

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/sessions"
)

const SessionName = "portfolio_session"

const (
	keyUserID   = "uid"
	keyName     = "name"
	keyEmail    = "email"
	keyImage    = "image"
	keyProvider = "provider"
	keyTheme    = "theme"
)

// SessionStore keeps the signed in user and the theme preference in a
// signed, encrypted cookie.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore derives the hash and block keys from secret.
func NewSessionStore(secret string, maxAge int, secure bool) *SessionStore {
	hashKey := sha256.Sum256([]byte("hash:" + secret))
	blockKey := sha256.Sum256([]byte("block:" + secret))

	store := sessions.NewCookieStore(hashKey[:], blockKey[:])
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	store.MaxAge(maxAge)
	return &SessionStore{store: store}
}

// session ignores decode errors: CookieStore still hands back a fresh,
// request-cached session for a tampered or expired cookie.
func (s *SessionStore) session(r *http.Request) *sessions.Session {
	sess, _ := s.store.Get(r, SessionName)
	return sess
}

// User returns the signed in user, if any.
func (s *SessionStore) User(r *http.Request) (User, bool) {
	sess := s.session(r)
	id, _ := sess.Values[keyUserID].(string)
	if id == "" {
		return User{}, false
	}
	u := User{ID: id}
	u.Name, _ = sess.Values[keyName].(string)
	u.Email, _ = sess.Values[keyEmail].(string)
	u.Image, _ = sess.Values[keyImage].(string)
	u.Provider, _ = sess.Values[keyProvider].(string)
	return u, true
}

func (s *SessionStore) SetUser(w http.ResponseWriter, r *http.Request, u User) error {
	sess := s.session(r)
	sess.Values[keyUserID] = u.ID
	sess.Values[keyName] = u.Name
	sess.Values[keyEmail] = u.Email
	sess.Values[keyImage] = u.Image
	sess.Values[keyProvider] = u.Provider
	return sess.Save(r, w)
}

// Clear drops the user but keeps the theme preference.
func (s *SessionStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess := s.session(r)
	for _, k := range []string{keyUserID, keyName, keyEmail, keyImage, keyProvider} {
		delete(sess.Values, k)
	}
	return sess.Save(r, w)
}

// Theme returns the stored theme or "" when none was chosen.
func (s *SessionStore) Theme(r *http.Request) string {
	theme, _ := s.session(r).Values[keyTheme].(string)
	return theme
}

func (s *SessionStore) SetTheme(w http.ResponseWriter, r *http.Request, theme string) error {
	sess := s.session(r)
	sess.Values[keyTheme] = theme
	return sess.Save(r, w)
}
