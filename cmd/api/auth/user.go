package auth

import "errors"

// ErrNoSession is returned by the gate when a request carries no valid session.
var ErrNoSession = errors.New("no_session")

// User is the authenticated identity kept in the session and token.
type User struct {
	ID       string
	Name     string
	Email    string
	Image    string
	Provider string
}
