package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-blog/cmd/api/auth"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrNotAllowed      = errors.New("identity not allowed")
	ErrTokensDisabled  = errors.New("token issuing disabled")
)

// AuthService drives provider sign-in and bearer token issuing.
type AuthService struct {
	providers *auth.Providers
	tokens    *auth.JWTManager
	allowed   map[string]struct{}
}

// NewAuthService restricts sign-in to allowedEmails; an empty list admits
// any identity the provider vouches for. tokens may be nil.
func NewAuthService(providers *auth.Providers, tokens *auth.JWTManager, allowedEmails []string) *AuthService {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, e := range allowedEmails {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			allowed[e] = struct{}{}
		}
	}
	return &AuthService{providers: providers, tokens: tokens, allowed: allowed}
}

func (s *AuthService) Providers() []auth.Provider {
	return s.providers.List()
}

func (s *AuthService) BuildLoginURL(providerID, state string) (string, error) {
	p, ok := s.providers.Get(providerID)
	if !ok {
		return "", ErrUnknownProvider
	}
	return p.AuthCodeURL(state), nil
}

// CompleteSignIn exchanges the authorization code and returns the identity
// to store in the session.
func (s *AuthService) CompleteSignIn(ctx context.Context, providerID, code string) (auth.User, error) {
	p, ok := s.providers.Get(providerID)
	if !ok {
		return auth.User{}, ErrUnknownProvider
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		return auth.User{}, fmt.Errorf("%s oauth exchange: %w", providerID, err)
	}
	u, err := p.FetchUser(ctx, token)
	if err != nil {
		return auth.User{}, fmt.Errorf("%s fetch user: %w", providerID, err)
	}
	if !s.isAllowed(u.Email) {
		return auth.User{}, fmt.Errorf("%w: %s", ErrNotAllowed, u.Email)
	}
	return u, nil
}

func (s *AuthService) isAllowed(email string) bool {
	if len(s.allowed) == 0 {
		return true
	}
	_, ok := s.allowed[strings.ToLower(email)]
	return ok
}

// IssueToken signs a bearer token for u. It returns the token and its
// lifetime in seconds.
func (s *AuthService) IssueToken(u auth.User) (string, int64, error) {
	if s.tokens == nil {
		return "", 0, ErrTokensDisabled
	}
	token, err := s.tokens.Sign(u)
	if err != nil {
		return "", 0, err
	}
	return token, int64(s.tokens.TTL().Seconds()), nil
}
