package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultIssuer   = "portfolio-blog"
	defaultTokenTTL = time.Hour
)

var ErrMissingSubject = errors.New("token missing sub claim")

// userClaims carries the session user in a bearer token.
type userClaims struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Provider string `json:"provider,omitempty"`
	jwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 bearer tokens with a single secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	if issuer == "" {
		issuer = defaultIssuer
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// NewJWTManagerFromEnv reads JWT_SECRET (required), JWT_ISSUER and JWT_TTL
// (a Go duration such as "12h").
func NewJWTManagerFromEnv() (*JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	var ttl time.Duration
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_TTL %q: %w", raw, err)
		}
		ttl = d
	}
	return NewJWTManager(secret, os.Getenv("JWT_ISSUER"), ttl), nil
}

// TTL is how long issued tokens stay valid.
func (m *JWTManager) TTL() time.Duration {
	return m.ttl
}

func (m *JWTManager) Sign(u User) (string, error) {
	now := time.Now()
	claims := userClaims{
		Name:     u.Name,
		Email:    u.Email,
		Picture:  u.Image,
		Provider: u.Provider,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies signature, issuer and expiry and returns the user.
func (m *JWTManager) Parse(tokenString string) (User, error) {
	var claims userClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return User{}, err
	}
	if claims.Subject == "" {
		return User{}, ErrMissingSubject
	}

	return User{
		ID:       claims.Subject,
		Name:     claims.Name,
		Email:    claims.Email,
		Image:    claims.Picture,
		Provider: claims.Provider,
	}, nil
}
