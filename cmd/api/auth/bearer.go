package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/dto"
)

var (
	ErrNoAuthorization  = errors.New("no authorization header")
	ErrNotBearer        = errors.New("authorization scheme is not bearer")
	ErrEmptyBearerToken = errors.New("empty bearer token")
)

const bearerScheme = "bearer"

// BearerToken returns the token from "Authorization: Bearer <token>". The
// scheme is case-insensitive.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoAuthorization
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrNotBearer
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrEmptyBearerToken
	}
	return token, nil
}

// AbortWithUnauthorized writes the 401 envelope. The cause stays in the logs.
func AbortWithUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Response{Success: false, Message: "Unauthorized"})
}
