package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/auth"
	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/services"
)

// GetThemeHandler godoc
// @Summary      Current theme preference
// @Tags         user
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.Theme}
// @Router       /user/theme [get]
func GetThemeHandler(sessions *auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		respond(c, http.StatusOK, dto.Theme{Theme: services.NormalizeTheme(sessions.Theme(c.Request))})
	}
}

// SetThemeHandler godoc
// @Summary      Store theme preference
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.Theme  true  "light or dark"
// @Success      200  {object}  dto.Response{data=dto.Theme}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /user/theme [post]
func SetThemeHandler(sessions *auth.SessionStore, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceTheme, OpUpdate) {
			return
		}
		var in dto.Theme
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalidBody(c)
			return
		}
		if err := services.ValidateTheme(in.Theme); err != nil {
			respondError(c, "Theme", err)
			return
		}
		if err := sessions.SetTheme(c.Writer, c.Request, in.Theme); err != nil {
			respondError(c, "Theme", err)
			return
		}
		respond(c, http.StatusOK, in)
	}
}
