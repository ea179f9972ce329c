package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/services"
)

const projectLabel = "Project"

// ListProjectsHandler godoc
// @Summary      List projects
// @Description  All projects, newest first
// @Tags         projects
// @Param        featured    query  bool    false  "Only featured (true) or non-featured (false)"
// @Param        technology  query  string  false  "Projects using this technology"
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]models.Project}
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceProjects, OpList) {
			return
		}
		projects, err := svc.List(c.Request.Context(), services.ListProjectsInput{
			Featured:   queryBool(c, "featured"),
			Technology: c.Query("technology"),
		})
		if err != nil {
			respondError(c, projectLabel, err)
			return
		}
		respond(c, http.StatusOK, projects)
	}
}

// CreateProjectHandler godoc
// @Summary      Create project
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProjectInput  true  "Project"
// @Success      201  {object}  dto.Response{data=models.Project}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /projects [post]
func CreateProjectHandler(svc *services.ProjectService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceProjects, OpCreate) {
			return
		}
		var in dto.ProjectInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalidBody(c)
			return
		}
		project, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, projectLabel, err)
			return
		}
		respond(c, http.StatusCreated, project)
	}
}

// GetProjectHandler godoc
// @Summary      Get project
// @Tags         projects
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response{data=models.Project}
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id} [get]
func GetProjectHandler(svc *services.ProjectService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceProjects, OpRead) {
			return
		}
		project, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, projectLabel, err)
			return
		}
		respond(c, http.StatusOK, project)
	}
}

// UpdateProjectHandler godoc
// @Summary      Update project
// @Description  Fields present in the body overwrite the stored ones; the result is re-validated
// @Tags         projects
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ObjectID"
// @Param        body  body  dto.ProjectPatch  true  "Fields to change"
// @Success      200  {object}  dto.Response{data=models.Project}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id} [put]
func UpdateProjectHandler(svc *services.ProjectService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceProjects, OpUpdate) {
			return
		}
		var patch dto.ProjectPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondInvalidBody(c)
			return
		}
		project, err := svc.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, projectLabel, err)
			return
		}
		respond(c, http.StatusOK, project)
	}
}

// DeleteProjectHandler godoc
// @Summary      Delete project
// @Tags         projects
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.Empty}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /projects/{id} [delete]
func DeleteProjectHandler(svc *services.ProjectService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceProjects, OpDelete) {
			return
		}
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, projectLabel, err)
			return
		}
		respond(c, http.StatusOK, dto.Empty{})
	}
}
