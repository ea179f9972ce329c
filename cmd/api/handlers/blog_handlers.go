package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/services"
)

const blogLabel = "Blog"

// ListBlogsHandler godoc
// @Summary      List blog posts
// @Description  All posts, newest first
// @Tags         blogs
// @Param        category  query  string  false  "Exact category"
// @Param        tag       query  string  false  "Posts carrying this tag"
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]models.BlogPost}
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blogs [get]
func ListBlogsHandler(svc *services.BlogService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceBlogs, OpList) {
			return
		}
		posts, err := svc.List(c.Request.Context(), services.ListBlogsInput{
			Category: c.Query("category"),
			Tag:      c.Query("tag"),
		})
		if err != nil {
			respondError(c, blogLabel, err)
			return
		}
		respond(c, http.StatusOK, posts)
	}
}

// CreateBlogHandler godoc
// @Summary      Create blog post
// @Tags         blogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BlogPostInput  true  "Post"
// @Success      201  {object}  dto.Response{data=models.BlogPost}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Router       /blogs [post]
func CreateBlogHandler(svc *services.BlogService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceBlogs, OpCreate) {
			return
		}
		var in dto.BlogPostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalidBody(c)
			return
		}
		post, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, blogLabel, err)
			return
		}
		respond(c, http.StatusCreated, post)
	}
}

// GetBlogHandler godoc
// @Summary      Get blog post
// @Tags         blogs
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response{data=models.BlogPost}
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [get]
func GetBlogHandler(svc *services.BlogService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceBlogs, OpRead) {
			return
		}
		post, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, blogLabel, err)
			return
		}
		respond(c, http.StatusOK, post)
	}
}

// UpdateBlogHandler godoc
// @Summary      Update blog post
// @Description  Fields present in the body overwrite the stored ones; the result is re-validated
// @Tags         blogs
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ObjectID"
// @Param        body  body  dto.BlogPostPatch  true  "Fields to change"
// @Success      200  {object}  dto.Response{data=models.BlogPost}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [put]
func UpdateBlogHandler(svc *services.BlogService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceBlogs, OpUpdate) {
			return
		}
		var patch dto.BlogPostPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondInvalidBody(c)
			return
		}
		post, err := svc.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, blogLabel, err)
			return
		}
		respond(c, http.StatusOK, post)
	}
}

// DeleteBlogHandler godoc
// @Summary      Delete blog post
// @Tags         blogs
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.Empty}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blogs/{id} [delete]
func DeleteBlogHandler(svc *services.BlogService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceBlogs, OpDelete) {
			return
		}
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, blogLabel, err)
			return
		}
		respond(c, http.StatusOK, dto.Empty{})
	}
}
