package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-blog/cmd/api/dto"
	"portfolio-blog/cmd/api/services"
)

const messageLabel = "Message"

// ListMessagesHandler godoc
// @Summary      List messages
// @Description  Contact form inbox, newest first
// @Tags         messages
// @Security     BearerAuth
// @Param        read  query  bool  false  "Only read (true) or unread (false)"
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]models.Message}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /messages [get]
func ListMessagesHandler(svc *services.MessageService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceMessages, OpList) {
			return
		}
		msgs, err := svc.List(c.Request.Context(), services.ListMessagesInput{
			Read: queryBool(c, "read"),
		})
		if err != nil {
			respondError(c, messageLabel, err)
			return
		}
		respond(c, http.StatusOK, msgs)
	}
}

// CreateMessageHandler godoc
// @Summary      Send a contact message
// @Description  Public. The message is always stored unread
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MessageInput  true  "Message"
// @Success      201  {object}  dto.Response{data=models.Message}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      429  {object}  dto.ErrorResponseDTO
// @Router       /messages [post]
func CreateMessageHandler(svc *services.MessageService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceMessages, OpCreate) {
			return
		}
		var in dto.MessageInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondInvalidBody(c)
			return
		}
		msg, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			respondError(c, messageLabel, err)
			return
		}
		respond(c, http.StatusCreated, msg)
	}
}

// GetMessageHandler godoc
// @Summary      Get message
// @Tags         messages
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response{data=models.Message}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /messages/{id} [get]
func GetMessageHandler(svc *services.MessageService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceMessages, OpRead) {
			return
		}
		msg, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, messageLabel, err)
			return
		}
		respond(c, http.StatusOK, msg)
	}
}

// UpdateMessageHandler godoc
// @Summary      Update message
// @Description  Typically flips read to true
// @Tags         messages
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ObjectID"
// @Param        body  body  dto.MessagePatch  true  "Fields to change"
// @Success      200  {object}  dto.Response{data=models.Message}
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /messages/{id} [put]
func UpdateMessageHandler(svc *services.MessageService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceMessages, OpUpdate) {
			return
		}
		var patch dto.MessagePatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondInvalidBody(c)
			return
		}
		msg, err := svc.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			respondError(c, messageLabel, err)
			return
		}
		respond(c, http.StatusOK, msg)
	}
}

// DeleteMessageHandler godoc
// @Summary      Delete message
// @Tags         messages
// @Security     BearerAuth
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.Response{data=dto.Empty}
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /messages/{id} [delete]
func DeleteMessageHandler(svc *services.MessageService, gate Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAccess(c, gate, ResourceMessages, OpDelete) {
			return
		}
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, messageLabel, err)
			return
		}
		respond(c, http.StatusOK, dto.Empty{})
	}
}
