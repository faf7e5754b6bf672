package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/services"
)

// MessageService defines the contact-form operations consumed by HTTP handlers.
type MessageService interface {
	Send(ctx context.Context, in services.SendMessageInput) (*domain.Message, error)
	List(ctx context.Context) ([]domain.Message, error)
}

// SendMessageRequest is the JSON payload for contact-form submissions.
type SendMessageRequest struct {
	Name    string `json:"name" binding:"required" example:"Asha Rao"`
	Email   string `json:"email" binding:"required" example:"asha@example.com"`
	Message string `json:"message" binding:"required" example:"Delivery was late"`
}

// SendMessage godoc
// @ID          sendMessage
// @Summary     Submit a contact message
// @Tags        Messages
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.SendMessageRequest  true  "Message payload"
// @Success     201  {object} handlers.ReviewsResponse
// @Failure     400  {object} handlers.ErrorResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /messages [post]
func (h *Handlers) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, email and message are required")
		return
	}

	m, err := h.messageSvc.Send(c.Request.Context(), services.SendMessageInput{
		SenderName:  req.Name,
		SenderEmail: req.Email,
		Body:        req.Message,
	})
	if err != nil {
		switch err {
		case services.ErrMessageInvalid:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}

	ok(c, http.StatusCreated, ReviewsResponse{Message: "message sent successfully", Result: m})
}

// ListMessages godoc
// @ID          listMessages
// @Summary     List contact messages
// @Tags        Messages
// @Produce     json
// @Success     200  {object} handlers.ReviewsResponse
// @Failure     500  {object} handlers.ErrorResponse
// @Router      /messages [get]
func (h *Handlers) ListMessages(c *gin.Context) {
	items, err := h.messageSvc.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, ReviewsResponse{Message: "all messages", Result: items})
}
