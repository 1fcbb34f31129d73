package handler

import (
	"net/http"

	"github.com/Eursukkul/partywknd/internal/dto"
	"github.com/Eursukkul/partywknd/internal/repository"
	"github.com/Eursukkul/partywknd/internal/service"
	"github.com/labstack/echo/v4"
)

type MessageHandler struct {
	svc service.MessageService
}

func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

func (h *MessageHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/messages", h.SendMessage)
	api.GET("/messages", h.ListMessages)
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req dto.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	msg, err := h.svc.SendMessage(c.Request().Context(), service.SendMessageInput{
		SenderID:      req.SenderID,
		ReceiverID:    req.ReceiverID,
		PackageID:     req.PackageID,
		MessageText:   req.MessageText,
		AttachmentURL: req.AttachmentURL,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToMessageResponse(msg))
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	msgs, err := h.svc.ListMessages(c.Request().Context(), repository.MessageFilter{
		UserID:    c.QueryParam("user_id"),
		PackageID: c.QueryParam("package_id"),
	})
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.MessageResponse, len(msgs))
	for i := range msgs {
		resp[i] = dto.ToMessageResponse(&msgs[i])
	}
	return c.JSON(http.StatusOK, resp)
}
