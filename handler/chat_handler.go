package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdfchat/pdfchat-be/service"
	"github.com/pdfchat/pdfchat-be/types"
)

// ChatHandler submits questions against the processed corpus.
type ChatHandler struct {
	session *service.SessionService
}

func NewChatHandler(session *service.SessionService) *ChatHandler {
	return &ChatHandler{
		session: session,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid request body",
		})
		return
	}

	resp, err := h.session.Ask(c.Request.Context(), req.Question)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyQuestion):
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrNotReady), errors.Is(err, service.ErrBusy):
			c.JSON(http.StatusConflict, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusBadGateway, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
				Data: types.AskFailure{
					Notification: types.Notification{
						Title:       "Error",
						Description: "Failed to get an answer. Please try again.",
					},
					RestoredInput: req.Question,
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   resp,
	})
}
