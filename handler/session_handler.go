package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdfchat/pdfchat-be/service"
	"github.com/pdfchat/pdfchat-be/types"
)

// SessionHandler exposes the read-only session snapshot.
type SessionHandler struct {
	session *service.SessionService
}

func NewSessionHandler(session *service.SessionService) *SessionHandler {
	return &SessionHandler{
		session: session,
	}
}

func (h *SessionHandler) HandleSession(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   h.session.Snapshot(),
	})
}
