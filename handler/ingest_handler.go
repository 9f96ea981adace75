package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdfchat/pdfchat-be/service"
	"github.com/pdfchat/pdfchat-be/types"
)

// IngestHandler triggers ingestion of the current file set.
type IngestHandler struct {
	session *service.SessionService
}

func NewIngestHandler(session *service.SessionService) *IngestHandler {
	return &IngestHandler{
		session: session,
	}
}

func (h *IngestHandler) HandleProcess(c *gin.Context) {
	view, err := h.session.Process(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProcessing):
			c.JSON(http.StatusConflict, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
			})
		case types.IsValidationError(err):
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
				Data: types.Notification{
					Title:       "No files selected",
					Description: "Please upload at least one PDF file to process.",
				},
			})
		default:
			c.JSON(http.StatusInternalServerError, types.DataResponse{
				Status:  "error",
				Message: err.Error(),
				Data: types.Notification{
					Title:       "Error processing PDFs",
					Description: "There was an issue reading the PDF files. Please ensure they are valid PDFs and try again.",
				},
			})
		}
		return
	}

	plural := ""
	if len(view.Files) > 1 {
		plural = "s"
	}
	c.JSON(http.StatusOK, types.DataResponse{
		Status:  "success",
		Message: "Processing Complete",
		Data: gin.H{
			"session": view,
			"notification": types.Notification{
				Title:       "Processing Complete",
				Description: "Your document" + plural + " are ready. You can now ask questions.",
			},
		},
	})
}
