package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdfchat/pdfchat-be/service"
	"github.com/pdfchat/pdfchat-be/types"
)

const maxFileSize = 10 << 20

// UploadHandler manages the session's file set over HTTP.
type UploadHandler struct {
	session *service.SessionService
}

func NewUploadHandler(session *service.SessionService) *UploadHandler {
	return &UploadHandler{
		session: session,
	}
}

// HandleAddFiles adds every "files" part of a multipart form to the
// file set. Non-PDF parts and duplicate names are silently dropped,
// mirroring the dropzone behavior.
func (h *UploadHandler) HandleAddFiles(c *gin.Context) {
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	view, err := h.session.AddFiles(files)
	if err != nil {
		c.JSON(http.StatusConflict, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   view,
	})
}

// HandleReplaceFiles swaps the entire selection.
func (h *UploadHandler) HandleReplaceFiles(c *gin.Context) {
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	view, err := h.session.ReplaceFiles(files)
	if err != nil {
		c.JSON(http.StatusConflict, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   view,
	})
}

// HandleRemoveFile removes one file by name. Removing an absent name
// succeeds without changing anything.
func (h *UploadHandler) HandleRemoveFile(c *gin.Context) {
	name := c.Param("name")

	view, err := h.session.RemoveFile(name)
	if err != nil {
		c.JSON(http.StatusConflict, types.DataResponse{
			Status:  "error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: "success",
		Data:   view,
	})
}

func (h *UploadHandler) readFiles(c *gin.Context) ([]types.UploadedFile, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "Invalid multipart form",
		})
		return nil, false
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  "error",
			Message: "No files in request",
		})
		return nil, false
	}

	files := make([]types.UploadedFile, 0, len(headers))
	for _, header := range headers {
		if header.Size > maxFileSize {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  "error",
				Message: "File too large: " + header.Filename,
			})
			return nil, false
		}
		data, err := readFile(header)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  "error",
				Message: "Failed to read file: " + header.Filename,
			})
			return nil, false
		}
		files = append(files, types.UploadedFile{
			Name:        header.Filename,
			Data:        data,
			ContentType: header.Header.Get("Content-Type"),
		})
	}
	return files, true
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}
