package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/extract"
	"resume-builder-backend/internal/shared/server/respond"
)

const maxExtractBody = 10 << 20 // 10MB

type extractRequest struct {
	FileDataURI string `json:"fileDataUri"`
	MimeType    string `json:"mimeType"`
}

func extractText(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxExtractBody)

	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.FileDataURI) == "" || strings.TrimSpace(req.MimeType) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "fileDataUri and mimeType are required", nil)
		return
	}

	text, err := extract.FromDataURI(req.FileDataURI, req.MimeType)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "file type is not supported", gin.H{"mimeType": req.MimeType})
		} else {
			respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text", nil)
		}
		return
	}
	respond.OK(c, gin.H{"text": text})
}
