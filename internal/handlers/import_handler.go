package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "payday/internal/errors"
	"payday/internal/middleware"
	"payday/internal/services"
)

// maxUploadBytes caps uploaded CSV size well above the 2000-row limit.
const maxUploadBytes = 5 << 20

// ImportHandler handles the two-phase CSV import pipeline.
type ImportHandler struct {
	importService services.ImportServicer
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService services.ImportServicer) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// Stage accepts a CSV upload, parses it, and holds the accepted rows in the
// session scratch space for review. The upload may be a multipart form with a
// "file" field or a raw request body. Nothing is written to the database.
func (h *ImportHandler) Stage(c *gin.Context) {
	raw, err := readUpload(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	preview, err := h.importService.Stage(middleware.SessionID(c), raw)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

// Preview returns the currently staged rows without committing them.
func (h *ImportHandler) Preview(c *gin.Context) {
	preview, err := h.importService.Preview(middleware.SessionID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

// Commit writes the staged rows to the expense table, flagging duplicates,
// and clears the scratch space.
func (h *ImportHandler) Commit(c *gin.Context) {
	result, err := h.importService.Commit(middleware.SessionID(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// Discard drops any staged rows. Succeeds even when nothing is staged.
func (h *ImportHandler) Discard(c *gin.Context) {
	h.importService.Discard(middleware.SessionID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Staged import discarded"})
}

// readUpload extracts the raw CSV bytes from either a multipart "file" field
// or the request body.
func readUpload(c *gin.Context) ([]byte, error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing file field in upload")
		}
		if fileHeader.Size > maxUploadBytes {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Uploaded file is too large")
		}
		f, err := fileHeader.Open()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		defer f.Close()
		raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return raw, nil
	}

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxUploadBytes))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return raw, nil
}
