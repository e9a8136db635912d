package handler

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "go-gin-event-program/pkg/app_errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	menuImageDir     = "menu-images"
	menuImagePrefix  = "/uploads/" + menuImageDir + "/"
	multipartPadding = 64 << 10
)

// UploadHandler stores menu images under <dir>/menu-images; cmd/server
// serves <dir> at /uploads.
type UploadHandler struct {
	dir      string
	maxBytes int64
}

func NewUploadHandler(dir string, maxBytes int64) *UploadHandler {
	return &UploadHandler{dir: dir, maxBytes: maxBytes}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	router := r.Group("admin/upload", requireAdmin)
	{
		router.POST("menu-image", h.UploadMenuImage)
		router.DELETE("menu-image/:filename", h.DeleteMenuImage)
	}
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}

func (h *UploadHandler) UploadMenuImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes+multipartPadding)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeTooLarge(c)
			return
		}
		writeError(c, http.StatusBadRequest, CodeInvalidArgument, "No image provided", nil)
		return
	}
	if header.Size > h.maxBytes {
		h.writeTooLarge(c)
		return
	}

	file, err := header.Open()
	if err != nil {
		handleError(c, err, "UploadMenuImage")
		return
	}
	mtype, err := mimetype.DetectReader(file)
	file.Close()
	if err != nil {
		handleError(c, err, "UploadMenuImage")
		return
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		handleError(c, fmt.Errorf("%s: %w", mtype.String(), apperrors.ErrUnsupportedMedia), "UploadMenuImage")
		return
	}

	target := filepath.Join(h.dir, menuImageDir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		handleError(c, err, "UploadMenuImage")
		return
	}

	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], mtype.Extension())
	if err := c.SaveUploadedFile(header, filepath.Join(target, name)); err != nil {
		handleError(c, err, "UploadMenuImage")
		return
	}

	c.JSON(http.StatusOK, UploadResponse{
		Success:  true,
		ImageURL: menuImagePrefix + name,
		Filename: name,
	})
}

func (h *UploadHandler) DeleteMenuImage(c *gin.Context) {
	name := c.Param("filename")
	if name == "" || filepath.Base(name) != name || strings.HasPrefix(name, ".") {
		handleError(c, apperrors.ErrInvalidInput, "DeleteMenuImage")
		return
	}

	if err := os.Remove(filepath.Join(h.dir, menuImageDir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			handleError(c, apperrors.ErrImageNotFound, "DeleteMenuImage")
			return
		}
		handleError(c, err, "DeleteMenuImage")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image deleted successfully",
	})
}

func (h *UploadHandler) writeTooLarge(c *gin.Context) {
	writeError(c, http.StatusRequestEntityTooLarge, CodeTooLarge,
		fmt.Sprintf("Image exceeds %d bytes", h.maxBytes), nil)
}
