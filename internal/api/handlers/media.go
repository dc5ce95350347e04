package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"wooflow/internal/logger"
	"wooflow/internal/woo"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	client *woo.Client
	logger *logger.Logger
}

func NewMediaHandler(client *woo.Client, logger *logger.Logger) *MediaHandler {
	return &MediaHandler{client: client, logger: logger}
}

// Create registers a media item from a remote image URL.
func (h *MediaHandler) Create(c *gin.Context) {
	var req struct {
		SourceURL string `json:"source_url" binding:"required"`
		AltText   string `json:"alt_text"`
		Title     string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := h.client.CreateMediaFromURL(c.Request.Context(), req.SourceURL, req.AltText, req.Title)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create media: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, media)
}

// Upload accepts a multipart image file, stages it on disk and sends the
// bytes to the WordPress media library.
func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	tmpPath, err := stageUpload(file.Filename, func(dst io.Writer) error {
		src, err := file.Open()
		if err != nil {
			return err
		}
		defer src.Close()
		_, err = io.Copy(dst, src)
		return err
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stage upload: " + err.Error()})
		return
	}
	defer os.Remove(tmpPath)

	media, err := h.client.CreateMediaFromFile(c.Request.Context(), tmpPath, c.PostForm("alt_text"), c.PostForm("title"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload media: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	media, err := h.client.GetMedia(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Media not found: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.client.DeleteMedia(c.Request.Context(), id, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to delete media: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}

// stageUpload writes the incoming payload to a temp file that keeps the
// original extension so MIME detection still works downstream.
func stageUpload(filename string, write func(io.Writer) error) (string, error) {
	tmp, err := os.CreateTemp("", "wooflow-upload-*"+filepath.Ext(filename))
	if err != nil {
		return "", err
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}
