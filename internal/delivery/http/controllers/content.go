package controllers

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/content"
	"EasyToLearn/internal/service/upload"
	"EasyToLearn/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ContentService interface {
	Content() []models.ContentItem
	ContentByID(id string) (*models.ContentItem, bool)
	AddContent(item content.NewContentItem) (string, error)
	UpdateContent(id string, patch content.ContentPatch) bool
	DeleteContent(id string) bool
}

type ContentHandler struct {
	log      logger.Log
	service  ContentService
	sessions SessionService
	uploads  *upload.Service
}

func NewContentHandler(l logger.Log, service ContentService, sessions SessionService, uploads *upload.Service) *ContentHandler {
	return &ContentHandler{
		log:      l,
		service:  service,
		sessions: sessions,
		uploads:  uploads,
	}
}

// ListContent applies the visibility rules for the current viewer; the
// repository itself returns everything.
func (h *ContentHandler) ListContent(c *gin.Context) {
	viewer := h.sessions.Current()
	c.JSON(http.StatusOK, models.VisibleContent(viewer, h.service.Content()))
}

func (h *ContentHandler) ContentByID(c *gin.Context) {
	item, ok := h.service.ContentByID(c.Param("content_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrContentNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

type createContentRequest struct {
	Type         string `json:"type" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	FileURL      string `json:"fileUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Status       string `json:"status"`
}

func (h *ContentHandler) CreateContent(c *gin.Context) {
	var input createContentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.service.AddContent(content.NewContentItem{
		Type:         input.Type,
		Title:        input.Title,
		Description:  input.Description,
		URL:          input.URL,
		FileURL:      input.FileURL,
		ThumbnailURL: input.ThumbnailURL,
		Status:       input.Status,
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error creating content", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ContentHandler) UpdateContent(c *gin.Context) {
	var patch content.ContentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.service.UpdateContent(c.Param("content_id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrContentNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content updated"})
}

func (h *ContentHandler) DeleteContent(c *gin.Context) {
	if !h.service.DeleteContent(c.Param("content_id")) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete content"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "content deleted"})
}

// UploadFile encodes a multipart file in place and returns the data URL for
// the caller to attach to a record. Nothing is stored server-side.
func (h *ContentHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	dataURL, err := h.uploads.EncodeDataURL(fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"file_url":  dataURL,
		"file_name": fileHeader.Filename,
		"file_type": upload.ContentType(fileHeader.Filename),
		"size":      upload.FormatFileSize(fileHeader.Size),
	})
}
