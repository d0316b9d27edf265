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

type NotesService interface {
	Notes() []models.NoteResource
	NoteByID(id string) (*models.NoteResource, bool)
	AddNote(note content.NewNote) (string, error)
	UpdateNote(id string, patch content.NotePatch) bool
	DeleteNote(id string) bool
}

type NotesHandler struct {
	log     logger.Log
	service NotesService
	uploads *upload.Service
}

func NewNotesHandler(l logger.Log, service NotesService, uploads *upload.Service) *NotesHandler {
	return &NotesHandler{log: l, service: service, uploads: uploads}
}

func (h *NotesHandler) ListNotes(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Notes())
}

func (h *NotesHandler) NoteByID(c *gin.Context) {
	note, ok := h.service.NoteByID(c.Param("note_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrNoteNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, note)
}

// CreateNote takes a multipart form: the document file plus its metadata.
// The file is checked against the accepted note formats and encoded in
// place.
func (h *NotesHandler) CreateNote(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "attach a note file before publishing"})
		return
	}
	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	resourceType := c.PostForm("resourceType")
	if resourceType == "" {
		resourceType = models.NoteTypePDF
	}

	if err := h.uploads.CheckNoteFile(fileHeader.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	id, err := h.service.AddNote(content.NewNote{
		Title:        title,
		Description:  c.PostForm("description"),
		Category:     c.PostForm("category"),
		ResourceType: resourceType,
		FileURL:      dataURL,
		FileName:     fileHeader.Filename,
		FileType:     upload.ContentType(fileHeader.Filename),
	})
	if err != nil {
		if errors.Is(err, app_errors.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error creating note", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var patch content.NotePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.service.UpdateNote(c.Param("note_id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrNoteNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note updated"})
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	if !h.service.DeleteNote(c.Param("note_id")) {
		c.JSON(http.StatusForbidden, gin.H{"error": app_errors.ErrForbidden.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}
