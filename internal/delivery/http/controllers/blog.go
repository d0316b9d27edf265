package controllers

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/content"
	"EasyToLearn/pkg/logger"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BlogService interface {
	BlogPosts() []models.BlogPost
	BlogPostByID(id string) (*models.BlogPost, bool)
	AddBlogPost(post content.NewBlogPost) (string, error)
	UpdateBlogPost(id string, patch content.BlogPostPatch) bool
	DeleteBlogPost(id string) bool
}

type BlogHandler struct {
	log  logger.Log
	blog BlogService
}

func NewBlogHandler(l logger.Log, blog BlogService) *BlogHandler {
	return &BlogHandler{log: l, blog: blog}
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, h.blog.BlogPosts())
}

func (h *BlogHandler) PostByID(c *gin.Context) {
	post, ok := h.blog.BlogPostByID(c.Param("post_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrPostNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

type createPostRequest struct {
	Title         string               `json:"title" binding:"required"`
	Content       string               `json:"content"`
	CoverImageURL string               `json:"coverImageUrl"`
	Sections      []models.BlogSection `json:"sections" binding:"required"`
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var input createPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.blog.AddBlogPost(content.NewBlogPost{
		Title:         input.Title,
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
		Sections:      input.Sections,
	})
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrEmptyPost):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			h.log.ErrorErr("error creating blog post", err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var patch content.BlogPostPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.blog.UpdateBlogPost(c.Param("post_id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrPostNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

// DeletePost reports success even for an unknown id.
func (h *BlogHandler) DeletePost(c *gin.Context) {
	if !h.blog.DeleteBlogPost(c.Param("post_id")) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}
