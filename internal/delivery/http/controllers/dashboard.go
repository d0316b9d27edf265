package controllers

import (
	"EasyToLearn/internal/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	sessions SessionService
	content  ContentService
	blog     BlogService
	quiz     QuizService
}

func NewDashboardHandler(sessions SessionService, content ContentService, blog BlogService, quiz QuizService) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
		content:  content,
		blog:     blog,
		quiz:     quiz,
	}
}

// Overview backs the dashboard landing page: who is signed in plus the
// counts the cards show.
func (h *DashboardHandler) Overview(c *gin.Context) {
	user := h.sessions.Current()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	attempts := h.quiz.AttemptsByUser(user.ID)
	visible := models.VisibleContent(user, h.content.Content())

	c.JSON(http.StatusOK, gin.H{
		"user":           toUserResponse(user),
		"content_count":  len(visible),
		"post_count":     len(h.blog.BlogPosts()),
		"question_count": len(h.quiz.QuizQuestions()),
		"attempt_count":  len(attempts),
	})
}
