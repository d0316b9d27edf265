package controllers

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/delivery/http/controllers/middleware"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/content"
	"EasyToLearn/internal/service/quiz"
	"EasyToLearn/pkg/logger"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

type QuizService interface {
	QuizQuestions() []models.QuizQuestion
	AddQuizQuestion(q content.NewQuizQuestion) (string, error)
	UpdateQuizQuestion(id string, patch content.QuizQuestionPatch) bool
	DeleteQuizQuestion(id string) bool
	RecordAttempt(answers []int) (*models.QuizAttempt, error)
	AttemptsByUser(userID string) []models.QuizAttempt
}

// QuizHandler owns the active quiz engine; starting a new quiz tears the
// previous one down so its timer does not keep ticking.
type QuizHandler struct {
	log     logger.Log
	service QuizService

	mu     sync.Mutex
	engine *quiz.Engine
}

func NewQuizHandler(l logger.Log, service QuizService) *QuizHandler {
	return &QuizHandler{log: l, service: service}
}

func (h *QuizHandler) ListQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.QuizQuestions())
}

type quizStateResponse struct {
	State      string `json:"state"`
	Index      int    `json:"index"`
	Total      int    `json:"total"`
	Answers    []int  `json:"answers"`
	Elapsed    string `json:"elapsed"`
	Score      int    `json:"score"`
	Percentage int    `json:"percentage"`
	TimeTaken  string `json:"time_taken"`
	Message    string `json:"message,omitempty"`
}

func stateName(s quiz.State) string {
	switch s {
	case quiz.Submitted:
		return "submitted"
	case quiz.Reviewing:
		return "reviewing"
	default:
		return "in_progress"
	}
}

func (h *QuizHandler) stateResponse(e *quiz.Engine) quizStateResponse {
	correct, total := e.Score()
	resp := quizStateResponse{
		State:      stateName(e.State()),
		Index:      e.Index(),
		Total:      total,
		Answers:    e.Answers(),
		Elapsed:    quiz.FormatSeconds(e.ElapsedSeconds()),
		Score:      correct,
		Percentage: e.Percentage(),
		TimeTaken:  quiz.FormatSeconds(e.TimeTakenSeconds()),
	}
	if e.State() != quiz.InProgress {
		resp.Message = e.ResultMessage()
	}
	return resp
}

func (h *QuizHandler) withEngine(c *gin.Context, fn func(e *quiz.Engine)) {
	h.mu.Lock()
	e := h.engine
	h.mu.Unlock()
	if e == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no quiz in progress"})
		return
	}
	fn(e)
	c.JSON(http.StatusOK, h.stateResponse(e))
}

func (h *QuizHandler) Start(c *gin.Context) {
	e := quiz.NewEngine(h.log, h.service, h.service.QuizQuestions())
	h.mu.Lock()
	if h.engine != nil {
		h.engine.Close()
	}
	h.engine = e
	h.mu.Unlock()
	c.JSON(http.StatusOK, h.stateResponse(e))
}

type answerRequest struct {
	OptionIndex *int `json:"option_index" binding:"required"`
}

func (h *QuizHandler) Answer(c *gin.Context) {
	var input answerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.withEngine(c, func(e *quiz.Engine) { e.SelectAnswer(*input.OptionIndex) })
}

func (h *QuizHandler) Next(c *gin.Context) {
	h.withEngine(c, func(e *quiz.Engine) { e.Next() })
}

func (h *QuizHandler) Previous(c *gin.Context) {
	h.withEngine(c, func(e *quiz.Engine) { e.Previous() })
}

func (h *QuizHandler) Submit(c *gin.Context) {
	h.withEngine(c, func(e *quiz.Engine) { e.Submit() })
}

func (h *QuizHandler) Retry(c *gin.Context) {
	h.withEngine(c, func(e *quiz.Engine) { e.Retry() })
}

func (h *QuizHandler) ToggleReview(c *gin.Context) {
	h.withEngine(c, func(e *quiz.Engine) { e.ToggleReview() })
}

func (h *QuizHandler) State(c *gin.Context) {
	h.withEngine(c, func(e *quiz.Engine) {})
}

// Close stops the active engine's timer.
func (h *QuizHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.engine != nil {
		h.engine.Close()
		h.engine = nil
	}
}

func (h *QuizHandler) MyAttempts(c *gin.Context) {
	userID := c.GetString(middleware.ClientIDCtx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, h.service.AttemptsByUser(userID))
}

type questionRequest struct {
	Question     string   `json:"question" binding:"required"`
	Options      []string `json:"options" binding:"required"`
	CorrectIndex int      `json:"correctIndex"`
}

func (h *QuizHandler) CreateQuestion(c *gin.Context) {
	var input questionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.service.AddQuizQuestion(content.NewQuizQuestion{
		Question:     input.Question,
		Options:      input.Options,
		CorrectIndex: input.CorrectIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, app_errors.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, app_errors.ErrBadOptionCount), errors.Is(err, app_errors.ErrBadCorrectIndex):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			h.log.ErrorErr("error creating quiz question", err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *QuizHandler) UpdateQuestion(c *gin.Context) {
	var patch content.QuizQuestionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.service.UpdateQuizQuestion(c.Param("question_id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrQuestionNotFound.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question updated"})
}

func (h *QuizHandler) DeleteQuestion(c *gin.Context) {
	if !h.service.DeleteQuizQuestion(c.Param("question_id")) {
		c.JSON(http.StatusForbidden, gin.H{"error": app_errors.ErrForbidden.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "question deleted"})
}

// RemoveOption drops one option from a question and re-indexes the correct
// answer to match.
func (h *QuizHandler) RemoveOption(c *gin.Context) {
	optionIndex, err := strconv.Atoi(c.Param("option_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid option index"})
		return
	}
	questionID := c.Param("question_id")

	var target *models.QuizQuestion
	for _, q := range h.service.QuizQuestions() {
		if q.ID == questionID {
			q := q
			target = &q
			break
		}
	}
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": app_errors.ErrQuestionNotFound.Error()})
		return
	}

	updated := models.RemoveOption(*target, optionIndex)
	if len(updated.Options) == len(target.Options) {
		c.JSON(http.StatusBadRequest, gin.H{"error": app_errors.ErrBadOptionCount.Error()})
		return
	}
	if !h.service.UpdateQuizQuestion(questionID, content.QuizQuestionPatch{
		Options:      updated.Options,
		CorrectIndex: &updated.CorrectIndex,
	}) {
		c.JSON(http.StatusForbidden, gin.H{"error": app_errors.ErrForbidden.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
