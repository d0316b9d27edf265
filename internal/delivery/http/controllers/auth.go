package controllers

import (
	"EasyToLearn/internal/app_errors"
	"EasyToLearn/internal/delivery/http/controllers/middleware"
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/auth"
	"EasyToLearn/internal/service/session"
	"EasyToLearn/pkg/logger"
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type SessionService interface {
	Login(email, password string) bool
	Logout()
	Register(email, password, name string) (*models.User, error)
	SocialLogin(profile session.SocialProfile) (*models.User, error)
	Current() *models.User
	UserByID(id string) (*models.User, error)
}

// SocialProvider is the external identity collaborator for Google sign-in.
type SocialProvider interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	UserInfo(ctx context.Context, token *oauth2.Token) (*session.SocialProfile, error)
}

type AuthHandler struct {
	log      logger.Log
	sessions SessionService
	jwt      *auth.JWTManager
	social   SocialProvider

	mu            sync.Mutex
	pendingStates map[string]struct{}
}

func NewAuthHandler(l logger.Log, sessions SessionService, jwt *auth.JWTManager, social SocialProvider) *AuthHandler {
	return &AuthHandler{
		log:           l,
		sessions:      sessions,
		jwt:           jwt,
		social:        social,
		pendingStates: make(map[string]struct{}),
	}
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Role: u.Role, Name: u.Name}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        userResponse `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.sessions.Login(input.Email, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": app_errors.ErrIncorrectPassword.Error()})
		return
	}

	user := h.sessions.Current()
	token, err := h.jwt.Generate(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error signing access token", err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessToken: token, User: toUserResponse(user)})
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input registerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.sessions.Register(input.Email, input.Password, input.Name)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserExists) || errors.Is(err, app_errors.ErrPasswordTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("error handling register user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "registration success", "user": toUserResponse(user)})
}

// Logout clears the session; the client is told where to navigate next.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"redirect": "/login"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(middleware.ClientIDCtx)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	user, err := h.sessions.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// GoogleLogin starts the OAuth dance with a one-shot state token.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.social == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "social login not configured"})
		return
	}
	state := uuid.NewString()
	h.mu.Lock()
	h.pendingStates[state] = struct{}{}
	h.mu.Unlock()
	c.Redirect(http.StatusFound, h.social.AuthURL(state))
}

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	if h.social == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "social login not configured"})
		return
	}
	state := c.Query("state")
	h.mu.Lock()
	_, known := h.pendingStates[state]
	delete(h.pendingStates, state)
	h.mu.Unlock()
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth state"})
		return
	}

	token, err := h.social.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		h.log.ErrorErr("oauth exchange failed", err)
		return
	}
	profile, err := h.social.UserInfo(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		h.log.ErrorErr("oauth userinfo failed", err)
		return
	}

	user, err := h.sessions.SocialLogin(*profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		h.log.ErrorErr("social login failed", err)
		return
	}
	accessToken, err := h.jwt.Generate(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loginResponse{AccessToken: accessToken, User: toUserResponse(user)})
}
