package service

import (
	"EasyToLearn/internal/service/auth"
	"EasyToLearn/internal/service/content"
	"EasyToLearn/internal/service/session"
	"EasyToLearn/internal/service/social"
	"EasyToLearn/internal/service/upload"
)

type Collection struct {
	Sessions *session.Store
	Content  *content.Repository
	Uploads  *upload.Service
	JWT      *auth.JWTManager
	Social   *social.GoogleProvider
}
