package app_errors

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect email or password")
var ErrPasswordTooShort = errors.New("password must be at least 6 characters")
var ErrTokenExpired = errors.New("token expired")
var ErrNotAuthenticated = errors.New("not authenticated")
var ErrForbidden = errors.New("insufficient permissions")
var ErrPostNotFound = errors.New("blog post not found")
var ErrEmptyPost = errors.New("post needs at least one non-empty section")
var ErrQuestionNotFound = errors.New("quiz question not found")
var ErrBadOptionCount = errors.New("question needs between 2 and 6 options")
var ErrBadCorrectIndex = errors.New("correct index out of range")
var ErrContentNotFound = errors.New("content item not found")
var ErrNoteNotFound = errors.New("note not found")
var ErrFileType = errors.New("unsupported file format")
