package domain

import "errors"

// Business errors. These are the only errors surfaced to end users;
// storage failures propagate separately and map to 500s.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrBundleNotFound     = errors.New("bundle not found")
	ErrReviewNotFound     = errors.New("review not found")
)
