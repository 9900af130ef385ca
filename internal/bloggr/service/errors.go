package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrSessionNotFound    = errors.New("session_not_found")
	ErrStaleSession       = errors.New("stale_session")

	ErrLoginTaken       = errors.New("login_taken")
	ErrEmailTaken       = errors.New("email_taken")
	ErrUnknownEmail     = errors.New("unknown_email")
	ErrInvalidCode      = errors.New("invalid_code")
	ErrAlreadyConfirmed = errors.New("already_confirmed")

	ErrUserNotFound    = errors.New("user_not_found")
	ErrBlogNotFound    = errors.New("blog_not_found")
	ErrPostNotFound    = errors.New("post_not_found")
	ErrCommentNotFound = errors.New("comment_not_found")
	ErrNotCommentOwner = errors.New("not_comment_owner")
)
