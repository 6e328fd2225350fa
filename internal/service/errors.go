package service

import (
	"errors"
	"fmt"
)

// --- Error Definitions ---
var (
	// ErrAlreadyCompleted means a session for the same user, workout type and
	// day label was already finished in the current week window.
	ErrAlreadyCompleted = errors.New("workout session already completed this week")
	// ErrTransientStore is matched by TransientStoreError; the caller may retry.
	ErrTransientStore = errors.New("store temporarily unavailable")
	// ErrValidation is matched by ValidationError.
	ErrValidation = errors.New("validation failed")

	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")

	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotAuthor        = errors.New("only the author or a moderator may do this")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post not liked")
	ErrUploadURLError   = errors.New("failed to generate upload URL")
	ErrDownloadURLError = errors.New("failed to generate download URL")
)

// ValidationError rejects malformed input before the store is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransientStoreError reports a store timeout or connectivity failure.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransientStore, e.Err)
}

func (e *TransientStoreError) Unwrap() error {
	return e.Err
}

func (e *TransientStoreError) Is(target error) bool {
	return target == ErrTransientStore
}
