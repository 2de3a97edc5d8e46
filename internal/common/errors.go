package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Business logic errors
var (
	// General errors
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// Post errors
	ErrPostNotFound  = errors.New("post not found")
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrTitleNotFound = errors.New("title not found in content")

	// Comment errors
	ErrCommentNotFound = errors.New("comment not found")
	ErrParentMismatch  = errors.New("parent comment belongs to another post")

	// Tag / topic / value / setting errors
	ErrTagNotFound     = errors.New("tag not found")
	ErrTopicNotFound   = errors.New("topic not found")
	ErrValueNotFound   = errors.New("value not found")
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidSetting  = errors.New("invalid setting value")

	// Upload errors
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file is too large")
	ErrMissingFile  = errors.New("did not find 'file' field in the form")

	// 선언된 크기와 실제 수신 바이트가 다름
	ErrIncompleteUpload = errors.New("uploaded file is incomplete")
)

// InvalidInputError validation failure with a client-facing description
type InvalidInputError struct {
	Detail string
}

func (e *InvalidInputError) Error() string {
	return e.Detail
}

// Is matches ErrInvalidInput
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds an InvalidInputError
func Invalid(format string, args ...interface{}) error {
	return &InvalidInputError{Detail: fmt.Sprintf(format, args...)}
}

// clientErrors 응답 메시지로 노출 가능한 에러
var clientErrors = []error{
	ErrPostNotFound, ErrCommentNotFound, ErrTagNotFound, ErrTopicNotFound,
	ErrValueNotFound, ErrSettingNotFound, ErrNotFound,
	ErrEmptyContent, ErrTitleNotFound, ErrParentMismatch, ErrInvalidSetting,
	ErrEmptyFile, ErrFileTooLarge, ErrMissingFile, ErrIncompleteUpload,
	ErrConflict, ErrUnauthorized, ErrInvalidInput,
}

// ClientMessage message safe to return for a 4xx error. Store text never leaks.
func ClientMessage(err error) string {
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return invalid.Detail
	}
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "internal server error"
}

// StatusFor maps an error to its HTTP status
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrCommentNotFound),
		errors.Is(err, ErrTagNotFound),
		errors.Is(err, ErrTopicNotFound),
		errors.Is(err, ErrValueNotFound),
		errors.Is(err, ErrSettingNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrEmptyContent),
		errors.Is(err, ErrTitleNotFound),
		errors.Is(err, ErrParentMismatch),
		errors.Is(err, ErrInvalidSetting),
		errors.Is(err, ErrEmptyFile),
		errors.Is(err, ErrFileTooLarge),
		errors.Is(err, ErrMissingFile),
		errors.Is(err, ErrIncompleteUpload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether err is safe to describe to the caller
func IsClientError(err error) bool {
	status := StatusFor(err)
	return status >= 400 && status < 500
}
