package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Rejection codes returned by the policy layer. The HTTP boundary maps each
// code to a status via StatusForCode.
const (
	CodeWeakPassword           = "WEAK_PASSWORD"
	CodePasswordMismatch       = "PASSWORD_MISMATCH"
	CodeInvalidCurrentPassword = "INVALID_CURRENT_PASSWORD"
	CodeForbidden              = "FORBIDDEN"
	CodeNotFound               = "NOT_FOUND"
	CodeAlreadyLiked           = "ALREADY_LIKED"
	CodeNotLiked               = "NOT_LIKED"
	CodeAlreadyBookmarked      = "ALREADY_BOOKMARKED"
	CodeContentNotPublished    = "CONTENT_NOT_PUBLISHED"
	CodeInvalidReplyTarget     = "INVALID_REPLY_TARGET"
	CodeValidation             = "VALIDATION_ERROR"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeConflict               = "CONFLICT"
	CodeInternal               = "INTERNAL_ERROR"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    CodeUnauthorized,
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    CodeForbidden,
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "Internal server error",
		Err:     err,
	}
}

// Credential policy rejections.

func NewWeakPasswordError() *AppError {
	return &AppError{
		Code:    CodeWeakPassword,
		Message: "Minimum five characters, at least one uppercase letter, one lowercase letter, one number and one special character",
	}
}

func NewPasswordMismatchError() *AppError {
	return &AppError{
		Code:    CodePasswordMismatch,
		Message: "Passwords must be equal",
	}
}

func NewInvalidCurrentPasswordError() *AppError {
	return &AppError{
		Code:    CodeInvalidCurrentPassword,
		Message: "Current password is invalid",
	}
}

// Engagement and threading rejections.

func NewAlreadyLikedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyLiked,
		Message: "You have already liked this content",
	}
}

func NewNotLikedError() *AppError {
	return &AppError{
		Code:    CodeNotLiked,
		Message: "You have not liked this content",
	}
}

func NewAlreadyBookmarkedError() *AppError {
	return &AppError{
		Code:    CodeAlreadyBookmarked,
		Message: "You have already bookmarked this content",
	}
}

func NewContentNotPublishedError() *AppError {
	return &AppError{
		Code:    CodeContentNotPublished,
		Message: "Content is not published",
	}
}

func NewInvalidReplyTargetError() *AppError {
	return &AppError{
		Code:    CodeInvalidReplyTarget,
		Message: "There is no comment with this id in this content",
	}
}

// StatusForCode maps a rejection code to its HTTP status.
func StatusForCode(code string) int {
	switch code {
	case CodeWeakPassword, CodePasswordMismatch, CodeInvalidCurrentPassword, CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden, CodeAlreadyLiked, CodeNotLiked, CodeAlreadyBookmarked,
		CodeContentNotPublished, CodeInvalidReplyTarget:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}

// RespondWithAppError writes err using the status derived from its code.
// Non-AppError values are treated as internal errors.
func RespondWithAppError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*AppError); ok {
		return RespondWithError(c, StatusForCode(appErr.Code), appErr)
	}
	return RespondWithError(c, fiber.StatusInternalServerError, NewInternalError(err))
}
