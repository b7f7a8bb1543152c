// Package apperr defines the error taxonomy shared by the repository,
// service and handler layers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorCode int

const (
	ErrDatabase ErrorCode = iota + 1000
	ErrNotFound
	ErrDuplicate

	ErrInvalidInput
	ErrUnauthorized
	ErrForbidden

	ErrInternal
	ErrThirdParty
)

type AppError struct {
	Code    ErrorCode
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

func New(code ErrorCode, message string) error {
	return &AppError{Code: code, Message: message}
}

func Wrap(code ErrorCode, message string, err error) error {
	return &AppError{Code: code, Message: message, Err: err}
}

func Code(err error) ErrorCode {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ErrInternal
}

func IsCode(err error, code ErrorCode) bool {
	return Code(err) == code
}

func httpStatus(code ErrorCode) int {
	switch code {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrDuplicate, ErrInvalidInput:
		return http.StatusBadRequest
	case ErrUnauthorized, ErrForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Handle writes err as a JSON response. Errors that carry no AppError keep
// their underlying text in the payload.
func Handle(c *gin.Context, err error) {
	var ae *AppError
	if errors.As(err, &ae) {
		c.JSON(httpStatus(ae.Code), gin.H{"error": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
