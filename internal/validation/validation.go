// Package validation holds the pure field-level checks applied before any
// repository call. Each helper returns a per-field error map; an empty map
// means the input is valid.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
)

var validate = validator.New()

func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

func IsValidPassword(password string) bool {
	return len(password) >= 6
}

func Signup(req models.SignupRequest) map[string]string {
	errs := map[string]string{}
	if IsEmpty(req.Handle) {
		errs["handle"] = "handle " + messages.ErrEmpty
	}
	if IsEmpty(req.Email) {
		errs["email"] = "email " + messages.ErrEmpty
	} else if !IsValidEmail(req.Email) {
		errs["email"] = messages.ErrInvalidEmail
	}
	if !IsValidPassword(req.Password) {
		errs["password"] = messages.ErrInvalidPassword
	}
	if req.Password != req.ConfirmPassword {
		errs["confirmPassword"] = messages.ErrPasswordMismatch
	}
	return errs
}

func Login(req models.LoginRequest) map[string]string {
	errs := map[string]string{}
	if !IsValidEmail(req.Email) {
		errs["email"] = messages.ErrInvalidEmail
	}
	if !IsValidPassword(req.Password) {
		errs["password"] = messages.ErrInvalidPassword
	}
	return errs
}

func NewPost(req models.CreatePostRequest) map[string]string {
	errs := map[string]string{}
	if IsEmpty(req.Category) {
		errs["category"] = "category " + messages.ErrEmpty
	}
	if IsEmpty(req.Title) {
		errs["title"] = "title " + messages.ErrEmpty
	}
	if IsEmpty(req.Body) {
		errs["body"] = "body " + messages.ErrEmpty
	}
	return errs
}

func CommentBody(body string) map[string]string {
	errs := map[string]string{}
	if IsEmpty(body) {
		errs["body"] = "comment " + messages.ErrEmpty
	}
	return errs
}
