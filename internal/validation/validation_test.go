package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/socialape/backend/internal/messages"
	"github.com/socialape/backend/internal/models"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		req        models.SignupRequest
		wantFields []string
	}{
		{
			name: "valid",
			req: models.SignupRequest{
				Handle:          "newuser",
				Email:           "new@example.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
		},
		{
			name: "empty handle",
			req: models.SignupRequest{
				Email:           "new@example.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			wantFields: []string{"handle"},
		},
		{
			name: "whitespace handle counts as empty",
			req: models.SignupRequest{
				Handle:          "   ",
				Email:           "new@example.com",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			wantFields: []string{"handle"},
		},
		{
			name: "bad email",
			req: models.SignupRequest{
				Handle:          "newuser",
				Email:           "not-an-email",
				Password:        "secret1",
				ConfirmPassword: "secret1",
			},
			wantFields: []string{"email"},
		},
		{
			name: "short password",
			req: models.SignupRequest{
				Handle:          "newuser",
				Email:           "new@example.com",
				Password:        "abc",
				ConfirmPassword: "abc",
			},
			wantFields: []string{"password"},
		},
		{
			name: "password mismatch",
			req: models.SignupRequest{
				Handle:          "newuser",
				Email:           "new@example.com",
				Password:        "secret1",
				ConfirmPassword: "secret2",
			},
			wantFields: []string{"confirmPassword"},
		},
		{
			name:       "everything wrong",
			req:        models.SignupRequest{ConfirmPassword: "x"},
			wantFields: []string{"handle", "email", "password", "confirmPassword"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Signup(tt.req)
			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestSignupMessages(t *testing.T) {
	errs := Signup(models.SignupRequest{})
	assert.Equal(t, "handle "+messages.ErrEmpty, errs["handle"])
	assert.Equal(t, "email "+messages.ErrEmpty, errs["email"])
	assert.Equal(t, messages.ErrInvalidPassword, errs["password"])
}

func TestLogin(t *testing.T) {
	assert.Empty(t, Login(models.LoginRequest{Email: "a@b.com", Password: "secret1"}))

	errs := Login(models.LoginRequest{Email: "nope", Password: "x"})
	assert.Equal(t, messages.ErrInvalidEmail, errs["email"])
	assert.Equal(t, messages.ErrInvalidPassword, errs["password"])
}

func TestNewPost(t *testing.T) {
	assert.Empty(t, NewPost(models.CreatePostRequest{Category: "tech", Title: "hi", Body: "text"}))

	errs := NewPost(models.CreatePostRequest{Title: "hi"})
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "body")
	assert.NotContains(t, errs, "title")
}

func TestCommentBody(t *testing.T) {
	assert.Empty(t, CommentBody("nice post"))
	assert.Equal(t, "comment "+messages.ErrEmpty, CommentBody(" ")["body"])
}
