package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserFullName(t *testing.T) {
	user := User{FirstName: "Jane", LastName: "Doe"}
	assert.Equal(t, "Jane Doe", user.FullName())
}

func TestPostFriendlyDate(t *testing.T) {
	post := Post{CreatedAt: time.Date(2024, time.March, 4, 15, 30, 0, 0, time.UTC)}
	assert.Equal(t, "Mon Mar 4 2024, 3:30 PM", post.FriendlyDate())

	morning := Post{CreatedAt: time.Date(2024, time.December, 25, 9, 5, 0, 0, time.UTC)}
	assert.Equal(t, "Wed Dec 25 2024, 9:05 AM", morning.FriendlyDate())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"not found", NewNotFoundError("User", 7), "NOT_FOUND"},
		{"validation", NewValidationError("Title is required"), "VALIDATION_ERROR"},
		{"conflict", NewConflictError("Tag name already in use: golang"), "CONFLICT"},
		{"internal", NewInternalError(errors.New("boom")), "INTERNAL_ERROR"},
		{"plain error", errors.New("boom"), "INTERNAL_ERROR"},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorCode(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "boom")
}
