package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseError(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
		is     error
	}{
		{"duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "tags_name_key" (SQLSTATE 23505)`), http.StatusConflict, ErrAlreadyExists},
		{"foreign key", errors.New(`ERROR: insert or update on table "project_tags" violates foreign key constraint (SQLSTATE 23503)`), http.StatusBadRequest, ErrForeignKeyConstraint},
		{"connection", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable, ErrDatabaseConnection},
		{"generic", errors.New("syntax error"), http.StatusInternalServerError, ErrDatabaseQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "project", tt.cause)

			var apiErr *ApiErr
			assert.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.ErrorIs(t, err, tt.is)
			assert.Equal(t, tt.cause, apiErr.Cause)
		})
	}
}

func TestNewDatabaseErrorKeepsApiErr(t *testing.T) {
	notFound := NewNotFound("project")
	err := NewDatabaseError("find", "project", notFound)

	assert.Same(t, notFound, err)
	assert.True(t, IsNotFound(err))
}

func TestUploadFailedMessage(t *testing.T) {
	err := NewUploadFailedError(errors.New("disk full"))

	assert.Equal(t, "upload failed: disk full", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
	assert.True(t, IsUploadFailedError(err))
}

func TestGetFullError(t *testing.T) {
	inner := NewNotFound("tag")
	outer := NewInternalErrorWithCause("link tags", inner)

	assert.Equal(t, "link tags: internal server error -> tag not found", outer.GetFullError())
}

func TestClassifiers(t *testing.T) {
	assert.True(t, IsValidationError(NewMissingRequiredFieldError("title")))
	assert.True(t, IsValidationError(NewBadRequestError("bad id")))
	assert.False(t, IsValidationError(NewNotFound("post")))

	assert.True(t, IsUnauthorized(Unauthorized))
	assert.True(t, IsUnauthorized(NewInvalidPasswordError()))
	assert.True(t, IsUnauthorized(NewMissingTokenError()))
	assert.False(t, IsUnauthorized(NewNotFound("post")))
}

func TestValidationMessages(t *testing.T) {
	assert.Equal(t, "missing required field: title", NewMissingRequiredFieldError("title").Error())
	assert.Equal(t, "invalid field: email must be a valid email", NewInvalidFieldError("email", "must be a valid email").Error())
	assert.Equal(t, "max body size exceeded: limit is 1024 bytes", NewMaxBodySizeExceededError(1024).Error())
	assert.Equal(t, http.StatusForbidden, NewCORSError("https://evil.example").StatusCode)
}
