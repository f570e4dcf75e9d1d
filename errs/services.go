package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Storage & Notification Errors
var (
	ErrUploadFailed       = errors.New("upload failed")
	ErrNotificationFailed = errors.New("notification failed")
	ErrConfigInvalid      = errors.New("configuration invalid")
)

// NewUploadFailedError reports a storage backend failure; the cause message is
// surfaced to the caller.
func NewUploadFailedError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrUploadFailed,
		Details:    cause.Error(),
		Cause:      cause,
	}
}

// NewNotificationFailedError is never written to a client; callers log it.
func NewNotificationFailedError(provider string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        fmt.Errorf("%s %w", provider, ErrNotificationFailed),
		Cause:      cause,
	}
}

func NewConfigError(configName string, reason string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigInvalid,
		Details:    fmt.Sprintf("%s: %s", configName, reason),
		Field:      configName,
	}
}

func IsUploadFailedError(err error) bool {
	return errors.Is(err, ErrUploadFailed)
}
