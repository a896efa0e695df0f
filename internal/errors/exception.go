package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// IsClientError reports whether err is an Exception that should be shown to
// the caller as is.
func IsClientError(err error) bool {
	code := StatusCode(err)
	return code >= 400 && code < 500
}
