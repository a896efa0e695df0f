package errors

import "net/http"

var ErrIDRequired = &Exception{
	Message:    "ID is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidID = &Exception{
	Message:    "ID must be an integer",
	StatusCode: http.StatusBadRequest,
}
