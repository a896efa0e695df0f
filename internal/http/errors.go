package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-list.com/todo-list/internal/data_models"
	appErrors "todo-list.com/todo-list/internal/errors"
)

// ErrorHandler renders every error as {"error": message}. Errors that are
// neither an Exception nor an echo.HTTPError are logged and reported as a
// plain internal server error.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(http.StatusInternalServerError)

	var exc *appErrors.Exception
	var he *echo.HTTPError
	switch {
	case errors.As(err, &exc):
		status, message = exc.StatusCode, exc.Message
	case errors.As(err, &he):
		status = he.Code
		message = http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			if m != "" {
				message = m
			}
		} else if he.Message != nil {
			message = fmt.Sprint(he.Message)
		}
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, dto.ErrorResponse{Error: message})
	}
	if err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}
