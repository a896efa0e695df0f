package errors

import "net/http"

// Generic failures returned to the client when the store misbehaves. The
// underlying cause is logged, never exposed.
var (
	ErrFetchTodos = &Exception{
		Message:    "Failed to fetch todos",
		StatusCode: http.StatusInternalServerError,
	}
	ErrCreateTodo = &Exception{
		Message:    "Failed to create todo",
		StatusCode: http.StatusInternalServerError,
	}
	ErrUpdateTodo = &Exception{
		Message:    "Failed to update todo",
		StatusCode: http.StatusInternalServerError,
	}
	ErrDeleteTodo = &Exception{
		Message:    "Failed to delete todo",
		StatusCode: http.StatusInternalServerError,
	}
	ErrDatabaseUnavailable = &Exception{
		Message:    "Database unavailable",
		StatusCode: http.StatusServiceUnavailable,
	}
)
