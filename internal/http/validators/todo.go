package validators

import (
	"strconv"
	"strings"

	dto "todo-list.com/todo-list/internal/data_models"
	appErrors "todo-list.com/todo-list/internal/errors"
)

func ValidateCreateTodoRequest(r *dto.CreateTodoRequest) error {
	if strings.TrimSpace(r.Title) == "" {
		return appErrors.ErrTitleRequired
	}
	return nil
}

func ValidateUpdateTodoRequest(r *dto.UpdateTodoRequest) error {
	if r.ID == nil || *r.ID <= 0 {
		return appErrors.ErrIDRequired
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return appErrors.ErrTitleRequired
	}
	return nil
}

// ParseTodoID reads the id query parameter of a delete request.
func ParseTodoID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, appErrors.ErrIDRequired
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, appErrors.ErrInvalidID
	}
	// same rule as the update body: ids start at 1
	if id <= 0 {
		return 0, appErrors.ErrIDRequired
	}
	return id, nil
}
