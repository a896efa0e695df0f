package services

import (
	"context"
	"strings"

	appErrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/internal/models"
	repository "todo-list.com/todo-list/internal/repositories"
)

type TodoService struct {
	repo *repository.TodoRepository
}

func NewTodoService(repo *repository.TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

func (s *TodoService) ListTodos(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// CreateTodo stores a new, not yet completed todo. The title is trimmed and
// must not end up empty.
func (s *TodoService) CreateTodo(ctx context.Context, title string) (*model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, appErrors.ErrTitleRequired
	}

	return s.repo.Create(ctx, title)
}

// UpdateTodo applies a partial update. A nil title or completed leaves the
// stored value untouched.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, title *string, completed *bool) (*model.Task, error) {
	if id <= 0 {
		return nil, appErrors.ErrIDRequired
	}

	changes := repository.TodoChanges{Completed: completed}
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, appErrors.ErrTitleRequired
		}
		changes.Title = &trimmed
	}

	return s.repo.Update(ctx, id, changes)
}

func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if id <= 0 {
		return appErrors.ErrIDRequired
	}

	return s.repo.Delete(ctx, id)
}

func (s *TodoService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
