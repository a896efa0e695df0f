package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	appErrors "todo-list.com/todo-list/internal/errors"
	model "todo-list.com/todo-list/internal/models"
)

type TodoRepository struct {
	db *gorm.DB
}

// TodoChanges holds the fields of a partial update. A nil field is left as
// it is in the store.
type TodoChanges struct {
	Title     *string
	Completed *bool
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) List(ctx context.Context) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return tasks, nil
}

func (r *TodoRepository) Create(ctx context.Context, title string) (*model.Task, error) {
	now := time.Now().UTC()
	task := &model.Task{
		Title:     title,
		Completed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	return task, nil
}

// Update applies changes to the row with the given id in one UPDATE
// statement and returns the row as stored afterwards. updated_at is always
// refreshed on a matching row.
func (r *TodoRepository) Update(ctx context.Context, id int64, changes TodoChanges) (*model.Task, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Completed != nil {
		updates["completed"] = *changes.Completed
	}

	var task model.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return appErrors.ErrTodoNotFound
		}
		return tx.Where("id = ?", id).Take(&task).Error
	})
	if err != nil {
		if errors.Is(err, appErrors.ErrTodoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update todo %d: %w", id, err)
	}

	return &task, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Task{})
	if res.Error != nil {
		return fmt.Errorf("delete todo %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return appErrors.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
