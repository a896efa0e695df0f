package view

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	model "todo-list.com/todo-list/internal/models"
)

// API is the part of the todo HTTP API the list view talks to.
type API interface {
	List(ctx context.Context) ([]model.Task, error)
	Create(ctx context.Context, title string) (*model.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (*model.Task, error)
	Delete(ctx context.Context, id int64) error
}

var ErrUnknownTodo = errors.New("todo is not in the list")

// ListView owns the list State and moves it forward in response to user
// actions. A failed request leaves the state as it was; the error is logged
// and returned.
type ListView struct {
	api API

	mu    sync.Mutex
	state State
}

func NewListView(api API) *ListView {
	return &ListView{
		api: api,
		state: State{
			Todos:   []model.Task{},
			Loading: true,
		},
	}
}

// State returns a copy of the current state.
func (v *ListView) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.state.clone()
}

func (v *ListView) Mount(ctx context.Context) error {
	todos, err := v.api.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Loading = false
	if err != nil {
		log.Printf("Error fetching todos: %v", err)
		return err
	}

	v.state.Todos = append(make([]model.Task, 0, len(todos)), todos...)
	return nil
}

func (v *ListView) SetDraft(draft string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Draft = draft
}

// Submit creates a todo from the draft. It does nothing when the draft is
// blank or another create is still in flight.
func (v *ListView) Submit(ctx context.Context) error {
	v.mu.Lock()
	title := v.state.Draft
	if strings.TrimSpace(title) == "" || v.state.Adding {
		v.mu.Unlock()
		return nil
	}
	v.state.Adding = true
	v.mu.Unlock()

	todo, err := v.api.Create(ctx, title)

	v.mu.Lock()
	defer v.mu.Unlock()

	v.state.Adding = false
	if err != nil {
		log.Printf("Error adding todo: %v", err)
		return err
	}

	todos := make([]model.Task, 0, len(v.state.Todos)+1)
	todos = append(todos, *todo)
	v.state.Todos = append(todos, v.state.Todos...)
	v.state.Draft = ""
	return nil
}

// Toggle flips the completed flag of a listed todo. The list changes only
// once the server has answered.
func (v *ListView) Toggle(ctx context.Context, id int64) error {
	current, ok := v.find(id)
	if !ok {
		return ErrUnknownTodo
	}

	updated, err := v.api.SetCompleted(ctx, id, !current.Completed)
	if err != nil {
		log.Printf("Error updating todo: %v", err)
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	todos := make([]model.Task, 0, len(v.state.Todos))
	for _, todo := range v.state.Todos {
		if todo.ID == id {
			todo = *updated
		}
		todos = append(todos, todo)
	}
	v.state.Todos = todos
	return nil
}

func (v *ListView) Delete(ctx context.Context, id int64) error {
	if _, ok := v.find(id); !ok {
		return ErrUnknownTodo
	}

	if err := v.api.Delete(ctx, id); err != nil {
		log.Printf("Error deleting todo: %v", err)
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	todos := make([]model.Task, 0, len(v.state.Todos))
	for _, todo := range v.state.Todos {
		if todo.ID != id {
			todos = append(todos, todo)
		}
	}
	v.state.Todos = todos
	return nil
}

func (v *ListView) find(id int64) (model.Task, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, todo := range v.state.Todos {
		if todo.ID == id {
			return todo, true
		}
	}
	return model.Task{}, false
}
