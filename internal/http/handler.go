package http

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-list.com/todo-list/internal/data_models"
	appErrors "todo-list.com/todo-list/internal/errors"
	"todo-list.com/todo-list/internal/http/validators"
	"todo-list.com/todo-list/internal/services"
	"todo-list.com/todo-list/internal/view"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

func (h *TodoHandler) ListTodos(c echo.Context) error {
	todos, err := h.todoService.ListTodos(c.Request().Context())
	if err != nil {
		return failure("fetching todos", err, appErrors.ErrFetchTodos)
	}

	return c.JSON(http.StatusOK, todos)
}

func (h *TodoHandler) CreateTodo(c echo.Context) error {
	var req dto.CreateTodoRequest
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		return appErrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateTodoRequest(&req); err != nil {
		return err
	}

	todo, err := h.todoService.CreateTodo(c.Request().Context(), req.Title)
	if err != nil {
		return failure("creating todo", err, appErrors.ErrCreateTodo)
	}

	return c.JSON(http.StatusCreated, todo)
}

func (h *TodoHandler) UpdateTodo(c echo.Context) error {
	var req dto.UpdateTodoRequest
	if err := c.Echo().JSONSerializer.Deserialize(c, &req); err != nil {
		return appErrors.ErrInvalidJSON
	}
	if err := validators.ValidateUpdateTodoRequest(&req); err != nil {
		return err
	}

	todo, err := h.todoService.UpdateTodo(c.Request().Context(), *req.ID, req.Title, req.Completed)
	if err != nil {
		return failure("updating todo", err, appErrors.ErrUpdateTodo)
	}

	return c.JSON(http.StatusOK, todo)
}

func (h *TodoHandler) DeleteTodo(c echo.Context) error {
	id, err := validators.ParseTodoID(c.QueryParam("id"))
	if err != nil {
		return err
	}

	if err := h.todoService.DeleteTodo(c.Request().Context(), id); err != nil {
		return failure("deleting todo", err, appErrors.ErrDeleteTodo)
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Todo deleted successfully"})
}

func (h *TodoHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, view.PageTemplate, view.PageData{
		Title:   "ToDo List",
		APIPath: "/todos",
	})
}

func (h *TodoHandler) Health(c echo.Context) error {
	if err := h.todoService.Ping(c.Request().Context()); err != nil {
		log.Printf("health check: %v", err)
		return appErrors.ErrDatabaseUnavailable
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// failure passes validation and not-found errors through and replaces
// anything else with the generic exception after logging it.
func failure(action string, err error, generic *appErrors.Exception) error {
	if appErrors.IsClientError(err) {
		return err
	}

	log.Printf("error %s: %v", action, err)
	return generic
}
