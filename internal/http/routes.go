package http

import (
	"log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"todo-list.com/todo-list/internal/view"
)

// Register wires the page, the todo API and the shared middleware onto e.
// limiter guards the API routes only.
func Register(e *echo.Echo, h *TodoHandler, limiter echo.MiddlewareFunc) {
	e.HTTPErrorHandler = ErrorHandler
	e.Renderer = view.NewTemplateRenderer()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			log.Printf("%s %s %d %s request_id=%s", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))

	e.GET("/", h.Index)
	e.GET("/healthz", h.Health)

	todos := e.Group("/todos")
	if limiter != nil {
		todos.Use(limiter)
	}
	todos.GET("", h.ListTodos)
	todos.POST("", h.CreateTodo)
	todos.PUT("", h.UpdateTodo)
	todos.DELETE("", h.DeleteTodo)
}
