package dto

type CreateTodoRequest struct {
	Title string `json:"title"`
}

// UpdateTodoRequest uses pointers so an omitted field can be told apart from
// an explicit zero value.
type UpdateTodoRequest struct {
	ID        *int64  `json:"id"`
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
