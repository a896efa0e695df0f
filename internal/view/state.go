package view

import model "todo-list.com/todo-list/internal/models"

// State is the client-side mirror of the todo list.
type State struct {
	Todos []model.Task
	Draft string

	// Loading stays true until the first list fetch resolves.
	Loading bool
	// Adding is true while a create request is in flight.
	Adding bool
}

type Stats struct {
	Total     int
	Completed int
	Remaining int
	Percent   float64
}

func (s State) Stats() Stats {
	stats := Stats{Total: len(s.Todos)}
	for _, todo := range s.Todos {
		if todo.Completed {
			stats.Completed++
		}
	}
	stats.Remaining = stats.Total - stats.Completed
	if stats.Total > 0 {
		stats.Percent = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

func (s State) clone() State {
	c := s
	c.Todos = append(make([]model.Task, 0, len(s.Todos)), s.Todos...)
	return c
}
