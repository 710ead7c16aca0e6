package api

import (
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
)

// DateLayout is the wire format of due dates.
const DateLayout = "2006-01-02"

// RegisterTaskRequest is the body of POST /api/tasks.
type RegisterTaskRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Category string `json:"category" validate:"required,max=100"`
	DueDate  string `json:"due_date" validate:"required,datetime=2006-01-02"`
}

// ManageDeadlinesRequest is the optional body of POST /api/deadlines.
// A missing Now means the server's current time.
type ManageDeadlinesRequest struct {
	Now *time.Time `json:"now,omitempty"`
}

// SuccessResponse acknowledges a command that has no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	DueDate     string     `json:"due_date"`
	Status      string     `json:"status"`
	ConcludedAt *time.Time `json:"concluded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	Name string `json:"name"`
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Category:    t.Category.Name,
		DueDate:     t.DueDate.Format(DateLayout),
		Status:      string(t.Status),
		ConcludedAt: t.ConcludedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
