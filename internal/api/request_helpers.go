package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrValidation, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrValidation, paramName)
	}

	return id, nil
}

// taskFilterFromQuery builds a predicate from the category, status and
// title query parameters. Absent parameters do not filter.
func taskFilterFromQuery(r *http.Request) (store.TaskPredicate, error) {
	q := r.URL.Query()
	var predicates []store.TaskPredicate

	if category := q.Get("category"); category != "" {
		predicates = append(predicates, store.ByCategory(category))
	}
	if title := q.Get("title"); title != "" {
		predicates = append(predicates, store.ByTitle(title))
	}
	if status := q.Get("status"); status != "" {
		s := domain.TaskStatus(status)
		if !domain.IsValidTaskStatus(s) {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrInvalidTaskStatus)
		}
		predicates = append(predicates, store.ByStatus(s))
	}

	return store.All(predicates...), nil
}
