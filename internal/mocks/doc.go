// Package mocks provides reusable test doubles with function fields.
//
// A mock method calls its function field when set and otherwise falls back
// to a simple default, so tests override only the behaviour they care about:
//
//	s := &mocks.MockTaskStore{
//	    IncludeTasksFn: func(ctx context.Context, tasks ...*domain.Task) error {
//	        return errors.New("Houve um erro na inclusão de tarefas")
//	    },
//	}
package mocks
