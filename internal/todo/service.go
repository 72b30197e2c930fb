package todo

import (
	"context"
	"fmt"
	"strings"

	"github.com/taskhive/taskhive/internal/platform/httpx"
)

// Service handles todo business logic. Every operation is parameterized by
// the caller's resolved owner id.
type Service struct {
	repo Repository
}

// NewService builds a Service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the owner's todos, newest first.
func (s *Service) List(ctx context.Context, ownerID int64) ([]Todo, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create stores a new todo after trimming the task text.
func (s *Service) Create(ctx context.Context, ownerID int64, task string) (*Todo, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil, fmt.Errorf("%w: task must not be empty", httpx.ErrValidation)
	}
	return s.repo.Insert(ctx, ownerID, task)
}

// Delete removes the owner's todo by id.
func (s *Service) Delete(ctx context.Context, ownerID, todoID int64) error {
	return s.repo.Delete(ctx, ownerID, todoID)
}
