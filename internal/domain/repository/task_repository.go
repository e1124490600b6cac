package repository

import (
	"context"
	"errors"

	"taskmanager/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTaskNotFound is returned when no task matches the id and owner filter.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository defines persistence operations for tasks.
// Every lookup by task id is scoped to the owning user.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error

	// FindByUser returns all tasks owned by the user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Task, error)

	// Update writes title, description, status and updated_at of an owned task.
	Update(ctx context.Context, task *entity.Task) error

	// DeleteByIDAndUser removes an owned task and returns the row as it was before deletion.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Task, error)

	// CountByStatus returns the number of the user's tasks per status.
	CountByStatus(ctx context.Context, userID uuid.UUID) (map[entity.TaskStatus]int64, error)
}
