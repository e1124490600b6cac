package usecase

import (
	"context"

	"taskmanager/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTaskInput defines the data for a new task. Status defaults to pending.
type CreateTaskInput struct {
	Title       string
	Description *string
	Status      *entity.TaskStatus
}

// UpdateTaskInput holds a partial update; nil fields are left unchanged.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *entity.TaskStatus
}

// TaskUsecase defines task operations. Every call is scoped to the caller's user id,
// and tasks owned by others are reported as not found.
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID uuid.UUID, input *CreateTaskInput) (*entity.Task, error)
	ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)
	GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)
	UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input *UpdateTaskInput) (*entity.Task, error)
	DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error
	ToggleTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*entity.TaskStats, error)
}
