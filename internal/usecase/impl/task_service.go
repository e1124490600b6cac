package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// taskService implements the TaskUsecase interface.
type taskService struct {
	txManager repository.TransactionManager
	taskRepo  repository.TaskRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TaskRepo  repository.TaskRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewTaskService is the constructor for taskService.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		txManager: params.TxManager,
		taskRepo:  params.TaskRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *taskService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTask stores a new task owned by userID.
func (srv *taskService) CreateTask(ctx context.Context, userID uuid.UUID, input *usecase.CreateTaskInput) (*entity.Task, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}

	status := entity.TaskStatusPending
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrInvalidTaskStatus, "status %q", *input.Status)
		}
		status = *input.Status
	}

	now := srv.now().UTC()
	task := &entity.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: input.Description,
		Status:      status,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.taskRepo.Create(ctx, task); err != nil {
		srv.log(ctx).Error("Failed to create task", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(persistenceError(err, "failed to create task"), "create task")
	}

	srv.log(ctx).Debug("Task created", slog.Any("taskID", task.ID), slog.Any("userID", userID))
	srv.publish(ctx, service.TaskEventCreated, task)

	return task, nil
}

// ListTasks returns the caller's tasks, newest first.
func (srv *taskService) ListTasks(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	tasks, err := srv.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(persistenceError(err, "failed to list tasks"), "list tasks")
	}

	return tasks, nil
}

// GetTask returns an owned task.
func (srv *taskService) GetTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	task, err := srv.taskRepo.FindByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return nil, mapTaskError(err, "failed to get task")
	}

	return task, nil
}

// UpdateTask applies a partial update to an owned task inside one transaction.
func (srv *taskService) UpdateTask(ctx context.Context, userID, taskID uuid.UUID, input *usecase.UpdateTaskInput) (*entity.Task, error) {
	var title *string
	if input.Title != nil {
		normalized, err := normalizeTitle(*input.Title)
		if err != nil {
			return nil, err
		}
		title = &normalized
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidTaskStatus, "status %q", *input.Status)
	}

	var updated *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByIDAndUser(ctx, taskID, userID)
		if err != nil {
			return mapTaskError(err, "failed to load task for update")
		}

		if title != nil {
			task.Title = *title
		}
		if input.Description != nil {
			task.Description = input.Description
		}
		if input.Status != nil {
			task.Status = *input.Status
		}
		task.UpdatedAt = srv.now().UTC()

		if err := taskRepo.Update(ctx, task); err != nil {
			return mapTaskError(err, "failed to update task")
		}
		updated = task

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute task update transaction")
	}

	srv.publish(ctx, service.TaskEventUpdated, updated)

	return updated, nil
}

// DeleteTask removes an owned task.
func (srv *taskService) DeleteTask(ctx context.Context, userID, taskID uuid.UUID) error {
	deleted, err := srv.taskRepo.DeleteByIDAndUser(ctx, taskID, userID)
	if err != nil {
		return mapTaskError(err, "failed to delete task")
	}

	srv.log(ctx).Debug("Task deleted", slog.Any("taskID", taskID), slog.Any("userID", userID))
	srv.publish(ctx, service.TaskEventDeleted, deleted)

	return nil
}

// ToggleTask flips an owned task between pending and completed.
func (srv *taskService) ToggleTask(ctx context.Context, userID, taskID uuid.UUID) (*entity.Task, error) {
	var toggled *entity.Task
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		taskRepo := repoFactory.TaskRepo()

		task, err := taskRepo.FindByIDAndUser(ctx, taskID, userID)
		if err != nil {
			return mapTaskError(err, "failed to load task for toggle")
		}

		task.Status = task.Status.Toggled()
		task.UpdatedAt = srv.now().UTC()

		if err := taskRepo.Update(ctx, task); err != nil {
			return mapTaskError(err, "failed to toggle task")
		}
		toggled = task

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute task toggle transaction")
	}

	srv.publish(ctx, service.TaskEventToggled, toggled)

	return toggled, nil
}

// GetStats counts the caller's tasks by status.
func (srv *taskService) GetStats(ctx context.Context, userID uuid.UUID) (*entity.TaskStats, error) {
	counts, err := srv.taskRepo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(persistenceError(err, "failed to count tasks"), "task stats")
	}

	stats := &entity.TaskStats{
		Pending:   counts[entity.TaskStatusPending],
		Completed: counts[entity.TaskStatusCompleted],
	}
	for _, count := range counts {
		stats.Total += count
	}

	return stats, nil
}

// publish emits a task event. The mutation is already committed, so failures are only logged.
func (srv *taskService) publish(ctx context.Context, eventType service.TaskEventType, task *entity.Task) {
	event := &service.TaskEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		TaskID:     task.ID.String(),
		UserID:     task.UserID.String(),
		Status:     string(task.Status),
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishTaskEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish task event",
			slog.String("type", string(eventType)),
			slog.String("taskID", event.TaskID),
			slog.Any("error", err),
		)
	}
}

func normalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", errors.WithStack(domainerrors.ErrTaskTitleEmpty)
	}

	return trimmed, nil
}

func mapTaskError(err error, details string) error {
	if errors.Is(err, repository.ErrTaskNotFound) {
		return domainerrors.ErrTaskNotFound.WrapMessage(details)
	}

	return errors.Wrap(persistenceError(err, details), details)
}
