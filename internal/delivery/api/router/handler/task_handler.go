package handler

import (
	"log/slog"
	"net/http"

	"taskmanager/internal/delivery/api/response"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const taskDeletedMessage = "Task deleted successfully"

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	TaskUC usecase.TaskUsecase
	Logger *slog.Logger
}

// TaskHandler holds dependencies for task-related handlers.
// Every route it serves sits behind AuthMiddleware.Authenticate.
type TaskHandler struct {
	taskUC usecase.TaskUsecase
	logger *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		taskUC: params.TaskUC,
		logger: params.Logger,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed"`
}

// UpdateTaskRequest represents the request body for a partial task update
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed"`
}

// CreateTask handles task creation
func (h *TaskHandler) CreateTask(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.CreateTask(c.Request().Context(), user.ID, &usecase.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      toTaskStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, task)
}

// ListTasks returns all tasks of the caller, newest first
func (h *TaskHandler) ListTasks(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	tasks, err := h.taskUC.ListTasks(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if tasks == nil {
		tasks = []*entity.Task{}
	}

	return response.Success(c, http.StatusOK, tasks)
}

// GetStats returns the caller's task counts by status
func (h *TaskHandler) GetStats(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	stats, err := h.taskUC.GetStats(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetTask returns one of the caller's tasks
func (h *TaskHandler) GetTask(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.GetTask(c.Request().Context(), user.ID, taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// UpdateTask applies a partial update to one of the caller's tasks
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.UpdateTask(c.Request().Context(), user.ID, taskID, &usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      toTaskStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// DeleteTask removes one of the caller's tasks
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.taskUC.DeleteTask(c.Request().Context(), user.ID, taskID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, taskDeletedMessage)
}

// ToggleTask flips a task between pending and completed
func (h *TaskHandler) ToggleTask(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return response.FromAppError(c, domainerrors.ErrUnauthenticated)
	}

	taskID, err := taskIDParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.taskUC.ToggleTask(c.Request().Context(), user.ID, taskID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, task)
}

// taskIDParam parses the :id path parameter. A malformed id cannot name
// any task, so it is reported the same way as a missing one.
func taskIDParam(c echo.Context) (uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrTaskNotFound
	}

	return taskID, nil
}

func toTaskStatus(status *string) *entity.TaskStatus {
	if status == nil {
		return nil
	}
	ts := entity.TaskStatus(*status)

	return &ts
}
