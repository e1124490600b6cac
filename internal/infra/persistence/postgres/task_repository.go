package postgres

import (
	"context"

	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// taskRepository implements the repository.TaskRepository interface.
// Every statement addressing a single task filters on both id and user_id.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository is the constructor for taskRepository.
func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create persists a new task for its owner.
func (repo *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskM := fromTaskDomain(task)

	if err := repo.db.WithContext(ctx).Create(taskM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPersistenceFailed.WrapMessage("invalid task owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create task")
	}

	task.CreatedAt = taskM.CreatedAt
	task.UpdatedAt = taskM.UpdatedAt

	return nil
}

// FindByUser retrieves all tasks of a user, newest first.
func (repo *taskRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []*model.TaskModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&taskModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tasks by user")
	}

	tasks := make([]*entity.Task, 0, len(taskModels))
	for _, taskM := range taskModels {
		tasks = append(tasks, toTaskDomain(taskM))
	}

	return tasks, nil
}

// FindByIDAndUser retrieves a task only when it belongs to the user.
// The read goes to the primary so a fetch right after an update sees it.
func (repo *taskRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ? AND user_id = ?", id, userID).
		First(&taskM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTaskNotFound
		}

		return nil, errors.Wrap(err, "failed to find task by id")
	}

	return toTaskDomain(&taskM), nil
}

// Update writes the mutable columns of an owned task.
func (repo *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"status":      string(task.Status),
			"updated_at":  task.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update task")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// deletedTaskColumns are handed back by RETURNING on delete; timestamps are left out.
var deletedTaskColumns = []clause.Column{
	{Name: "id"},
	{Name: "title"},
	{Name: "description"},
	{Name: "status"},
	{Name: "user_id"},
}

// DeleteByIDAndUser removes an owned task and returns what was deleted in the same statement.
func (repo *taskRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Task, error) {
	var taskM model.TaskModel

	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: deletedTaskColumns}).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&taskM)

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete task")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrTaskNotFound
	}

	return toTaskDomain(&taskM), nil
}

type statusCount struct {
	Status string
	Count  int64
}

// CountByStatus aggregates the user's tasks per status.
func (repo *taskRepository) CountByStatus(ctx context.Context, userID uuid.UUID) (map[entity.TaskStatus]int64, error) {
	var rows []statusCount

	if err := repo.db.WithContext(ctx).
		Model(&model.TaskModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count tasks by status")
	}

	counts := make(map[entity.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[entity.TaskStatus(row.Status)] = row.Count
	}

	return counts, nil
}

// --- Mapper Functions ---

func toTaskDomain(data *model.TaskModel) *entity.Task {
	if data == nil {
		return nil
	}

	return &entity.Task{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      entity.TaskStatus(data.Status),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTaskDomain(data *entity.Task) *model.TaskModel {
	if data == nil {
		return nil
	}

	return &model.TaskModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Status:      string(data.Status),
		UserID:      data.UserID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
