package postgres

import (
	"context"
	"testing"
	"time"

	"taskmanager/internal/domain/entity"
	"taskmanager/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepository_FindByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	older := seedTask(t, db, alice.ID, "older", entity.TaskStatusPending, baseTime)
	newer := seedTask(t, db, alice.ID, "newer", entity.TaskStatusCompleted, baseTime.Add(time.Minute))
	seedTask(t, db, bob.ID, "not mine", entity.TaskStatusPending, baseTime.Add(2*time.Minute))

	tasks, err := repo.FindByUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, newer.ID, tasks[0].ID)
	assert.Equal(t, older.ID, tasks[1].ID)
	assert.Equal(t, entity.TaskStatusCompleted, tasks[0].Status)

	empty, err := repo.FindByUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskRepository_FindByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	task := seedTask(t, db, alice.ID, "Write report", entity.TaskStatusPending, baseTime)

	found, err := repo.FindByIDAndUser(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write report", found.Title)
	assert.Equal(t, alice.ID, found.UserID)
	assert.Nil(t, found.Description)

	_, err = repo.FindByIDAndUser(ctx, task.ID, bob.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	_, err = repo.FindByIDAndUser(ctx, uuid.New(), alice.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	task := seedTask(t, db, alice.ID, "Write report", entity.TaskStatusPending, baseTime)

	t.Run("owner update is stored", func(t *testing.T) {
		description := "quarterly numbers"
		task.Title = "Write the report"
		task.Description = &description
		task.Status = entity.TaskStatusCompleted
		task.UpdatedAt = baseTime.Add(time.Hour)

		require.NoError(t, repo.Update(ctx, task))

		stored, err := repo.FindByIDAndUser(ctx, task.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write the report", stored.Title)
		require.NotNil(t, stored.Description)
		assert.Equal(t, "quarterly numbers", *stored.Description)
		assert.Equal(t, entity.TaskStatusCompleted, stored.Status)
	})

	t.Run("another user's update touches nothing", func(t *testing.T) {
		foreign := *task
		foreign.UserID = bob.ID
		foreign.Title = "hijacked"

		err := repo.Update(ctx, &foreign)
		assert.ErrorIs(t, err, repository.ErrTaskNotFound)

		stored, err := repo.FindByIDAndUser(ctx, task.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Write the report", stored.Title)
	})
}

func TestTaskRepository_DeleteByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	task := seedTask(t, db, alice.ID, "Write report", entity.TaskStatusCompleted, baseTime)

	_, err := repo.DeleteByIDAndUser(ctx, task.ID, bob.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
	assert.Equal(t, int64(1), countTasks(t, db))

	deleted, err := repo.DeleteByIDAndUser(ctx, task.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)
	assert.Equal(t, alice.ID, deleted.UserID)
	assert.Equal(t, "Write report", deleted.Title)
	assert.Equal(t, entity.TaskStatusCompleted, deleted.Status)
	assert.Equal(t, int64(0), countTasks(t, db))

	_, err = repo.DeleteByIDAndUser(ctx, task.ID, alice.ID)
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)
}

func TestTaskRepository_CountByStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	seedTask(t, db, alice.ID, "a", entity.TaskStatusPending, baseTime)
	seedTask(t, db, alice.ID, "b", entity.TaskStatusPending, baseTime.Add(time.Second))
	seedTask(t, db, alice.ID, "c", entity.TaskStatusCompleted, baseTime.Add(2*time.Second))
	seedTask(t, db, bob.ID, "d", entity.TaskStatusCompleted, baseTime.Add(3*time.Second))

	counts, err := repo.CountByStatus(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, map[entity.TaskStatus]int64{
		entity.TaskStatusPending:   2,
		entity.TaskStatusCompleted: 1,
	}, counts)

	none, err := repo.CountByStatus(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}
