package postgres

import (
	"context"
	"testing"
	"time"

	"taskmanager/internal/domain/entity"
	"taskmanager/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

// newTestDB opens a private in-memory SQLite database with the users and tasks schema.
// A single connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "user",
		PasswordHash: "$2a$12$hash",
		CreatedAt:    baseTime,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedTask(t *testing.T, db *gorm.DB, owner uuid.UUID, title string, status entity.TaskStatus, createdAt time.Time) *entity.Task {
	t.Helper()

	task := &entity.Task{
		ID:        uuid.New(),
		Title:     title,
		Status:    status,
		UserID:    owner,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, NewTaskRepository(db).Create(context.Background(), task))

	return task
}

func countTasks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.TaskModel{}).Count(&count).Error)

	return count
}
