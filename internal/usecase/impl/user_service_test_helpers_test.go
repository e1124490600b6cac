package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"taskmanager/config"
	"taskmanager/internal/domain/repository"
	mockRepo "taskmanager/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const txFnType = "func(repository.RepositoryFactory) error"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(accessTokenTTL time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     4,
			AccessTokenTTL: accessTokenTTL,
		},
	}
}

// expectTransaction makes the transaction manager run the callback against factory.
func expectTransaction(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType(txFnType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
