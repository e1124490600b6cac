package impl

import (
	"context"
	"testing"

	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/domain/service"
	mockRepo "taskmanager/internal/mocks/repository"
	mockSvc "taskmanager/internal/mocks/service"
	"taskmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service      usecase.IdentityResolver
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return identityServiceFixtures{
		service: NewIdentityService(IdentityServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestIdentityService_Resolve_Success(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}

	fx.tokenService.EXPECT().Verify("valid-token").Return(service.Claims{service.ClaimSubject: user.Email}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	resolved, err := fx.service.Resolve(ctx, "valid-token")

	require.NoError(t, err)
	assert.Same(t, user, resolved)
}

func TestIdentityService_Resolve_Unauthenticated(t *testing.T) {
	tests := []struct {
		name  string
		token string
		setup func(fx identityServiceFixtures)
	}{
		{
			name:  "empty token",
			token: "   ",
		},
		{
			name:  "verification fails",
			token: "expired-token",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Verify("expired-token").Return(nil, errors.WithStack(service.ErrInvalidToken))
			},
		},
		{
			name:  "missing subject",
			token: "no-sub",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Verify("no-sub").Return(service.Claims{"exp": 123}, nil)
			},
		},
		{
			name:  "non-string subject",
			token: "numeric-sub",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Verify("numeric-sub").Return(service.Claims{service.ClaimSubject: 42}, nil)
			},
		},
		{
			name:  "user no longer exists",
			token: "orphan",
			setup: func(fx identityServiceFixtures) {
				fx.tokenService.EXPECT().Verify("orphan").Return(service.Claims{service.ClaimSubject: "gone@example.com"}, nil)
				fx.userRepo.EXPECT().FindByEmail(context.Background(), "gone@example.com").Return(nil, repository.ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			user, err := fx.service.Resolve(context.Background(), tt.token)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		})
	}
}

func TestIdentityService_Resolve_PersistenceFailure(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	dbErr := errors.New("too many connections")

	fx.tokenService.EXPECT().Verify("valid-token").Return(service.Claims{service.ClaimSubject: "alice@example.com"}, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, dbErr)

	user, err := fx.service.Resolve(ctx, "valid-token")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}
