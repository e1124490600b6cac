package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "taskmanager/internal/delivery/context"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/domain/repository"
	"taskmanager/internal/domain/service"
	"taskmanager/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements usecase.IdentityResolver. It never writes.
type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityResolver {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve verifies the token and loads the user named by its subject claim.
// Every token or lookup problem is ErrUnauthenticated, except persistence failures.
func (srv *identityService) Resolve(ctx context.Context, bearerToken string) (*entity.User, error) {
	token := strings.TrimSpace(bearerToken)
	if token == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "missing bearer token")
	}

	claims, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token verification failed")
	}

	email := claims.Subject()
	if email == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token has no subject")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Token subject does not match any user", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "token subject not found")
		}

		return nil, errors.Wrap(persistenceError(err, "failed to find user by email"), "resolve identity")
	}

	return user, nil
}
