package middleware

import (
	"log/slog"
	"strings"

	"taskmanager/internal/delivery/api/response"
	deliverycontext "taskmanager/internal/delivery/context"
	domainerrors "taskmanager/internal/domain/errors"
	"taskmanager/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerScheme = "bearer"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Resolver usecase.IdentityResolver
	Logger   *slog.Logger
}

// AuthMiddleware resolves the bearer token of a request into the calling user.
type AuthMiddleware struct {
	resolver usecase.IdentityResolver
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: params.Resolver,
		logger:   params.Logger,
	}
}

// Authenticate rejects requests without a valid bearer token and stores the resolved user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.FromAppError(c, domainerrors.ErrUnauthenticated)
		}

		ctx := c.Request().Context()
		user, err := m.resolver.Resolve(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Authentication rejected", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetCurrentUser(c, user)

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", user.ID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// bearerToken extracts the credentials of an "Authorization: Bearer <token>" header.
// The scheme is matched case-insensitively.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}
