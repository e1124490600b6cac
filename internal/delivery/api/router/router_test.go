package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskmanager/internal/delivery/api/middleware"
	"taskmanager/internal/delivery/api/response"
	"taskmanager/internal/delivery/api/router/handler"
	"taskmanager/internal/delivery/api/validator"
	"taskmanager/internal/domain/entity"
	domainerrors "taskmanager/internal/domain/errors"
	mockUsecase "taskmanager/internal/mocks/usecase"
	"taskmanager/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type routerFixtures struct {
	echo     *echo.Echo
	resolver *mockUsecase.MockIdentityResolver
	userUC   *mockUsecase.MockUserUsecase
	taskUC   *mockUsecase.MockTaskUsecase
	caller   *entity.User
}

func newRouterFixtures(t *testing.T) routerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	resolver := mockUsecase.NewMockIdentityResolver(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	taskUC := mockUsecase.NewMockTaskUsecase(t)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		HealthHandler:  handler.NewHealthHandler(),
		UserHandler:    handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: logger}),
		TaskHandler:    handler.NewTaskHandler(handler.TaskHandlerParams{TaskUC: taskUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{Resolver: resolver, Logger: logger}),
	}).RegisterRoutes(e)

	return routerFixtures{
		echo:     e,
		resolver: resolver,
		userUC:   userUC,
		taskUC:   taskUC,
		caller:   &entity.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"},
	}
}

func (f routerFixtures) authorize() {
	f.resolver.EXPECT().Resolve(mock.Anything, validToken).Return(f.caller, nil)
}

func (f routerFixtures) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorized {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()
	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestPublicRoutes(t *testing.T) {
	f := newRouterFixtures(t)

	rec := f.do(http.MethodGet, "/", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Task Manager API is running!"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestRegister(t *testing.T) {
	t.Run("created with fields trimmed before validation", func(t *testing.T) {
		f := newRouterFixtures(t)
		created := &entity.User{
			ID:           uuid.New(),
			Email:        "bob@example.com",
			Username:     "bob",
			PasswordHash: "$2a$10$secret",
			CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		f.userUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Email:    "bob@example.com",
			Username: "bob",
			Password: "hunter2",
		}).Return(created, nil)

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"email":"  bob@example.com ","username":" bob ","password":"hunter2"}`, false)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, created.ID.String(), body["id"])
		assert.Equal(t, "bob@example.com", body["email"])
		assert.Equal(t, "bob", body["username"])
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.userUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration"))

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"email":"bob@example.com","username":"bob","password":"hunter2"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "EMAIL_ALREADY_REGISTERED", body.Error.Code)
		assert.Equal(t, "Email already registered", body.Detail)
	})

	t.Run("invalid email never reaches the use case", func(t *testing.T) {
		f := newRouterFixtures(t)

		rec := f.do(http.MethodPost, "/api/auth/register",
			`{"email":"not-an-email","username":"bob","password":"hunter2"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "email must be a valid email address", body.Error.Details)
	})

	t.Run("malformed json", func(t *testing.T) {
		f := newRouterFixtures(t)

		rec := f.do(http.MethodPost, "/api/auth/register", `{"email":`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("issues bearer token", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "bob@example.com", Password: "hunter2"}).
			Return(&usecase.LoginOutput{AccessToken: "jwt", TokenType: usecase.TokenTypeBearer}, nil)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"bob@example.com","password":"hunter2"}`, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"jwt","token_type":"bearer"}`, rec.Body.String())
	})

	t.Run("identifier that is not an email is still a credential failure", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.userUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "bob", Password: "hunter2"}).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":" bob ","password":"hunter2"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		f := newRouterFixtures(t)

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"bob@example.com"}`, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "password is required", decodeError(t, rec).Error.Details)
	})

	t.Run("bad credentials", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.userUC.EXPECT().Login(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"))

		rec := f.do(http.MethodPost, "/api/auth/login", `{"email":"bob@example.com","password":"wrong"}`, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(response.HeaderWWWAuthenticate))
		assert.Equal(t, "Incorrect email or password", decodeError(t, rec).Detail)
	})
}

func TestMe(t *testing.T) {
	t.Run("returns the resolved user", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()

		rec := f.do(http.MethodGet, "/api/auth/me", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body entity.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, f.caller.ID, body.ID)
		assert.Equal(t, f.caller.Email, body.Email)
	})

	t.Run("requires a token", func(t *testing.T) {
		f := newRouterFixtures(t)

		rec := f.do(http.MethodGet, "/api/auth/me", "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Could not validate credentials", decodeError(t, rec).Detail)
	})
}

func TestTaskRoutesRequireAuthentication(t *testing.T) {
	taskPath := "/api/tasks/" + uuid.NewString()
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/tasks"},
		{http.MethodGet, "/api/tasks/"},
		{http.MethodPost, "/api/tasks/"},
		{http.MethodGet, "/api/tasks/stats"},
		{http.MethodGet, taskPath},
		{http.MethodPut, taskPath},
		{http.MethodDelete, taskPath},
		{http.MethodPatch, taskPath + "/toggle"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			f := newRouterFixtures(t)

			rec := f.do(route.method, route.path, "", false)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Error.Code)
		})
	}
}

func TestCreateTask(t *testing.T) {
	for _, path := range []string{"/api/tasks", "/api/tasks/"} {
		t.Run(path, func(t *testing.T) {
			f := newRouterFixtures(t)
			f.authorize()
			desc := "two litres"
			completed := entity.TaskStatusCompleted
			task := &entity.Task{ID: uuid.New(), Title: "Buy milk", Description: &desc, Status: completed, UserID: f.caller.ID}
			f.taskUC.EXPECT().CreateTask(mock.Anything, f.caller.ID, &usecase.CreateTaskInput{
				Title:       "Buy milk",
				Description: &desc,
				Status:      &completed,
			}).Return(task, nil)

			rec := f.do(http.MethodPost, path, `{"title":"Buy milk","description":"two litres","status":"completed"}`, true)

			assert.Equal(t, http.StatusCreated, rec.Code)
			var body entity.Task
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, task.ID, body.ID)
			assert.Equal(t, entity.TaskStatusCompleted, body.Status)
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()

		rec := f.do(http.MethodPost, "/api/tasks/", `{"title":"Buy milk","status":"archived"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
	})

	t.Run("blank title", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		f.taskUC.EXPECT().CreateTask(mock.Anything, f.caller.ID, mock.Anything).
			Return(nil, domainerrors.ErrTaskTitleEmpty)

		rec := f.do(http.MethodPost, "/api/tasks/", `{"title":"   "}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Task title cannot be empty", decodeError(t, rec).Detail)
	})
}

func TestListTasks(t *testing.T) {
	t.Run("empty list renders as array", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		f.taskUC.EXPECT().ListTasks(mock.Anything, f.caller.ID).Return(nil, nil)

		rec := f.do(http.MethodGet, "/api/tasks/", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("tasks in use case order", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		newer := &entity.Task{ID: uuid.New(), Title: "newer", Status: entity.TaskStatusPending, UserID: f.caller.ID}
		older := &entity.Task{ID: uuid.New(), Title: "older", Status: entity.TaskStatusPending, UserID: f.caller.ID}
		f.taskUC.EXPECT().ListTasks(mock.Anything, f.caller.ID).Return([]*entity.Task{newer, older}, nil)

		rec := f.do(http.MethodGet, "/api/tasks", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body []entity.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 2)
		assert.Equal(t, "newer", body[0].Title)
		assert.Equal(t, "older", body[1].Title)
	})
}

func TestTaskStats(t *testing.T) {
	f := newRouterFixtures(t)
	f.authorize()
	f.taskUC.EXPECT().GetStats(mock.Anything, f.caller.ID).
		Return(&entity.TaskStats{Total: 3, Pending: 2, Completed: 1}, nil)

	rec := f.do(http.MethodGet, "/api/tasks/stats", "", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":3,"pending":2,"completed":1}`, rec.Body.String())
}

func TestTaskByID(t *testing.T) {
	t.Run("malformed id is not found", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()

		rec := f.do(http.MethodGet, "/api/tasks/not-a-uuid", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Task not found", decodeError(t, rec).Detail)
	})

	t.Run("foreign task is not found", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		taskID := uuid.New()
		f.taskUC.EXPECT().GetTask(mock.Anything, f.caller.ID, taskID).
			Return(nil, errors.Wrap(domainerrors.ErrTaskNotFound, "get task"))

		rec := f.do(http.MethodGet, "/api/tasks/"+taskID.String(), "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "TASK_NOT_FOUND", decodeError(t, rec).Error.Code)
	})

	t.Run("update passes only the provided fields", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		taskID := uuid.New()
		title := "Renamed"
		updated := &entity.Task{ID: taskID, Title: title, Status: entity.TaskStatusPending, UserID: f.caller.ID}
		f.taskUC.EXPECT().UpdateTask(mock.Anything, f.caller.ID, taskID, &usecase.UpdateTaskInput{Title: &title}).
			Return(updated, nil)

		rec := f.do(http.MethodPut, "/api/tasks/"+taskID.String(), `{"title":"Renamed"}`, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body entity.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Renamed", body.Title)
	})

	t.Run("delete acknowledges", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		taskID := uuid.New()
		f.taskUC.EXPECT().DeleteTask(mock.Anything, f.caller.ID, taskID).Return(nil)

		rec := f.do(http.MethodDelete, "/api/tasks/"+taskID.String(), "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Task deleted successfully"}`, rec.Body.String())
	})

	t.Run("toggle", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		taskID := uuid.New()
		toggled := &entity.Task{ID: taskID, Title: "Buy milk", Status: entity.TaskStatusCompleted, UserID: f.caller.ID}
		f.taskUC.EXPECT().ToggleTask(mock.Anything, f.caller.ID, taskID).Return(toggled, nil)

		rec := f.do(http.MethodPatch, "/api/tasks/"+taskID.String()+"/toggle", "", true)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body entity.Task
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, entity.TaskStatusCompleted, body.Status)
	})

	t.Run("storage failure is hidden", func(t *testing.T) {
		f := newRouterFixtures(t)
		f.authorize()
		taskID := uuid.New()
		f.taskUC.EXPECT().ToggleTask(mock.Anything, f.caller.ID, taskID).
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "toggle"))

		rec := f.do(http.MethodPatch, "/api/tasks/"+taskID.String()+"/toggle", "", true)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "deadlock")
	})
}
