package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskmanager/config"
	deliverycontext "taskmanager/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generates id", incoming: ""},
		{name: "keeps client id", incoming: "client-req-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			m := NewRequestIDMiddleware(logger)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			var seenID string
			err := m.Process(func(c echo.Context) error {
				seenID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside handler")

				return c.NoContent(http.StatusOK)
			})(c)
			require.NoError(t, err)

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, headerID)
			assert.Equal(t, headerID, seenID)
			assert.Equal(t, headerID, deliverycontext.GetRequestID(c))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, headerID)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, headerID, entry["request_id"])
		})
	}
}

func TestResolveRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "uuid", incoming: "7f3c2a10-9d7e-4a43-8d3c-2f1b0c9e6a11", keep: true},
		{name: "trace style", incoming: "edge:req_42.a", keep: true},
		{name: "empty", incoming: ""},
		{name: "newline injection", incoming: "abc\nlevel=ERROR"},
		{name: "spaces", incoming: "abc def"},
		{name: "too long", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveRequestID(tt.incoming)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)

				return
			}

			assert.NotEqual(t, tt.incoming, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newConfig := func(debug bool) *config.Config {
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return cfg
	}

	t.Run("debug logs through the request logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		requestID := NewRequestIDMiddleware(logger)
		requestLogger := NewLoggerMiddleware(logger, newConfig(true))

		req := httptest.NewRequest(http.MethodGet, "/api/tasks?x=1", nil)
		rec := httptest.NewRecorder()
		c := echo.New().NewContext(req, rec)

		err := requestID.Process(requestLogger.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusNotFound)
		}))(c)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "HTTP Request", entry["msg"])
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "/api/tasks", entry["uri"])
		assert.Equal(t, "x=1", entry["query"])
		assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), entry["request_id"])
	})

	t.Run("quiet outside debug", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), newConfig(false))
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		require.NoError(t, m.Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c))
		assert.Zero(t, buf.Len())
	})
}
