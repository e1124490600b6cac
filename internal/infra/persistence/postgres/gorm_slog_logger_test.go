package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"taskmanager/config"
	logs "taskmanager/internal/infra/log"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	return entries
}

func sqlFn() (string, int64) {
	return "SELECT * FROM tasks", 3
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	base, buf := newBufferedLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsQueryErrors(t *testing.T) {
	base, buf := newBufferedLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection refused"))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "GORM query failed", entries[0]["msg"])
	assert.Equal(t, "connection refused", entries[0]["error"])
	assert.Equal(t, "SELECT * FROM tasks", entries[0]["sql"])
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	base, buf := newBufferedLogger()
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "GORM slow query", entries[0]["msg"])
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	base, buf := newBufferedLogger()
	quiet := newGormSlogLogger(base, &config.Config{})
	quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	verbose := newGormSlogLogger(base, debugCfg)
	verbose.Trace(context.Background(), time.Now(), sqlFn, nil)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "GORM query", entries[0]["msg"])
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	base, buf := newBufferedLogger()
	l := newGormSlogLogger(base, &config.Config{})
	ctx := logs.WithContext(context.Background(), base.With(slog.String("request_id", "req-42")))

	l.Trace(ctx, time.Now(), sqlFn, errors.New("deadlock detected"))

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0]["request_id"])
}
