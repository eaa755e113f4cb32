package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	InitWithWriter("production", &buf)
	t.Cleanup(func() { Init("test") })
	return &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestFromContext_AddsRequestAndUser(t *testing.T) {
	buf := captureJSON(t)

	ctx := WithUserID(WithRequestID(context.Background(), "req-1"), "user-1")
	CtxInfo(ctx, "hello", "k", "v")

	entry := lastEntry(t, buf)
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "user-1", entry["user_id"])
	assert.Equal(t, "v", entry["k"])
}

func TestCtxWithError(t *testing.T) {
	buf := captureJSON(t)

	CtxWithError(context.Background(), "failed", errors.New("boom"), "job_id", "j1")

	entry := lastEntry(t, buf)
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "j1", entry["job_id"])
}

func TestWorkerLog(t *testing.T) {
	buf := captureJSON(t)

	WorkerLog("board_digest", "run", nil, "active_jobs", 3)
	entry := lastEntry(t, buf)
	assert.Equal(t, "worker operation completed", entry["msg"])
	assert.Equal(t, "board_digest", entry["worker"])
	assert.EqualValues(t, 3, entry["active_jobs"])

	WorkerLog("board_digest", "run", errors.New("db down"))
	entry = lastEntry(t, buf)
	assert.Equal(t, "worker operation failed", entry["msg"])
	assert.Equal(t, "db down", entry["error"])
}

func TestGormLogger_Trace(t *testing.T) {
	buf := captureJSON(t)
	l := NewGormLogger(false)
	fc := func() (string, int64) { return "SELECT 1", 1 }

	// Record not found не логируется
	l.Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), fc, errors.New("syntax error"))
	entry := lastEntry(t, buf)
	assert.Equal(t, "database operation failed", entry["msg"])
	assert.Equal(t, "SELECT 1", entry["query"])

	// Silent подавляет все
	buf.Reset()
	l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), fc, errors.New("x"))
	assert.Empty(t, buf.String())
}
