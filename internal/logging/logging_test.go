package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGHandlerPersistsErrorsOnStop(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, time.Hour)
	logger := slog.New(h).With("request_id", "req-1")

	logger.Info("ignored")
	logger.Error("apply failed", "user_id", uint(42), "action", "apply", "error", "boom", "internship_id", 7)
	h.Stop()
	h.Stop()

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "ERROR", row.Level)
	assert.Equal(t, "apply failed", row.Message)
	assert.Equal(t, "req-1", row.RequestID)
	require.NotNil(t, row.UserID)
	assert.EqualValues(t, 42, *row.UserID)
	assert.Equal(t, "apply", row.Action)
	assert.Equal(t, "boom", row.Error)

	var extra map[string]interface{}
	require.NoError(t, json.Unmarshal(row.Extra, &extra))
	assert.EqualValues(t, 7, extra["internship_id"])
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var info, errs bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	logger := slog.New(h)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	logger.Info("hello")
	logger.Error("broken")

	assert.Contains(t, info.String(), "hello")
	assert.Contains(t, info.String(), "broken")
	assert.NotContains(t, errs.String(), "hello")
	assert.Contains(t, errs.String(), "broken")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestMultiHandlerContinuesPastFailingSink(t *testing.T) {
	var out bytes.Buffer
	stdout := slog.NewJSONHandler(&out, nil)
	h := NewMultiHandler(failingHandler{stdout}, stdout)

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelError, "still written", 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink down")
	assert.Contains(t, out.String(), "still written")

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("request_id", "req-9")}))
	logger.Info("with attrs")
	assert.Contains(t, out.String(), "req-9")
}

func TestPGHandlerDropsRecordsAfterStop(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, time.Hour)
	logger := slog.New(h)

	logger.Error("before stop")
	h.Stop()
	logger.Error("after stop")

	var rows []models.SystemLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "before stop", rows[0].Message)
	assert.Empty(t, h.sink.buffer)
}

func TestPGHandlerFlushesFullBatch(t *testing.T) {
	db := testutil.NewDB(t)
	h := newPGHandler(db, time.Hour)
	defer h.Stop()
	logger := slog.New(h)

	for i := 0; i < batchSize; i++ {
		logger.Error("burst", "n", i)
	}

	assert.Eventually(t, func() bool {
		var n int64
		db.Model(&models.SystemLog{}).Count(&n)
		return n == batchSize
	}, 2*time.Second, 10*time.Millisecond)
}
