package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"ecovis/config"
	deliverycontext "ecovis/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	l := newGormSlogLogger(base, cfg)

	// record-not-found is expected control flow, not an error
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "connection reset")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are only logged in debug mode")

	cfg.Env.Debug = true
	newGormSlogLogger(base, cfg).Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "SELECT 1")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("ignored"))
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var baseBuf, reqBuf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&baseBuf, nil))
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))

	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)
	newGormSlogLogger(base, nil).Warn(ctx, "slow %s", "thing")

	assert.Empty(t, baseBuf.String())
	require.Contains(t, reqBuf.String(), "req-1")
	assert.Contains(t, reqBuf.String(), "slow thing")
}

func TestGormSlogLogger_RequestIDOnly(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID bool
	}{
		{name: "request id without logger", ctx: deliverycontext.WithRequestID(context.Background(), "req-2"), wantID: true},
		{name: "empty request id", ctx: deliverycontext.WithRequestID(context.Background(), ""), wantID: false},
		{name: "bare context", ctx: context.Background(), wantID: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, nil))

			newGormSlogLogger(base, nil).Trace(tt.ctx, time.Now(), sqlFn, errors.New("connection reset"))

			require.Contains(t, buf.String(), "GORM query failed")
			if tt.wantID {
				assert.Contains(t, buf.String(), `"request_id":"req-2"`)
			} else {
				assert.NotContains(t, buf.String(), "request_id")
			}
		})
	}
}

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 30 * time.Millisecond}

	_, waited := poolWaitAttrs(prev, prev)
	assert.False(t, waited)

	cur := sql.DBStats{WaitCount: 5, WaitDuration: 70 * time.Millisecond, MaxOpenConnections: 10}
	attrs, waited := poolWaitAttrs(prev, cur)
	require.True(t, waited)

	byKey := make(map[string]slog.Value, len(attrs))
	for _, a := range attrs {
		byKey[a.Key] = a.Value
	}
	assert.Equal(t, int64(2), byKey["waitCountDelta"].Int64())
	assert.Equal(t, 20*time.Millisecond, byKey["avgWait"].Duration())
}
