package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c echo.Context)
		want  string
	}{
		{
			name:  "echo store wins",
			setup: func(c echo.Context) { SetRequestID(c, "from-echo") },
			want:  "from-echo",
		},
		{
			name: "falls back to request context",
			setup: func(c echo.Context) {
				c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "from-ctx")))
			},
			want: "from-ctx",
		},
		{
			name:  "mints a uuid",
			setup: func(echo.Context) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			tt.setup(c)

			got := GetRequestID(c)
			if tt.want == "" {
				_, err := uuid.Parse(got)
				require.NoError(t, err)

				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))

	fallback := slog.New(slog.DiscardHandler)
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))

	reqLogger := slog.New(slog.DiscardHandler).With(slog.String("request_id", "r"))
	ctx = WithLogger(WithRequestID(ctx, "r"), reqLogger)
	assert.Equal(t, "r", RequestIDFromContext(ctx))
	assert.Same(t, reqLogger, GetLoggerOrDefault(ctx, fallback))
}
