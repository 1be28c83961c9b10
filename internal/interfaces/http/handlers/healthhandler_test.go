package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforma/qualitrack/internal/interfaces/http/handlers/testutil"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		ping       error
		wantCode   int
		wantStatus string
	}{
		{"database up", nil, http.StatusOK, "ok"},
		{"database down", errors.New("dial tcp: refused"), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(pingFunc(func(context.Context) error { return tt.ping }), testutil.NewMockLogger())
			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

			h.Health(c)

			require.Equal(t, tt.wantCode, w.Code)
			var resp struct {
				Data healthResponse `json:"data"`
			}
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantStatus, resp.Data.Status)
			assert.Equal(t, "qualitrack", resp.Data.Service)
		})
	}
}
