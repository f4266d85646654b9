package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestID(t *testing.T) {
	t.Parallel()

	var ctx context.Context
	h := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	fields := withRequestID(ctx, []Field{String("k", "v")})
	require.Len(t, fields, 2)
	assert.Equal(t, "request_id", fields[1].Key)

	assert.Len(t, withRequestID(context.Background(), nil), 0)
}

func TestNopLogger(t *testing.T) {
	SetNopLogger()

	assert.NotPanics(t, func() {
		Info(context.Background(), "hello", String("k", "v"))
		With(Int("n", 1)).Error(context.Background(), "bye", ErrorF(assert.AnError))
	})
}
