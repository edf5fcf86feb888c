package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct{}

func (stubNotifier) OnBuildStart(ctx context.Context, build *core.Build) bool    { return true }
func (stubNotifier) OnBuildComplete(ctx context.Context, build *core.Build) bool { return true }

func newTestHandler(t *testing.T, ctx context.Context) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Error}, false, lumber.InstanceZapLogger)
	require.NoError(t, err)
	router := New(ctx, &config.Config{}, stubNotifier{}, logger)
	return router.Handler()
}

func TestHealth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	handler := newTestHandler(t, ctx)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	cancel()
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestBuildRoutes(t *testing.T) {
	handler := newTestHandler(t, context.Background())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/builds/complete",
		strings.NewReader(`{"remote_url":"git@github.com:acme/widgets.git","commit_sha":"abc","result":"SUCCESS"}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"published":true}`, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/builds/complete", strings.NewReader(`{"remote_url":"x/y"}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}
