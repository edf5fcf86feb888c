package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, seen *string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Error}, false, lumber.InstanceZapLogger)
	require.NoError(t, err)
	router := gin.New()
	router.Use(HandleRequestID(logger))
	router.GET("/ping", func(c *gin.Context) {
		*seen = RequestID(c)
		assert.NotNil(t, Logger(c, nil))
		c.Status(http.StatusOK)
	})
	return router
}

func TestHandleRequestIDGenerates(t *testing.T) {
	var seen string
	router := newTestRouter(t, &seen)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, seen, 32)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
}

func TestHandleRequestIDReusesCallerID(t *testing.T) {
	var seen string
	router := newTestRouter(t, &seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "build-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "build-42", seen)
	assert.Equal(t, "build-42", w.Header().Get("X-Request-ID"))
}
