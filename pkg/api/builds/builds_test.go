package builds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apiutils "github.com/LambdaTest/statusbridge/pkg/api/utils"
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	started   []*core.Build
	completed []*core.Build
	ok        bool
}

func (r *recordingNotifier) OnBuildStart(ctx context.Context, build *core.Build) bool {
	r.started = append(r.started, build)
	return r.ok
}

func (r *recordingNotifier) OnBuildComplete(ctx context.Context, build *core.Build) bool {
	r.completed = append(r.completed, build)
	return r.ok
}

func newTestRouter(t *testing.T, n core.Notifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Error}, false, lumber.InstanceZapLogger)
	require.NoError(t, err)
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	trans, err := apiutils.ConfigureValidator(v)
	require.NoError(t, err)
	router := gin.New()
	router.POST("/builds/start", HandleStart(n, trans, logger))
	router.POST("/builds/complete", HandleComplete(n, trans, logger))
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHandleStart(t *testing.T) {
	n := &recordingNotifier{ok: true}
	router := newTestRouter(t, n)

	w := post(router, "/builds/start", `{"remote_url":"git@github.com:acme/widgets.git","commit_sha":"abc123","target_url":"https://ci/7/"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"published":true}`, w.Body.String())
	require.Len(t, n.started, 1)
	assert.Equal(t, &core.Build{RemoteURL: "git@github.com:acme/widgets.git", CommitSHA: "abc123", BuildURL: "https://ci/7/"}, n.started[0])
}

func TestHandleStartNotPublished(t *testing.T) {
	n := &recordingNotifier{ok: false}
	router := newTestRouter(t, n)

	w := post(router, "/builds/start", `{"remote_url":"git@github.com:acme/widgets.git"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"published":false}`, w.Body.String())
}

func TestHandleComplete(t *testing.T) {
	n := &recordingNotifier{ok: true}
	router := newTestRouter(t, n)

	w := post(router, "/builds/complete", `{"remote_url":"https://github.com/acme/widgets","commit_sha":"abc123","result":"unstable"}`)

	assert.Equal(t, http.StatusAccepted, w.Code)
	require.Len(t, n.completed, 1)
	assert.Equal(t, core.ResultUnstable, n.completed[0].Result)
}

func TestHandleBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		message string
	}{
		{"start not json", "/builds/start", `{`, "Invalid build start payload in request body."},
		{"start missing remote", "/builds/start", `{"commit_sha":"abc"}`, "remote_url is a required field"},
		{"complete missing result", "/builds/complete", `{"remote_url":"https://github.com/acme/widgets"}`, "result is a required field"},
		{"complete missing both", "/builds/complete", `{"commit_sha":"abc"}`, "remote_url is a required field; result is a required field"},
		{"complete unknown result", "/builds/complete", `{"remote_url":"https://github.com/acme/widgets","result":"EXPLODED"}`, "Invalid result in request body."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &recordingNotifier{ok: true}
			router := newTestRouter(t, n)

			w := post(router, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"message":"`+tt.message+`"}`, w.Body.String())
			assert.Empty(t, n.started)
			assert.Empty(t, n.completed)
		})
	}
}
