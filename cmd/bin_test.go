package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGitHub struct {
	mu       sync.Mutex
	statuses []map[string]string
}

func (f *fakeGitHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch r.URL.Path {
	case "/authorizations":
		if user, pass, ok := r.BasicAuth(); !ok || user != "octocat" || pass != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"token":"ghp_cafebabe1234"}`))
	case "/repos/acme/widgets/statuses/abc123":
		if r.Header.Get("Authorization") != "Bearer ghp_cafebabe1234" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		body := map[string]string{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.statuses = append(f.statuses, body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeGitHub) sent() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.statuses...)
}

type harness struct {
	github      *fakeGitHub
	apiURL      string
	credentials string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	gh := &fakeGitHub{}
	server := httptest.NewServer(gh)
	t.Cleanup(server.Close)
	t.Setenv("HOME", t.TempDir())
	for _, env := range []string{"GIT_URL", "GIT_URL_1", "GIT_COMMIT", "BUILD_URL", "BUILD_RESULT"} {
		t.Setenv(env, "")
	}
	return &harness{
		github:      gh,
		apiURL:      server.URL,
		credentials: filepath.Join(t.TempDir(), "credentials.json"),
	}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	root := RootCommand()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--api-url", h.apiURL, "--credentials", h.credentials))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProvisionThenComplete(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "provision", "--username", "octocat", "--password", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "**********1234")
	assert.NotContains(t, out, "ghp_cafebabe1234")

	_, err = h.run(t, "start", "--remote-url", "git@github.com:acme/widgets.git", "--commit", "abc123", "--build-url", "https://ci/1/")
	require.NoError(t, err)

	t.Setenv("GIT_URL", "https://github.com/acme/widgets.git")
	t.Setenv("GIT_COMMIT", "abc123")
	t.Setenv("BUILD_RESULT", "FAILURE")
	_, err = h.run(t, "complete", "--strict")
	require.NoError(t, err)

	sent := h.github.sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "pending", sent[0]["state"])
	assert.Equal(t, "Build started", sent[0]["description"])
	assert.Equal(t, "https://ci/1/", sent[0]["target_url"])
	assert.Equal(t, "error", sent[1]["state"])
	assert.Equal(t, "Build error'ed", sent[1]["description"])
	assert.Equal(t, "CI", sent[1]["context"])
}

func TestCompleteUnconfigured(t *testing.T) {
	h := newHarness(t)
	args := []string{"complete", "--remote-url", "acme/widgets", "--commit", "abc123", "--result", "SUCCESS"}

	_, err := h.run(t, args...)
	assert.NoError(t, err)

	_, err = h.run(t, append(args, "--strict")...)
	assert.ErrorIs(t, err, errs.ErrNotPublished)
	assert.Empty(t, h.github.sent())
}

func TestCompleteInvalidResult(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "complete", "--remote-url", "acme/widgets", "--commit", "abc123", "--result", "MAYBE")
	assert.ErrorIs(t, err, errs.ErrInvalidResult)
}

func TestProvisionBadCredentials(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "provision", "--username", "octocat", "--password", "wrong")
	assert.ErrorIs(t, err, errs.ErrProvision)
	assert.ErrorIs(t, err, errs.ErrAuth)

	_, err = h.run(t, "provision", "--username", "octocat")
	assert.Error(t, err)
}

func TestCompleteWithLogrusBackend(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "provision", "--username", "octocat", "--password", "hunter2", "--log-backend", "logrus")
	require.NoError(t, err)

	_, err = h.run(t, "complete", "--remote-url", "acme/widgets", "--commit", "abc123", "--result", "SUCCESS",
		"--strict", "--log-backend", "logrus")
	require.NoError(t, err)

	sent := h.github.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "success", sent[0]["state"])

	_, err = h.run(t, "complete", "--remote-url", "acme/widgets", "--commit", "abc123", "--result", "SUCCESS",
		"--log-backend", "stdlog")
	assert.ErrorIs(t, err, errs.ErrInvalidLoggerInstance)
	assert.Len(t, h.github.sent(), 1)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "statusbridge")
}
