package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/api"
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotifier struct{}

func (stubNotifier) OnBuildStart(ctx context.Context, build *core.Build) bool    { return true }
func (stubNotifier) OnBuildComplete(ctx context.Context, build *core.Build) bool { return true }

func TestServeShutsDownOnCancel(t *testing.T) {
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Error}, false, lumber.InstanceZapLogger)
	require.NoError(t, err)
	cfg := &config.Config{RequestTimeout: time.Second, GracefulTimeout: time.Second}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	router := api.New(ctx, cfg, stubNotifier{}, logger)
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, listener, &router, cfg, logger)
	}()

	var res *http.Response
	require.Eventually(t, func() bool {
		res, err = http.Get("http://" + listener.Addr().String() + "/health")
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}
