package redis

import (
	"context"
	"testing"
	"time"

	"github.com/LambdaTest/statusbridge/config"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) lumber.Logger {
	t.Helper()
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true, ConsoleLevel: lumber.Error}, false, lumber.InstanceZapLogger)
	require.NoError(t, err)
	return logger
}

func TestNew(t *testing.T) {
	s := miniredis.RunT(t)
	cfg := &config.Config{Redis: config.Redis{Addr: s.Addr()}, RequestTimeout: time.Second}

	db, err := New(context.Background(), cfg, newTestLogger(t))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Client().Set(context.Background(), "k", "v", 0).Err())
	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewMissingAddr(t *testing.T) {
	_, err := New(context.Background(), &config.Config{RequestTimeout: time.Second}, newTestLogger(t))
	assert.ErrorIs(t, err, errs.ErrConfigNotFound)
}

func TestNewUnreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	cfg := &config.Config{Redis: config.Redis{Addr: addr}, RequestTimeout: 200 * time.Millisecond}
	_, err := New(context.Background(), cfg, newTestLogger(t))
	assert.Error(t, err)
}
