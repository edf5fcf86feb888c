package server

import (
	"context"
	"net"
	"net/http"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/api"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/gin-gonic/gin"
)

// ListenAndServe initializes a server to respond to HTTP network requests.
// It returns once ctx is cancelled and in-flight requests have drained,
// or GracefulTimeout has elapsed.
func ListenAndServe(ctx context.Context, router *api.Router, cfg *config.Config, logger lumber.Logger) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		logger.Errorf("failed to listen on port %s, error: %v", cfg.Port, err)
		return err
	}
	return Serve(ctx, listener, router, cfg, logger)
}

// Serve is ListenAndServe on an existing listener.
func Serve(ctx context.Context, listener net.Listener, router *api.Router, cfg *config.Config, logger lumber.Logger) error {
	// set gin to release mode
	gin.SetMode(gin.ReleaseMode)

	logger.Infof("Setting up http handler")

	errChan := make(chan error, 1)

	// HTTP server instance
	srv := &http.Server{
		Handler:           router.Handler(),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	go func() {
		logger.Infof("Starting server on %s", listener.Addr())
		// service connections
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Errorf("listen: %#v", err)
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Infof("Caller has requested graceful shutdown. shutting down the server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && err != context.Canceled {
			if err == context.DeadlineExceeded {
				logger.Errorf("Graceful timeout exceeded. Brutally killing the server")
				return errs.ErrTimeoutExceeded
			}
			logger.Errorf("Server Shutdown: error %v", err)
			return err
		}
		return nil
	case err := <-errChan:
		return err
	}
}
