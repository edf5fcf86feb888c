package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/LambdaTest/statusbridge/pkg/api"
	"github.com/LambdaTest/statusbridge/pkg/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the build hooks over HTTP",
		RunE:  runServe,
	}
	cmd.Flags().String("port", "", "port to listen on, defaults to 9876")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	// create a context that we can cancel
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.notifier()
	if err != nil {
		a.logger.Errorf("could not instantiate notifier %v", err)
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	router := api.New(gctx, a.cfg, n, a.logger)

	// setup http server
	g.Go(func() error {
		return server.ListenAndServe(gctx, &router, a.cfg, a.logger)
	})

	// listen for C-c
	g.Go(func() error {
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(c)
		select {
		case <-c:
			a.logger.Debugf("main: received close signal - attempting graceful shutdown ....")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Errorf("error while running http server %v", err)
		return err
	}
	a.logger.Debugf("main: all goroutines have finished.")
	return nil
}
