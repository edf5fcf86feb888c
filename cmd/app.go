package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/LambdaTest/statusbridge/config"
	"github.com/LambdaTest/statusbridge/pkg/core"
	"github.com/LambdaTest/statusbridge/pkg/gitscm"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/LambdaTest/statusbridge/pkg/notifier"
	"github.com/LambdaTest/statusbridge/pkg/requestutils"
	"github.com/LambdaTest/statusbridge/pkg/service/gitstatus"
	"github.com/LambdaTest/statusbridge/pkg/store/credentials"
	"github.com/LambdaTest/statusbridge/pkg/token"
	"github.com/spf13/cobra"
)

// app holds the dependencies shared by the sub commands.
type app struct {
	cfg        *config.Config
	logger     lumber.Logger
	state      core.CredentialState
	closeStore func()
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(cmd)
	if err != nil {
		fmt.Printf("Failed to load config: %v", err)
		return nil, err
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, "statusbridge.log")
	}

	// LogBackend picks zap (default) or logrus
	loggerInstance, err := lumber.InstanceFromName(cfg.LogBackend)
	if err != nil {
		log.Printf("could not instantiate logger %s", err.Error())
		return nil, err
	}
	logger, err := lumber.NewLogger(&cfg.LogConfig, cfg.Verbose, loggerInstance)
	if err != nil {
		log.Printf("could not instantiate logger %s", err.Error())
		return nil, err
	}

	store, closeStore, err := credentials.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf("could not instantiate %s credential store %v", cfg.Credentials.Backend, err)
		return nil, err
	}
	state := token.NewState(store, logger)
	if err := state.Load(ctx); err != nil {
		closeStore()
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, state: state, closeStore: closeStore}, nil
}

func (a *app) Close() {
	a.closeStore()
}

func (a *app) notifier() (core.Notifier, error) {
	scmProvider, err := gitscm.New(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	gitStatusService, err := gitstatus.New(a.cfg, scmProvider, a.logger)
	if err != nil {
		return nil, err
	}
	return notifier.New(gitStatusService, a.state, a.logger), nil
}

func (a *app) provisioner() core.TokenProvisioner {
	requests := requestutils.New(a.cfg.RequestTimeout, a.logger)
	return token.New(a.cfg, requests, a.state, a.logger)
}
