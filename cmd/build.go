package cmd

import (
	"github.com/LambdaTest/statusbridge/pkg/buildenv"
	"github.com/LambdaTest/statusbridge/pkg/core"
	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/spf13/cobra"
)

func attachBuildFlags(cmd *cobra.Command, overrides *buildenv.Overrides, strict *bool) {
	cmd.Flags().StringVar(&overrides.RemoteURL, "remote-url", "", "git remote url, defaults to $GIT_URL or $GIT_URL_1")
	cmd.Flags().StringVar(&overrides.CommitSHA, "commit", "", "commit sha, defaults to $GIT_COMMIT")
	cmd.Flags().StringVar(&overrides.BuildURL, "build-url", "", "link shown on the commit status, defaults to $BUILD_URL")
	cmd.Flags().BoolVar(strict, "strict", false, "exit non-zero when the commit status could not be sent")
}

func startCommand() *cobra.Command {
	var overrides buildenv.Overrides
	var strict bool
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Report a started build as a pending commit status",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := buildenv.Load(overrides, false)
			if err != nil {
				return err
			}
			return notify(cmd, strict, func(n core.Notifier) bool {
				return n.OnBuildStart(cmd.Context(), build)
			})
		},
	}
	attachBuildFlags(cmd, &overrides, &strict)
	return cmd
}

func completeCommand() *cobra.Command {
	var overrides buildenv.Overrides
	var strict bool
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Report a finished build result as a commit status",
		RunE: func(cmd *cobra.Command, args []string) error {
			build, err := buildenv.Load(overrides, true)
			if err != nil {
				return err
			}
			return notify(cmd, strict, func(n core.Notifier) bool {
				return n.OnBuildComplete(cmd.Context(), build)
			})
		},
	}
	attachBuildFlags(cmd, &overrides, &strict)
	cmd.Flags().StringVar(&overrides.Result, "result", "", "build result, one of SUCCESS, UNSTABLE, FAILURE, NOT_BUILT, ABORTED, defaults to $BUILD_RESULT")
	return cmd
}

// notify runs send and only fails the command in strict mode.
func notify(cmd *cobra.Command, strict bool, send func(core.Notifier) bool) error {
	a, err := newApp(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.notifier()
	if err != nil {
		a.logger.Errorf("could not instantiate notifier %v", err)
		return err
	}
	if !send(n) && strict {
		return errs.ErrNotPublished
	}
	return nil
}
