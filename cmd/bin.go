package cmd

import (
	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/LambdaTest/statusbridge/pkg/lumber"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:           constants.ServiceName,
		Long:          `statusbridge reports build progress and results to GitHub as commit statuses.`,
		Version:       constants.BinaryVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// define flags used for this command
	AttachCLIFlags(&rootCmd)

	rootCmd.AddCommand(
		startCommand(),
		completeCommand(),
		provisionCommand(),
		serveCommand(),
		versionCommand(),
	)
	return &rootCmd
}

// AttachCLIFlags attaches the persistent flags shared by every sub command.
func AttachCLIFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file, defaults to ./.sb or ~/.statusbridge/.sb")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.StringP("env", "e", constants.Prod, "environment, one of prod, stage, dev")
	flags.String("log-file", "", "directory to write the log file to")
	flags.String("log-backend", lumber.BackendZap, "logger backend, one of zap, logrus")
	flags.String("api-url", constants.DefaultGitHubAPIURL, "GitHub API base url")
	flags.String("status-context", "", "commit status context, overrides the env default")
	flags.String("backend", constants.BackendFile, "credential store backend, one of file, vault, redis")
	flags.String("credentials", "", "credentials file used by the file backend")
	flags.Duration("timeout", constants.DefaultRequestTimeout, "timeout for each GitHub API request")
}
