package cmd

import (
	"fmt"

	"github.com/LambdaTest/statusbridge/pkg/constants"
	"github.com/spf13/cobra"
)

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", constants.ServiceName, constants.BinaryVersion)
		},
	}
}
