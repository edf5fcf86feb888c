package cmd

import (
	"fmt"

	errs "github.com/LambdaTest/statusbridge/pkg/errors"
	"github.com/LambdaTest/statusbridge/pkg/utils"
	"github.com/spf13/cobra"
)

func provisionCommand() *cobra.Command {
	var username, password, otp string
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create a repo:status scoped token and store it for later builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				return errs.MissingInReqErr("username")
			}
			if password == "" {
				return errs.MissingInReqErr("password")
			}
			a, err := newApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			cred, err := a.provisioner().Provision(cmd.Context(), username, password, otp)
			if err != nil {
				a.logger.Errorf("failed to provision token, error: %v", err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token %s stored in %s backend\n", utils.MaskToken(cred.Token), a.cfg.Credentials.Backend)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "GitHub username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "GitHub password")
	cmd.Flags().StringVar(&otp, "otp", "", "one time code for accounts with two-factor auth")
	return cmd
}
