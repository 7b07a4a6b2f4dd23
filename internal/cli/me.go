package cli

import (
	"github.com/spf13/cobra"
)

func newMeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Print the bot account returned by getMe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.newClient()
			if err != nil {
				return err
			}

			user, err := c.GetMe(cmd.Context())
			if err != nil {
				return describe(err)
			}

			return printJSON(cmd.OutOrStdout(), user)
		},
	}
}
