package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logoutCommand = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"lo"},
	Short:   "Invalidate the current session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		c, err := createClient(true)
		if err != nil {
			return err
		}

		log.Debug("Logging out")

		return c.Logout(ctx)
	},
}

func init() {
	addAuthFlags(logoutCommand.PersistentFlags())

	viper.AutomaticEnv()

	indexCommand.AddCommand(logoutCommand)
}
