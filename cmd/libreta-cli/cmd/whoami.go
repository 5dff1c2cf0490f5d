package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"
)

var whoamiCommand = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"who", "me"},
	Short:   "Print the user the current session belongs to",
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

		log.Debug("Getting current user")

		user, err := c.Me(ctx)
		if err != nil {
			return err
		}

		log.Debug("Writing user to stdout")

		return yaml.NewEncoder(os.Stdout).Encode(user)
	},
}

func init() {
	addAuthFlags(whoamiCommand.PersistentFlags())

	viper.AutomaticEnv()

	indexCommand.AddCommand(whoamiCommand)
}
