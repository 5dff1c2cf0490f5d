package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"
)

var contactGetCommand = &cobra.Command{
	Use:     "get <id>",
	Aliases: []string{"ge", "g"},
	Short:   "Get a contact",
	Args:    cobra.ExactArgs(1),
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

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		log.Debug("Getting contact", "id", id)

		contact, err := c.GetContact(ctx, id)
		if err != nil {
			return err
		}

		log.Debug("Writing contact to stdout")

		return yaml.NewEncoder(os.Stdout).Encode(contact)
	},
}

func init() {
	addAuthFlags(contactGetCommand.PersistentFlags())

	viper.AutomaticEnv()

	contactCommand.AddCommand(contactGetCommand)
}
