package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	yesKey = "yes"
)

var contactDeleteCommand = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm", "d"},
	Short:   "Delete a contact permanently",
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

		if !viper.GetBool(yesKey) {
			fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete contact %v? [y/N]: ", id)

			answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil {
				return err
			}

			if strings.ToLower(strings.TrimSpace(answer)) != "y" {
				log.Debug("Delete not confirmed, doing nothing", "id", id)

				return nil
			}
		}

		log.Debug("Deleting contact", "id", id)

		if err := c.DeleteContact(ctx, id); err != nil {
			return err
		}

		log.Debug("Deleted contact", "id", id)

		return nil
	},
}

func init() {
	addAuthFlags(contactDeleteCommand.PersistentFlags())

	contactDeleteCommand.PersistentFlags().BoolP(yesKey, "y", false, "Whether to skip the confirmation prompt")

	viper.AutomaticEnv()

	contactCommand.AddCommand(contactDeleteCommand)
}
