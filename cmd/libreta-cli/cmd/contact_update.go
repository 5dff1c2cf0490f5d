package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"

	"github.com/adelgado/libreta/pkg/models"
)

var contactUpdateCommand = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"upd", "up", "u"},
	Short:   "Update a contact (all fields are replaced)",
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

		params := models.ContactParams{
			Name:    viper.GetString(nameKey),
			Email:   viper.GetString(emailKey),
			Phone:   viper.GetString(phoneKey),
			Company: viper.GetString(companyKey),
			Tags:    models.ParseTags(viper.GetString(tagsKey)),
			Notes:   viper.GetString(notesKey),
		}

		log.Debug("Updating contact", "id", id, "request", params)

		contact, err := c.UpdateContact(ctx, id, params)
		if err != nil {
			return err
		}

		log.Debug("Updated contact", "id", contact.ID)

		log.Debug("Writing contact to stdout")

		return yaml.NewEncoder(os.Stdout).Encode(contact)
	},
}

func init() {
	addAuthFlags(contactUpdateCommand.PersistentFlags())

	contactUpdateCommand.PersistentFlags().String(nameKey, "", "Name of the contact")
	contactUpdateCommand.PersistentFlags().String(emailKey, "", "Email address of the contact")
	contactUpdateCommand.PersistentFlags().String(phoneKey, "", "Phone number of the contact")
	contactUpdateCommand.PersistentFlags().String(companyKey, "", "Company of the contact")
	contactUpdateCommand.PersistentFlags().String(tagsKey, "", "Comma-separated tags for the contact (optional)")
	contactUpdateCommand.PersistentFlags().String(notesKey, "", "Notes on the contact (optional)")

	viper.AutomaticEnv()

	contactCommand.AddCommand(contactUpdateCommand)
}
