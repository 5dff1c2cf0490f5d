package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"

	"github.com/adelgado/libreta/pkg/models"
)

const (
	nameKey    = "name"
	phoneKey   = "phone"
	companyKey = "company"
	tagsKey    = "tags"
	notesKey   = "notes"
)

var contactCreateCommand = &cobra.Command{
	Use:     "create",
	Aliases: []string{"cre", "c"},
	Short:   "Create a new contact",
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

		params := models.ContactParams{
			Name:    viper.GetString(nameKey),
			Email:   viper.GetString(emailKey),
			Phone:   viper.GetString(phoneKey),
			Company: viper.GetString(companyKey),
			Tags:    models.ParseTags(viper.GetString(tagsKey)),
			Notes:   viper.GetString(notesKey),
		}

		log.Debug("Creating contact", "request", params)

		contact, err := c.CreateContact(ctx, params)
		if err != nil {
			return err
		}

		log.Debug("Created contact", "id", contact.ID)

		log.Debug("Writing contact to stdout")

		return yaml.NewEncoder(os.Stdout).Encode(contact)
	},
}

func init() {
	addAuthFlags(contactCreateCommand.PersistentFlags())

	contactCreateCommand.PersistentFlags().String(nameKey, "", "Name of the contact")
	contactCreateCommand.PersistentFlags().String(emailKey, "", "Email address of the contact")
	contactCreateCommand.PersistentFlags().String(phoneKey, "", "Phone number of the contact")
	contactCreateCommand.PersistentFlags().String(companyKey, "", "Company of the contact")
	contactCreateCommand.PersistentFlags().String(tagsKey, "", "Comma-separated tags for the contact (optional)")
	contactCreateCommand.PersistentFlags().String(notesKey, "", "Notes on the contact (optional)")

	viper.AutomaticEnv()

	contactCommand.AddCommand(contactCreateCommand)
}
