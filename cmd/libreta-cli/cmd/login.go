package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"
)

var (
	errMissingEmail    = errors.New("missing email")
	errMissingPassword = errors.New("missing password")
)

const (
	emailKey    = "email"
	passwordKey = "password"
)

var loginCommand = &cobra.Command{
	Use:     "login",
	Aliases: []string{"log", "li"},
	Short:   "Log in and print the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		c, err := createClient(false)
		if err != nil {
			return err
		}

		if !viper.IsSet(emailKey) {
			return errMissingEmail
		}

		if !viper.IsSet(passwordKey) {
			return errMissingPassword
		}

		log.Debug("Logging in", "email", viper.GetString(emailKey))

		user, err := c.Login(ctx, viper.GetString(emailKey), viper.GetString(passwordKey))
		if err != nil {
			return err
		}

		log.Debug("Logged in", "id", user.ID)

		log.Debug("Writing session to stdout")

		return yaml.NewEncoder(os.Stdout).Encode(map[string]any{
			"user":         user,
			"access_token": c.Token(),
		})
	},
}

func init() {
	loginCommand.PersistentFlags().String(emailKey, "", "Email address to log in with")
	loginCommand.PersistentFlags().String(passwordKey, "", "Password to log in with")

	viper.AutomaticEnv()

	indexCommand.AddCommand(loginCommand)
}
