package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	v1 "github.com/adelgado/libreta/api/rest/v1"
	"github.com/adelgado/libreta/pkg/authn"
	"github.com/adelgado/libreta/pkg/controllers"
	"github.com/adelgado/libreta/pkg/persisters"
)

var (
	errMissingName     = errors.New("missing name")
	errMissingEmail    = errors.New("missing email")
	errMissingPassword = errors.New("missing password")
)

const (
	verboseKey     = "verbose"
	configKey      = "config"
	laddrKey       = "laddr"
	pgaddrKey      = "pgaddr"
	corsOriginsKey = "cors-origins"

	nameKey     = "name"
	emailKey    = "email"
	passwordKey = "password"
)

func newLogger() *slog.Logger {
	opts := &slog.HandlerOptions{}
	if viper.GetBool(verboseKey) {
		opts.Level = slog.LevelDebug
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}

func readConfig(name string) error {
	if viper.IsSet(configKey) {
		viper.SetConfigFile(viper.GetString(configKey))

		return viper.ReadInConfig()
	}

	viper.SetConfigName(name)
	viper.AddConfigPath(xdg.ConfigHome)
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return err
	}

	return nil
}

func main() {
	cmd := &cobra.Command{
		Use:   "libreta-rest",
		Short: "Contact management REST API using the Go stdlib and PostgreSQL",
		Long: `REST API for a small contact management application built with the Go
standard library and PostgreSQL data storage. Users authenticate with opaque
bearer tokens and manage their own searchable, paginated address books.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			log := newLogger()

			if err := readConfig(cmd.Use); err != nil {
				return err
			}

			if v := os.Getenv("PORT"); v != "" {
				log.Info("Using port from PORT env variable")

				la, err := net.ResolveTCPAddr("tcp", viper.GetString(laddrKey))
				if err != nil {
					return err
				}

				p, err := strconv.Atoi(v)
				if err != nil {
					return err
				}

				la.Port = p

				viper.Set(laddrKey, la.String())
			}

			p := persisters.NewPersister(slog.New(log.Handler().WithGroup("persister")), viper.GetString(pgaddrKey))

			if err := p.Init(ctx); err != nil {
				return err
			}

			a := authn.NewAuthner(slog.New(log.Handler().WithGroup("authner")), p)

			c := controllers.NewController(
				slog.New(log.Handler().WithGroup("controller")),

				p,
				a,
			)

			log.Info("Listening", "laddr", viper.GetString(laddrKey))

			panic(http.ListenAndServe(viper.GetString(laddrKey), v1.Handler(
				ctx,
				slog.New(log.Handler().WithGroup("handler")),
				c,
				viper.GetStringSlice(corsOriginsKey),
			)))
		},
	}

	createUserCmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account (accounts are provisioned out of band)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			log := newLogger()

			if err := readConfig(cmd.Root().Use); err != nil {
				return err
			}

			if !viper.IsSet(nameKey) {
				return errMissingName
			}

			if !viper.IsSet(emailKey) {
				return errMissingEmail
			}

			if !viper.IsSet(passwordKey) {
				return errMissingPassword
			}

			p := persisters.NewPersister(slog.New(log.Handler().WithGroup("persister")), viper.GetString(pgaddrKey))

			if err := p.Init(ctx); err != nil {
				return err
			}

			hash, err := authn.HashPassword(viper.GetString(passwordKey))
			if err != nil {
				return err
			}

			user, err := p.CreateUser(ctx, viper.GetString(nameKey), viper.GetString(emailKey), hash)
			if err != nil {
				return err
			}

			log.Info("Created user", "id", user.ID, "email", user.Email)

			return yaml.NewEncoder(os.Stdout).Encode(map[string]any{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			})
		},
	}

	createUserCmd.PersistentFlags().String(nameKey, "", "Display name for the user")
	createUserCmd.PersistentFlags().String(emailKey, "", "Email address the user logs in with")
	createUserCmd.PersistentFlags().String(passwordKey, "", "Password for the user")

	cmd.AddCommand(createUserCmd)

	cmd.PersistentFlags().BoolP(verboseKey, "v", false, "Whether to enable verbose logging")
	cmd.PersistentFlags().StringP(configKey, "c", "", "Config file to use (by default "+cmd.Use+".yaml in the XDG config directory is read if it exists)")
	cmd.PersistentFlags().StringP(laddrKey, "l", ":1337", "Listen address (port can also be set with `PORT` env variable)")
	cmd.PersistentFlags().StringP(pgaddrKey, "p", "postgresql://postgres@localhost:5432/libreta?sslmode=disable", "Database address")
	cmd.PersistentFlags().StringArray(corsOriginsKey, []string{}, "CORS origins to allow")

	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
