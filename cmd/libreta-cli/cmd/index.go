package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/adelgado/libreta/pkg/client"
)

var (
	errMissingToken = errors.New("missing token")
)

const (
	verboseKey = "verbose"
	configKey  = "config"
	raddrKey   = "raddr"
	tokenKey   = "token"
)

var (
	log          *slog.Logger
	indexCommand = &cobra.Command{
		Use:   "libreta-cli",
		Short: "CLI to interact with the Libreta REST API",
		Long: `CLI to interact with the Libreta contact management REST API: log in,
inspect the current session and manage the address book from scripts or the
terminal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts := &slog.HandlerOptions{}
			if viper.GetBool(verboseKey) {
				opts.Level = slog.LevelDebug
			}
			log = slog.New(slog.NewJSONHandler(os.Stderr, opts))

			if viper.IsSet(configKey) {
				viper.SetConfigFile(viper.GetString(configKey))

				log.Debug("Config key set, reading from file", "path", viper.GetViper().ConfigFileUsed())

				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			} else {
				configBase := xdg.ConfigHome
				configName := cmd.Root().Use

				viper.SetConfigName(configName)
				viper.AddConfigPath(configBase)

				log.Debug("Config key not set, reading from default location", "path", filepath.Join(configBase, configName))

				if err := viper.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
					return err
				}
			}

			return nil
		},
	}
)

func Execute() error {
	indexCommand.PersistentFlags().BoolP(verboseKey, "v", false, "Whether to enable verbose logging")
	indexCommand.PersistentFlags().StringP(configKey, "c", "", "Config file to use (by default "+indexCommand.Use+".yaml in the XDG config directory is read if it exists)")
	indexCommand.PersistentFlags().StringP(raddrKey, "r", "http://localhost:1337/", "Remote address")

	if err := viper.BindPFlags(indexCommand.PersistentFlags()); err != nil {
		return err
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return indexCommand.Execute()
}

func addAuthFlags(f *pflag.FlagSet) {
	f.String(tokenKey, "", "Bearer token to authenticate with")
}

func createClient(auth bool) (*client.Client, error) {
	c := client.NewClient(
		slog.New(log.Handler().WithGroup("client")),

		viper.GetString(raddrKey),
		nil,

		nil,
	)

	if auth {
		log.Debug("Creating authenticated client")

		if !viper.IsSet(tokenKey) || viper.GetString(tokenKey) == "" {
			log.Debug("Missing token")

			return nil, errMissingToken
		}

		c.SetToken(viper.GetString(tokenKey))
	} else {
		log.Debug("Creating unauthenticated client")
	}

	return c, nil
}
