package main

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adelgado/libreta/cmd/libreta-tui/ui"
	"github.com/adelgado/libreta/pkg/client"
)

const (
	verboseKey = "verbose"
	configKey  = "config"
	raddrKey   = "raddr"
)

func main() {
	cmd := &cobra.Command{
		Use:   "libreta-tui",
		Short: "Terminal frontend for the Libreta REST API",
		Long: `Terminal frontend for the Libreta contact management REST API: log in and
browse, search, sort, page through, edit and delete your contacts without
leaving the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &slog.HandlerOptions{}
			if viper.GetBool(verboseKey) {
				opts.Level = slog.LevelDebug
			}
			log := slog.New(slog.NewJSONHandler(os.Stderr, opts))

			if viper.IsSet(configKey) {
				viper.SetConfigFile(viper.GetString(configKey))
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			} else {
				viper.SetConfigName(cmd.Use)
				viper.AddConfigPath(xdg.ConfigHome)
				if err := viper.ReadInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
					return err
				}
			}

			// The 401 hook needs the program to inject the forced
			// re-authentication, and the program needs the client.
			var p *tea.Program

			c := client.NewClient(
				slog.New(log.Handler().WithGroup("client")),

				viper.GetString(raddrKey),
				nil,

				func() {
					if p != nil {
						p.Send(ui.AuthExpiredMsg{})
					}
				},
			)

			p = tea.NewProgram(ui.NewModel(c), tea.WithAltScreen())

			_, err := p.Run()

			return err
		},
	}

	cmd.PersistentFlags().BoolP(verboseKey, "v", false, "Whether to enable verbose logging")
	cmd.PersistentFlags().StringP(configKey, "c", "", "Config file to use (by default "+cmd.Use+".yaml in the XDG config directory is read if it exists)")
	cmd.PersistentFlags().StringP(raddrKey, "r", "http://localhost:1337/", "Remote address")

	if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
