package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gopkg.in/yaml.v3"

	"github.com/adelgado/libreta/pkg/client"
)

const (
	queryKey   = "query"
	pageKey    = "page"
	perPageKey = "per-page"
	sortKey    = "sort"
	dirKey     = "dir"
)

var contactListCommand = &cobra.Command{
	Use:     "list",
	Aliases: []string{"lis", "ls", "l"},
	Short:   "List, search and page through contacts",
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

		log.Debug("Listing contacts",
			"query", viper.GetString(queryKey),
			"page", viper.GetInt(pageKey),
			"perPage", viper.GetInt(perPageKey),
			"sort", viper.GetString(sortKey),
			"dir", viper.GetString(dirKey),
		)

		page, err := c.ListContacts(ctx, client.ListContactsOptions{
			Query:   viper.GetString(queryKey),
			Sort:    viper.GetString(sortKey),
			Dir:     viper.GetString(dirKey),
			Page:    viper.GetInt(pageKey),
			PerPage: viper.GetInt(perPageKey),
		})
		if err != nil {
			return err
		}

		log.Debug("Got contacts", "total", page.Total)

		log.Debug("Writing contacts to stdout")

		return yaml.NewEncoder(os.Stdout).Encode(page)
	},
}

func init() {
	addAuthFlags(contactListCommand.PersistentFlags())

	contactListCommand.PersistentFlags().StringP(queryKey, "q", "", "Substring to match against name, email and company")
	contactListCommand.PersistentFlags().Int(pageKey, 1, "Page to fetch")
	contactListCommand.PersistentFlags().Int(perPageKey, 0, "Contacts per page (server default when unset)")
	contactListCommand.PersistentFlags().String(sortKey, "", "Sort column (name or created_at)")
	contactListCommand.PersistentFlags().String(dirKey, "", "Sort direction (asc or desc)")

	viper.AutomaticEnv()

	contactCommand.AddCommand(contactListCommand)
}
