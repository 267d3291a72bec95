package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zotmcp/internal/library"
	"zotmcp/internal/zotero"
)

func newSearchCmd() *cobra.Command {
	var qmode string
	var limit int

	c := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the library",
		Long:  `Search for items in the Zotero library and print the result listing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			text, err := svc.Search(cmd.Context(), args[0], zotero.QueryMode(qmode), limit)
			if err != nil {
				return fmt.Errorf("searching items: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	c.Flags().StringVar(&qmode, "qmode", string(zotero.QueryTitleCreatorYear), "Query mode (titleCreatorYear or everything)")
	c.Flags().IntVar(&limit, "limit", library.DefaultSearchLimit, "Maximum number of results")
	return c
}
