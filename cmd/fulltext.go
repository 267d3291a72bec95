package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFulltextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fulltext <item-key>",
		Short: "Show item full text",
		Long: `Print the full-text report for an item: its metadata block followed by
the extracted text of the best available attachment (PDFs preferred, then
HTML snapshots).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			text, err := svc.Fulltext(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieving item full text: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
