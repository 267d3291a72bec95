package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item <item-key>",
		Short: "Show item metadata",
		Long:  `Print the metadata report for a single item, identified by its key.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			text, err := svc.Metadata(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("retrieving item metadata: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}
