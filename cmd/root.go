// root.go defines the root command and CLI execution entry point.
//
// Design: every command builds its own service via newService. There is no
// shared process-wide client - construction is cheap (the service is a
// stateless wrapper over an HTTP client) and configuration errors surface on
// the command that needs them rather than at startup of unrelated commands.

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "zotmcp",
	Short: "Zotero reference library over MCP",
	Long: `Expose a Zotero library to LLM agents over the Model Context Protocol,
with direct CLI access to search, item metadata, and full-text reports.

Configuration comes from ZOTERO_LIBRARY_ID, ZOTERO_LIBRARY_TYPE,
ZOTERO_API_KEY and ZOTERO_LOCAL (a .env file and ~/.zotmcp/config.yaml are
also read).`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newItemCmd())
	rootCmd.AddCommand(newFulltextCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command. Exit code 1 indicates error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}
