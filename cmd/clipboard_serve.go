package cmd

import (
	"os"

	"linkctl/pkg/clipboard"

	"github.com/spf13/cobra"
)

var clipboardServeCmd = &cobra.Command{
	Use:    clipboard.ServeCommandName,
	Hidden: true,
	Short:  "Internal: own the clipboard and serve its formats (do not call directly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := clipboard.DecodeEntry(os.Stdin)
		if err != nil {
			return err
		}
		return clipboard.Serve(entry)
	},
}
