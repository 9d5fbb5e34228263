package cmd

import "github.com/spf13/cobra"

func RegisterCommands(root *cobra.Command) {
	root.AddCommand(versionCmd)
	root.AddCommand(clipboardServeCmd)

	root.AddCommand(copyCmd)
	root.AddCommand(copyLegacyCmd)
	root.AddCommand(previewCmd)
	root.AddCommand(historyCmd)
	root.AddCommand(configCmd)

	historyCmd.AddCommand(historyPruneCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}
