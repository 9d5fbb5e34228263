package cmd

import (
	"fmt"

	"linkctl/pkg/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage linkctl configuration",
	Long:  `Inspect the linkctl configuration, including the default link and any named links.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		writer := NewOutputWriter(outputFormat)
		if writer.IsStructured() {
			return writer.Write(cfg)
		}

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Default URL:   %s\n", cfg.Link.URL)
		fmt.Printf("Default Label: %s\n", cfg.Link.Label)
		fmt.Printf("History:       %s\n", func() string {
			if cfg.HistoryEnabled() {
				return "enabled"
			}
			return "disabled"
		}())

		if len(cfg.Links) > 0 {
			fmt.Println()
			fmt.Println("Named Links:")
			for _, l := range cfg.Links {
				label := l.Label
				if label == "" {
					label = cfg.Link.Label
				}
				fmt.Printf("  %-15s %s (%s)\n", l.Name, l.URL, label)
			}
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}
