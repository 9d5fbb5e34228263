package cmd

import (
	"fmt"
	"time"

	"linkctl/pkg/errors"
	"linkctl/pkg/filter"
	"linkctl/pkg/history"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyLimit     int
	historyOlderThan time.Duration
	historyMatch     string
	historyMatchMode string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded copy operations",
	RunE:  runHistoryList,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old history entries",
	RunE:  runHistoryPrune,
}

func openHistory() (*history.Store, error) {
	path, err := history.DefaultPath()
	if err != nil {
		return nil, errors.HistoryError(err)
	}
	store, err := history.Open(path)
	if err != nil {
		return nil, errors.HistoryError(err)
	}
	return store, nil
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	entries, err := store.List(historyLimit)
	if err != nil {
		return errors.HistoryError(err)
	}

	if historyMatch != "" {
		mode, err := filter.ParseMode(historyMatchMode)
		if err != nil {
			return errors.ValidationError(err.Error())
		}
		f, err := filter.NewStringFilter(historyMatch, mode)
		if err != nil {
			return errors.ValidationError(err.Error())
		}
		entries = f.Entries(entries)
	}

	writer := NewOutputWriter(outputFormat)
	if writer.IsStructured() {
		return writer.Write(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No copies recorded yet.")
		return nil
	}

	header := color.New(color.Bold)
	header.Printf("%-12s %-8s %-14s %-20s %s\n", "WHEN", "FORMAT", "METHOD", "LABEL", "URL")
	for _, e := range entries {
		fmt.Printf("%-12s %-8s %-14s %-20s %s\n",
			FormatTimestamp(e.CreatedAt), e.Format, e.Method, e.Label, e.URL)
	}
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close() //nolint:errcheck

	removed, err := store.Prune(historyOlderThan)
	if err != nil {
		return errors.HistoryError(err)
	}

	fmt.Printf("Removed %d entries older than %s\n", removed, historyOlderThan)
	return nil
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to show (0 = all)")
	historyCmd.Flags().StringVar(&historyMatch, "match", "", "Only show entries whose URL or label matches the pattern")
	historyCmd.Flags().StringVar(&historyMatchMode, "match-mode", "contains", "Match mode (exact, contains, regex, fuzzy)")
	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 30*24*time.Hour, "Delete entries older than this")
}
