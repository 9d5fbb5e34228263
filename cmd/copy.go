package cmd

import (
	"linkctl/pkg/clipboard"
	"linkctl/pkg/config"
	"linkctl/pkg/errors"
	"linkctl/pkg/history"
	"linkctl/pkg/link"
	"linkctl/pkg/logger"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy [url|name]",
	Short: "Copy a formatted hyperlink to the clipboard",
	Long: `Copy a styled hyperlink to the clipboard as a multi-format entry holding
both text/html and text/plain. Rich-text paste targets render a styled
button; plain-text targets receive the bare URL. If the multi-format write
is unavailable the URL is copied as plain text instead.

The argument may be a URL or the name of a link from the config file; with
no argument the configured default link is copied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, payload, err := resolvePayload(args)
	if err != nil {
		return err
	}

	ctx, cancel := GetContext()
	defer cancel()

	res, err := clipboard.New().CopyFormatted(ctx, payload.HTML, payload.Plain)
	if err != nil {
		return errors.ClipboardUnavailableError(err)
	}

	if res.Rich {
		notifyRichCopy()
	} else {
		notifyFallbackCopy()
	}

	format := history.FormatRich
	if !res.Rich {
		format = history.FormatPlain
	}
	recordCopy(cfg, payload, format, res.Method)
	return nil
}

// resolvePayload loads config, resolves the copy target, and builds the
// payload for it.
func resolvePayload(args []string) (*config.Config, *link.Payload, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	l, err := cfg.Resolve(target)
	if err != nil {
		return nil, nil, err
	}

	payload, err := link.Build(l.URL, l.Label)
	if err != nil {
		return nil, nil, err
	}
	return cfg, payload, nil
}

// recordCopy appends the copy to the history log. History problems are
// logged, never surfaced: the copy already happened.
func recordCopy(cfg *config.Config, payload *link.Payload, format, method string) {
	if !cfg.HistoryEnabled() {
		return
	}

	path, err := history.DefaultPath()
	if err != nil {
		logger.Warn().Err(err).Msg("could not locate history database")
		return
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn().Err(err).Msg("could not open history database")
		return
	}
	defer store.Close() //nolint:errcheck

	err = store.Record(history.Entry{
		URL:    payload.URL,
		Label:  payload.Label,
		Format: format,
		Method: method,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("could not record copy in history")
	}
}
