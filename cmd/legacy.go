package cmd

import (
	"linkctl/pkg/clipboard"
	"linkctl/pkg/errors"
	"linkctl/pkg/history"
	"linkctl/pkg/logger"

	"github.com/spf13/cobra"
)

// copy-legacy is deliberately kept alongside copy: it always uses the older
// external-tool technique instead of owning the clipboard, which some
// environments (X11, remote sessions) handle better. Neither command
// supersedes the other.
var copyLegacyCmd = &cobra.Command{
	Use:   "copy-legacy [url|name]",
	Short: "Copy a styled hyperlink via external clipboard tools",
	Long: `Copy the rendered HTML fragment to the clipboard by streaming it to an
external clipboard tool with an HTML target (wl-copy or xclip). Unlike
'copy' there is no plain-text fallback; failures are reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopyLegacy,
}

func runCopyLegacy(cmd *cobra.Command, args []string) error {
	cfg, payload, err := resolvePayload(args)
	if err != nil {
		return err
	}

	ctx, cancel := GetContext()
	defer cancel()

	toolName, err := clipboard.WriteHTMLTool(ctx, payload.HTML)
	if err != nil {
		logger.Error().Err(err).Str("url", payload.URL).Msg("legacy copy failed")
		return errors.ClipboardUnavailableError(err)
	}
	logger.Debug().Str("tool", toolName).Str("url", payload.URL).Msg("legacy copy succeeded")

	notifyStyledCopy()
	recordCopy(cfg, payload, history.FormatHTML, toolName)
	return nil
}
