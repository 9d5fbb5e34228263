package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"linkctl/pkg/logger"
)

// Known clipboard tools, probed in order. wl-copy and xclip accept an
// explicit MIME target, so only they can carry the text/html
// representation; the rest take plain text on stdin.
type tool struct {
	name     string
	htmlArgs []string
	textArgs []string
}

var tools = []tool{
	{name: "wl-copy", htmlArgs: []string{"--type", "text/html"}},
	{name: "xclip", htmlArgs: []string{"-selection", "clipboard", "-t", "text/html", "-in"}, textArgs: []string{"-selection", "clipboard", "-in"}},
	{name: "xsel", textArgs: []string{"--clipboard", "--input"}},
	{name: "pbcopy"},
	{name: "clip"},
}

func (t tool) supportsHTML() bool {
	return t.htmlArgs != nil
}

// write streams data to the tool on stdin. The child process and its pipe
// are released on every path; CommandContext kills the tool if the caller's
// deadline expires.
func (t tool) write(ctx context.Context, data string, asHTML bool) error {
	args := t.textArgs
	if asHTML {
		args = t.htmlArgs
	}
	cmd := exec.CommandContext(ctx, t.name, args...)
	cmd.Stdin = strings.NewReader(data)
	return cmd.Run()
}

// WriteTextTool copies plain text via the first available external tool.
func WriteTextTool(ctx context.Context, text string) error {
	for _, t := range tools {
		if _, err := exec.LookPath(t.name); err != nil {
			continue
		}
		if err := t.write(ctx, text, false); err != nil {
			logger.Debug().Err(err).Str("tool", t.name).Msg("clipboard tool failed")
			continue
		}
		logger.Debug().Str("tool", t.name).Msg("copied plain text via external tool")
		return nil
	}
	return fmt.Errorf("no clipboard tool found (tried wl-copy, xclip, xsel, pbcopy, clip)")
}

// WriteHTMLTool copies the rendered HTML fragment via the first tool with
// an HTML target and returns that tool's name. This is the legacy copy
// technique: the paste target receives styled content, not raw markup.
func WriteHTMLTool(ctx context.Context, html string) (string, error) {
	for _, t := range tools {
		if !t.supportsHTML() {
			continue
		}
		if _, err := exec.LookPath(t.name); err != nil {
			continue
		}
		if err := t.write(ctx, html, true); err != nil {
			logger.Debug().Err(err).Str("tool", t.name).Msg("clipboard tool failed")
			continue
		}
		return t.name, nil
	}
	return "", fmt.Errorf("no clipboard tool with an HTML target found (tried wl-copy, xclip)")
}
