package clipboard

import (
	"context"
	"errors"

	"linkctl/pkg/logger"

	atotto "github.com/atotto/clipboard"
)

// ErrUnsupported is reported by the multi-format writer when the current
// environment cannot hold more than one clipboard representation at once.
var ErrUnsupported = errors.New("clipboard: multi-format write not supported in this environment")

// Copy methods, as recorded in Result and the copy history.
const (
	MethodMultiFormat = "multi-format"
	MethodPlainText   = "plain-text"
)

// RichWriter places the HTML and plain representations on the clipboard as
// a single multi-format entry.
type RichWriter func(ctx context.Context, html, plain string) error

// PlainWriter places plain text on the clipboard.
type PlainWriter func(ctx context.Context, text string) error

// Result reports which branch a copy operation took.
type Result struct {
	Rich   bool   // both representations reached the clipboard
	Method string // MethodMultiFormat, MethodPlainText, or an external tool name
}

// Copier performs clipboard writes through injected capabilities. The
// clipboard is external shared state, so tests substitute doubles for the
// writers instead of touching the real thing.
type Copier struct {
	rich  RichWriter
	plain PlainWriter
}

// New returns a Copier wired to the platform clipboard.
func New() *Copier {
	return &Copier{rich: WriteMultiFormat, plain: writePlain}
}

// NewWithWriters returns a Copier with substituted write capabilities.
func NewWithWriters(rich RichWriter, plain PlainWriter) *Copier {
	return &Copier{rich: rich, plain: plain}
}

// CopyFormatted attempts the atomic multi-format write and falls back to
// plain text when the environment cannot take it. The outcome is an
// explicit two-branch result rather than error control flow; an error is
// returned only when the plain-text fallback fails as well.
func (c *Copier) CopyFormatted(ctx context.Context, html, plain string) (Result, error) {
	err := c.rich(ctx, html, plain)
	if err == nil {
		return Result{Rich: true, Method: MethodMultiFormat}, nil
	}
	logger.Debug().Err(err).Msg("multi-format write unavailable, falling back to plain text")

	if err := c.plain(ctx, plain); err != nil {
		return Result{}, err
	}
	return Result{Rich: false, Method: MethodPlainText}, nil
}

// writePlain tries the cross-platform clipboard library first, then the
// external tools.
func writePlain(ctx context.Context, text string) error {
	if !atotto.Unsupported {
		if err := atotto.WriteAll(text); err == nil {
			return nil
		}
	}
	return WriteTextTool(ctx, text)
}
