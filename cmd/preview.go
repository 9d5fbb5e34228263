package cmd

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [url|name]",
	Short: "Show the payload that would be copied",
	Long: `Print the HTML fragment, a markdown rendition of it, and the plain-text
fallback, without touching the clipboard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	_, payload, err := resolvePayload(args)
	if err != nil {
		return err
	}

	writer := NewOutputWriter(outputFormat)
	if writer.IsStructured() {
		return writer.Write(struct {
			URL   string `json:"url" yaml:"url"`
			Label string `json:"label" yaml:"label"`
			HTML  string `json:"html" yaml:"html"`
			Plain string `json:"plain" yaml:"plain"`
		}{payload.URL, payload.Label, payload.HTML, payload.Plain})
	}

	heading := color.New(color.FgCyan, color.Bold)

	heading.Println("HTML")
	fmt.Println(payload.HTML)
	fmt.Println()

	heading.Println("Markdown rendition")
	fmt.Println(htmlToMarkdown(payload.HTML))
	fmt.Println()

	heading.Println("Plain text")
	fmt.Println(payload.Plain)
	return nil
}

// htmlToMarkdown approximates how a markdown-aware paste target would show
// the fragment. Conversion problems just fall back to the raw HTML.
func htmlToMarkdown(html string) string {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)

	markdown, err := conv.ConvertString(html)
	if err != nil {
		return html
	}
	return markdown
}
