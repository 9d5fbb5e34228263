// Package link builds the rich hyperlink payload that gets placed on the
// clipboard: an HTML fragment that renders as a styled button in rich-text
// targets (including Outlook's Word-based renderer) and a plain-text
// fallback that is always exactly the destination URL.
package link

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"linkctl/pkg/errors"
)

const (
	DefaultURL   = "https://example.com"
	DefaultLabel = "Click Me"
)

// Styling shared by both rendering branches. Width and height are fixed
// because the mso branch draws the button with VML, which has no box model.
const (
	buttonWidth  = "200px"
	buttonHeight = "40px"
	buttonColor  = "#0078d4"
	textColor    = "#ffffff"
	fontStyle    = "font-family:sans-serif;font-size:14px;font-weight:bold;"
)

// Payload is the multi-representation content of one copy operation.
// It is built fresh per invocation and never mutated.
type Payload struct {
	URL   string
	Label string
	HTML  string
	Plain string
}

// Build validates rawURL and assembles the payload. Empty inputs take the
// package defaults. Plain is always exactly the validated URL so any
// plain-text paste target receives a working link.
func Build(rawURL, label string) (*Payload, error) {
	if rawURL == "" {
		rawURL = DefaultURL
	}
	if label == "" {
		label = DefaultLabel
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeValidation, fmt.Sprintf("invalid URL %q", rawURL), err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.ValidationError(fmt.Sprintf("URL %q must use http or https", rawURL))
	}
	if u.Host == "" {
		return nil, errors.ValidationError(fmt.Sprintf("URL %q has no host", rawURL))
	}

	target := u.String()
	return &Payload{
		URL:   target,
		Label: label,
		HTML:  renderHTML(target, label),
		Plain: target,
	}, nil
}

// renderHTML emits two conditional branches: a VML roundrect for Outlook's
// Word renderer (the `if mso` branch) and a styled anchor for everything
// else. Rich-text targets pick whichever branch their renderer understands.
func renderHTML(target, label string) string {
	escURL := html.EscapeString(target)
	escLabel := html.EscapeString(label)

	var b strings.Builder
	fmt.Fprintf(&b,
		`<!--[if mso]><v:roundrect xmlns:v="urn:schemas-microsoft-com:vml" xmlns:w="urn:schemas-microsoft-com:office:word" href="%s" style="height:%s;v-text-anchor:middle;width:%s;" arcsize="10%%" strokecolor="%s" fillcolor="%s"><w:anchorlock/><center style="color:%s;%s">%s</center></v:roundrect><![endif]-->`,
		escURL, buttonHeight, buttonWidth, buttonColor, buttonColor, textColor, fontStyle, escLabel)
	fmt.Fprintf(&b,
		`<!--[if !mso]><!--><a href="%s" style="background-color:%s;border:1px solid %s;border-radius:4px;color:%s;display:inline-block;%sline-height:%s;text-align:center;text-decoration:none;width:%s;-webkit-text-size-adjust:none;">%s</a><!--<![endif]-->`,
		escURL, buttonColor, buttonColor, textColor, fontStyle, buttonHeight, buttonWidth, escLabel)
	return b.String()
}
