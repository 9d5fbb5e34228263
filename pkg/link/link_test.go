package link

import (
	"strings"
	"testing"

	"linkctl/pkg/errors"
)

func TestBuild_Defaults(t *testing.T) {
	p, err := Build("", "")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if p.URL != DefaultURL {
		t.Errorf("URL = %q, want %q", p.URL, DefaultURL)
	}
	if p.Label != DefaultLabel {
		t.Errorf("Label = %q, want %q", p.Label, DefaultLabel)
	}
	if p.Plain != DefaultURL {
		t.Errorf("Plain = %q, want %q", p.Plain, DefaultURL)
	}
}

func TestBuild_PlainEqualsURL(t *testing.T) {
	urls := []string{
		"https://example.com",
		"http://internal.host:8080/path?q=1",
		"https://example.com/a%20b",
	}
	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			p, err := Build(u, "Open")
			if err != nil {
				t.Fatalf("Build(%q) failed: %v", u, err)
			}
			if p.Plain != p.URL {
				t.Errorf("Plain = %q, want %q", p.Plain, p.URL)
			}
		})
	}
}

func TestBuild_HTMLContainsAnchorTarget(t *testing.T) {
	p, err := Build("https://example.com", "Click Me")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if !strings.Contains(p.HTML, `href="https://example.com"`) {
		t.Errorf("HTML does not contain anchor target: %s", p.HTML)
	}
	if !strings.Contains(p.HTML, ">Click Me<") {
		t.Errorf("HTML does not contain the label: %s", p.HTML)
	}
}

func TestBuild_HTMLHasBothRenderingBranches(t *testing.T) {
	p, err := Build("https://example.com", "Click Me")
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if !strings.Contains(p.HTML, "<!--[if mso]>") {
		t.Error("missing mso conditional branch")
	}
	if !strings.Contains(p.HTML, "<!--[if !mso]><!-->") {
		t.Error("missing non-mso branch")
	}
	if !strings.Contains(p.HTML, "v:roundrect") {
		t.Error("mso branch should draw the button with VML")
	}
	if !strings.Contains(p.HTML, "<a href=") {
		t.Error("non-mso branch should be a styled anchor")
	}
}

func TestBuild_EscapesLabelAndURL(t *testing.T) {
	p, err := Build("https://example.com/?a=1&b=2", `<b>`)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if strings.Contains(p.HTML, "<b>") {
		t.Error("label was not escaped")
	}
	if !strings.Contains(p.HTML, "&amp;b=2") {
		t.Error("URL query ampersand was not escaped in markup")
	}
	// The plain representation carries the raw URL, unescaped.
	if p.Plain != "https://example.com/?a=1&b=2" {
		t.Errorf("Plain = %q", p.Plain)
	}
}

func TestBuild_RejectsBadURLs(t *testing.T) {
	tests := []string{
		"ftp://example.com",
		"javascript:alert(1)",
		"https://",
		"://nope",
	}
	for _, u := range tests {
		t.Run(u, func(t *testing.T) {
			_, err := Build(u, "")
			if err == nil {
				t.Fatalf("Build(%q) should fail", u)
			}
			if !errors.IsExitCode(err, errors.ExitCodeValidation) {
				t.Errorf("expected validation exit code, got %v", err)
			}
		})
	}
}
