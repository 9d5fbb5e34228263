package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewOutputWriter_DefaultsToTable(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
	}{
		{"json", FormatJSON},
		{"yaml", FormatYAML},
		{"table", FormatTable},
		{"bogus", FormatTable},
		{"", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w := NewOutputWriter(tt.input)
			if w.GetFormat() != tt.expected {
				t.Errorf("GetFormat() = %q, want %q", w.GetFormat(), tt.expected)
			}
		})
	}
}

func TestOutputWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewOutputWriter("json")
	w.SetWriter(&buf)

	if !w.IsStructured() {
		t.Error("json should be structured")
	}
	data := struct {
		URL string `json:"url"`
	}{URL: "https://example.com"}
	if err := w.Write(data); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"url": "https://example.com"`) {
		t.Errorf("unexpected JSON output: %s", buf.String())
	}
}

func TestOutputWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewOutputWriter("yaml")
	w.SetWriter(&buf)

	data := struct {
		URL string `yaml:"url"`
	}{URL: "https://example.com"}
	if err := w.Write(data); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "url: https://example.com") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}
}

func TestOutputWriter_TableIsNoop(t *testing.T) {
	var buf bytes.Buffer
	w := NewOutputWriter("table")
	w.SetWriter(&buf)

	if w.IsStructured() {
		t.Error("table should not be structured")
	}
	if err := w.Write(struct{}{}); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("table Write should emit nothing, got %q", buf.String())
	}
}

func TestNotificationMessages(t *testing.T) {
	// The fallback wording is fixed; scripts key off it.
	if fallbackCopyMessage != "URL copied as plain text" {
		t.Errorf("fallbackCopyMessage = %q", fallbackCopyMessage)
	}
}
