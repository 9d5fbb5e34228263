package config

import (
	"os"
	"path/filepath"
	"testing"

	"linkctl/pkg/errors"
	"linkctl/pkg/link"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestLoadFromPath_Success(t *testing.T) {
	path := writeConfig(t, `link:
  url: https://team.example.com/board
  label: Open board
links:
  - name: docs
    url: https://docs.example.com
  - name: status
    url: https://status.example.com
    label: Status page
`)
	t.Setenv("LINKCTL_URL", "")
	t.Setenv("LINKCTL_LABEL", "")

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() failed: %v", err)
	}

	if cfg.Link.URL != "https://team.example.com/board" {
		t.Errorf("Link.URL = %q", cfg.Link.URL)
	}
	if cfg.Link.Label != "Open board" {
		t.Errorf("Link.Label = %q", cfg.Link.Label)
	}
	if len(cfg.Links) != 2 {
		t.Fatalf("len(Links) = %d, want 2", len(cfg.Links))
	}
	if !cfg.HistoryEnabled() {
		t.Error("history should default to enabled")
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("LINKCTL_URL", "")
	t.Setenv("LINKCTL_LABEL", "")
	t.Setenv("LINKCTL_HISTORY", "")

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() failed: %v", err)
	}

	if cfg.Link.URL != link.DefaultURL {
		t.Errorf("Link.URL = %q, want %q", cfg.Link.URL, link.DefaultURL)
	}
	if cfg.Link.Label != link.DefaultLabel {
		t.Errorf("Link.Label = %q, want %q", cfg.Link.Label, link.DefaultLabel)
	}
}

func TestLoadFromPath_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `link:
  url: https://from-file.example.com
`)
	t.Setenv("LINKCTL_URL", "https://from-env.example.com")
	t.Setenv("LINKCTL_LABEL", "Env label")
	t.Setenv("LINKCTL_HISTORY", "false")

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() failed: %v", err)
	}

	if cfg.Link.URL != "https://from-env.example.com" {
		t.Errorf("Link.URL = %q, env override not applied", cfg.Link.URL)
	}
	if cfg.Link.Label != "Env label" {
		t.Errorf("Link.Label = %q, env override not applied", cfg.Link.Label)
	}
	if cfg.HistoryEnabled() {
		t.Error("LINKCTL_HISTORY=false should disable history")
	}
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "link: [not a mapping")

	_, err := loadFromPath(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.IsExitCode(err, errors.ExitCodeConfig) {
		t.Errorf("expected config exit code, got %v", err)
	}
}

func TestLoadFromPath_RejectsDuplicateLinkNames(t *testing.T) {
	path := writeConfig(t, `links:
  - name: docs
    url: https://docs.example.com
  - name: docs
    url: https://other.example.com
`)
	t.Setenv("LINKCTL_URL", "")

	_, err := loadFromPath(path)
	if err == nil {
		t.Fatal("expected duplicate name error")
	}
	if !errors.IsExitCode(err, errors.ExitCodeConfig) {
		t.Errorf("expected config exit code, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	cfg := &Config{
		Link: Link{URL: "https://default.example.com", Label: "Click Me"},
		Links: []Link{
			{Name: "docs", URL: "https://docs.example.com", Label: "Docs"},
		},
	}

	t.Run("empty target yields default", func(t *testing.T) {
		l, err := cfg.Resolve("")
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if l.URL != "https://default.example.com" {
			t.Errorf("URL = %q", l.URL)
		}
	})

	t.Run("raw URL passes through with default label", func(t *testing.T) {
		l, err := cfg.Resolve("https://adhoc.example.com/x")
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if l.URL != "https://adhoc.example.com/x" {
			t.Errorf("URL = %q", l.URL)
		}
		if l.Label != "Click Me" {
			t.Errorf("Label = %q, want default label", l.Label)
		}
	})

	t.Run("named link lookup", func(t *testing.T) {
		l, err := cfg.Resolve("docs")
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if l.URL != "https://docs.example.com" || l.Label != "Docs" {
			t.Errorf("Resolve(docs) = %+v", l)
		}
	})

	t.Run("unknown name fails with suggestion", func(t *testing.T) {
		_, err := cfg.Resolve("nope")
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.IsExitCode(err, errors.ExitCodeValidation) {
			t.Errorf("expected validation exit code, got %v", err)
		}
	})
}
