package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)

	entries := []Entry{
		{URL: "https://example.com", Label: "Click Me", Format: FormatRich, Method: "multi-format"},
		{URL: "https://docs.example.com", Label: "Docs", Format: FormatPlain, Method: "plain-text"},
		{URL: "https://status.example.com", Label: "Status", Format: FormatHTML, Method: "xclip"},
	}
	for i, e := range entries {
		e.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		if err := s.Record(e); err != nil {
			t.Fatalf("Record(%d) failed: %v", i, err)
		}
	}

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len(List()) = %d, want 3", len(got))
	}

	// Newest first.
	if got[0].URL != "https://status.example.com" {
		t.Errorf("List()[0].URL = %q, want newest entry", got[0].URL)
	}
	if got[0].ID == "" {
		t.Error("Record should assign an ID")
	}
	if got[0].Format != FormatHTML || got[0].Method != "xclip" {
		t.Errorf("List()[0] = %+v", got[0])
	}
}

func TestList_Limit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		e := Entry{
			URL:       "https://example.com",
			Label:     "Click Me",
			Format:    FormatRich,
			Method:    "multi-format",
			CreatedAt: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := s.Record(e); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}

	got, err := s.List(2)
	if err != nil {
		t.Fatalf("List(2) failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("len(List(2)) = %d, want 2", len(got))
	}
}

func TestPrune(t *testing.T) {
	s := openTestStore(t)

	old := Entry{
		URL:       "https://example.com/old",
		Label:     "Old",
		Format:    FormatPlain,
		Method:    "plain-text",
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}
	fresh := Entry{
		URL:    "https://example.com/fresh",
		Label:  "Fresh",
		Format: FormatRich,
		Method: "multi-format",
	}
	if err := s.Record(old); err != nil {
		t.Fatalf("Record(old) failed: %v", err)
	}
	if err := s.Record(fresh); err != nil {
		t.Fatalf("Record(fresh) failed: %v", err)
	}

	removed, err := s.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Prune() removed %d, want 1", removed)
	}

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(got) != 1 || got[0].URL != "https://example.com/fresh" {
		t.Errorf("List() after prune = %+v", got)
	}
}
