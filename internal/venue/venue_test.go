package venue

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	m := LocationMap{
		"club a":     "Main Hall",
		"the legion": "Royal British Legion, High Street",
	}

	tests := []struct {
		name     string
		rawVenue string
		want     string
	}{
		{"exact lowercase match", "club a", "Main Hall"},
		{"mixed case match", "Club A", "Main Hall"},
		{"uppercase match", "CLUB A", "Main Hall"},
		{"another alias", "The Legion", "Royal British Legion, High Street"},
		{"miss falls back to raw", "Club B", "Club B"},
		{"no partial matching", "club", "club"},
		{"empty venue stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Resolve(tt.rawVenue); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.rawVenue, got, tt.want)
			}
		})
	}
}

func TestResolve_EmptyMap(t *testing.T) {
	m := LocationMap{}

	if got := m.Resolve("Club A"); got != "Club A" {
		t.Errorf("Resolve() on empty map = %q, want raw venue back", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.json")

	content := `{"club a": "Main Hall", "The Legion": "Royal British Legion"}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := m.Resolve("Club A"); got != "Main Hall" {
		t.Errorf("Resolve(Club A) = %q, want %q", got, "Main Hall")
	}

	// Keys with mixed casing in the file are normalized on load.
	if got := m.Resolve("the legion"); got != "Royal British Legion" {
		t.Errorf("Resolve(the legion) = %q, want %q", got, "Royal British Legion")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() on missing file should not error, got: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("Load() on missing file returned %d entries, want empty map", len(m))
	}
	if got := m.Resolve("Club A"); got != "Club A" {
		t.Errorf("empty map Resolve() = %q, want raw venue back", got)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "locations.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed JSON should error")
	}
}
