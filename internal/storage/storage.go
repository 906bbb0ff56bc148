package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leaguefeeds/leaguecal/internal/match"
)

// Storage handles persistence of normalized record files and generated
// calendar files
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir, creating the
// directory if needed. A leading ~/ expands to the home directory.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// recordsPath returns the path to a team's record file
func (s *Storage) recordsPath(team string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%s-records.json", strings.ToLower(team)))
}

// LoadRecords loads a team's previously stored records. A missing file
// yields an empty list, not an error.
func (s *Storage) LoadRecords(team string) ([]*match.Match, error) {
	data, err := os.ReadFile(s.recordsPath(team))
	if err != nil {
		if os.IsNotExist(err) {
			return []*match.Match{}, nil
		}
		return nil, fmt.Errorf("reading records: %w", err)
	}

	var records []*match.Match
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}

	return records, nil
}

// SaveRecords writes a team's records as an indented JSON array, the
// human-readable intermediate form shared between pipeline stages.
func (s *Storage) SaveRecords(team string, records []*match.Match) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}

	if err := os.WriteFile(s.recordsPath(team), data, 0644); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}

	return nil
}

// WriteCalendar writes calendar text to <dir>/<team>.ics and returns the
// written path.
func WriteCalendar(dir, team, ics string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.ics", strings.ToLower(team)))
	if err := os.WriteFile(path, []byte(ics), 0644); err != nil {
		return "", fmt.Errorf("writing calendar: %w", err)
	}

	return path, nil
}
