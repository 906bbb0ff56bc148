package venue

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LocationMap maps a lowercased venue alias to its display location
type LocationMap map[string]string

// Load reads a location map from a JSON object file. A missing file is
// not an error; an empty map is returned so resolution falls back to the
// raw venue strings.
func Load(path string) (LocationMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LocationMap{}, nil
		}
		return nil, fmt.Errorf("reading location map: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing location map: %w", err)
	}

	// Keys are expected lowercase already; normalize anyway so a
	// hand-edited file with mixed casing still resolves.
	m := make(LocationMap, len(raw))
	for alias, display := range raw {
		m[strings.ToLower(alias)] = display
	}
	return m, nil
}

// Resolve maps a raw venue string to its display location. Lookup is
// case-insensitive and exact; on a miss the raw venue is returned
// unchanged.
func (m LocationMap) Resolve(rawVenue string) string {
	if display, ok := m[strings.ToLower(rawVenue)]; ok {
		return display
	}
	return rawVenue
}
