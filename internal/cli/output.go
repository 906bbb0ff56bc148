package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/leaguefeeds/leaguecal/internal/match"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// TeamResult summarizes one team's run
type TeamResult struct {
	Team         string         `json:"team"`
	CalendarPath string         `json:"calendar_path"`
	RecordCount  int            `json:"record_count"`
	NewFixtures  []*match.Match `json:"new_fixtures,omitempty"`
}

// OutputResult contains the run summary to be output
type OutputResult struct {
	GeneratedAt     time.Time     `json:"generated_at"`
	Teams           []*TeamResult `json:"teams"`
	EventCount      int           `json:"event_count"`
	NewFixtureCount int           `json:"new_fixture_count"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if len(result.Teams) == 0 {
		fmt.Fprintln(w, "No calendars generated.")
		return nil
	}

	for _, tr := range result.Teams {
		fmt.Fprintf(w, "%s: %d events -> %s\n", tr.Team, tr.RecordCount, tr.CalendarPath)

		if len(tr.NewFixtures) > 0 {
			fmt.Fprintf(w, "  %d new fixture(s):\n", len(tr.NewFixtures))
			for _, m := range tr.NewFixtures {
				fmt.Fprintf(w, "  NEW: %s %s  %s\n", m.Date, m.Time, m.Summary())
				if verbose && m.Venue != "" {
					fmt.Fprintf(w, "       Venue: %s\n", m.Venue)
				}
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d events across %d team(s)\n", result.EventCount, len(result.Teams))
	return nil
}
