package match

import (
	"fmt"
	"strings"
)

// Match is one fixture or result row in normalized form. A played match
// carries a Result score string; an upcoming fixture leaves it empty.
type Match struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Venue    string `json:"venue"`
	Result   string `json:"result,omitempty"`
}

// HasResult reports whether the match has been played
func (m *Match) HasResult() bool {
	return m.Result != ""
}

// Summary returns the calendar summary line: "Home vs Away" for a
// fixture, "Home 3-1 Away" once a result is known.
func (m *Match) Summary() string {
	if m.HasResult() {
		return fmt.Sprintf("%s %s %s", m.HomeTeam, m.Result, m.AwayTeam)
	}
	return fmt.Sprintf("%s vs %s", m.HomeTeam, m.AwayTeam)
}

// Key returns a semantic identity for change detection across runs.
// Two rows describing the same kickoff compare equal regardless of
// result or venue edits.
func (m *Match) Key() string {
	return strings.Join([]string{m.Date, m.Time, m.HomeTeam, m.AwayTeam}, "|")
}
