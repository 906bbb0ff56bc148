package match

import (
	"html"
	"regexp"
	"strings"

	"github.com/leaguefeeds/leaguecal/internal/logger"
	"github.com/leaguefeeds/leaguecal/internal/scraper"
)

// Placeholder stands in for a date or time half the source row did not
// supply. It never parses as a kickoff, so affected records survive into
// the intermediate record file but drop out of calendar output.
const Placeholder = "N/A"

var (
	brTag  = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTag = regexp.MustCompile(`<[^>]*>`)
)

// Normalize converts one raw table row into a Match using the schema's
// cell mapping. It returns false only when the date/time markup is
// missing entirely; every other field tolerates being empty.
func Normalize(row scraper.RawRow, schema scraper.Schema) (*Match, bool) {
	if strings.TrimSpace(row.DateTimeHTML) == "" {
		logger.Warn("dropping row without date/time markup", logger.Fields{
			"schema": schema.Name,
		})
		logger.IncrCounter("records.dropped")
		return nil, false
	}

	date, kickoff := splitDateTime(row.DateTimeHTML)

	m := &Match{
		Date: date,
		Time: kickoff,
	}

	for idx, field := range schema.Fields {
		if idx >= len(row.Cells) {
			continue
		}
		value := strings.TrimSpace(row.Cells[idx])
		switch field {
		case scraper.FieldHome:
			m.HomeTeam = value
		case scraper.FieldAway:
			m.AwayTeam = value
		case scraper.FieldVenue:
			m.Venue = value
		case scraper.FieldResult:
			// Scores arrive padded ("3 - 1"); collapse to "3-1".
			m.Result = strings.Join(strings.Fields(value), "")
		}
	}

	return m, true
}

// splitDateTime splits the raw "date<br>time" cell markup into its two
// halves. A missing half becomes the Placeholder literal rather than
// failing the row.
func splitDateTime(rawHTML string) (string, string) {
	parts := brTag.Split(rawHTML, 2)

	date := cleanCellText(parts[0])
	kickoff := ""
	if len(parts) > 1 {
		kickoff = cleanCellText(parts[1])
	}

	if date == "" {
		date = Placeholder
	}
	if kickoff == "" {
		kickoff = Placeholder
	}
	return date, kickoff
}

// cleanCellText strips any residual tags and entities from a cell
// fragment and trims it.
func cleanCellText(s string) string {
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}
