package match

import (
	"testing"

	"github.com/leaguefeeds/leaguecal/internal/scraper"
)

func TestNormalize_Fixture(t *testing.T) {
	row := scraper.RawRow{
		Cells:        []string{"", "28/10/25 20:30", "Railway", "-", "Dragons", "Club A"},
		DateTimeHTML: "28/10/25<br>20:30",
	}

	m, ok := Normalize(row, scraper.FixturesSchema)
	if !ok {
		t.Fatal("Normalize() returned ok=false for a valid row")
	}

	want := Match{
		Date:     "28/10/25",
		Time:     "20:30",
		HomeTeam: "Railway",
		AwayTeam: "Dragons",
		Venue:    "Club A",
	}
	if *m != want {
		t.Errorf("Normalize() = %+v, want %+v", *m, want)
	}
	if m.HasResult() {
		t.Error("fixture should not report a result")
	}
}

func TestNormalize_Result(t *testing.T) {
	row := scraper.RawRow{
		Cells:        []string{"14/10/25 20:30", "Railway", "3 - 1", "Dragons", "Club A"},
		DateTimeHTML: "14/10/25<br>20:30",
	}

	m, ok := Normalize(row, scraper.ResultsSchema)
	if !ok {
		t.Fatal("Normalize() returned ok=false for a valid row")
	}

	if m.Result != "3-1" {
		t.Errorf("Result = %q, want %q (internal whitespace stripped)", m.Result, "3-1")
	}
	if !m.HasResult() {
		t.Error("result row should report a result")
	}
}

func TestNormalize_MissingHalvesBecomePlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		dtHTML   string
		wantDate string
		wantTime string
	}{
		{"no line break", "11/11/25", "11/11/25", Placeholder},
		{"empty time half", "11/11/25<br>", "11/11/25", Placeholder},
		{"empty date half", "<br>20:30", Placeholder, "20:30"},
		{"self-closing break", "11/11/25<br/>19:45", "11/11/25", "19:45"},
		{"break with space", "11/11/25<br />19:45", "11/11/25", "19:45"},
		{"uppercase break", "11/11/25<BR>19:45", "11/11/25", "19:45"},
		{"nested markup stripped", "<b>11/11/25</b><br><i>19:45</i>", "11/11/25", "19:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := scraper.RawRow{
				Cells:        []string{"", "", "A", "-", "B", "V"},
				DateTimeHTML: tt.dtHTML,
			}

			m, ok := Normalize(row, scraper.FixturesSchema)
			if !ok {
				t.Fatal("Normalize() returned ok=false; missing halves should not drop the row")
			}
			if m.Date != tt.wantDate {
				t.Errorf("Date = %q, want %q", m.Date, tt.wantDate)
			}
			if m.Time != tt.wantTime {
				t.Errorf("Time = %q, want %q", m.Time, tt.wantTime)
			}
		})
	}
}

func TestNormalize_MissingDateTimeMarkup(t *testing.T) {
	row := scraper.RawRow{
		Cells:        []string{"", "", "A", "-", "B", "V"},
		DateTimeHTML: "   ",
	}

	if _, ok := Normalize(row, scraper.FixturesSchema); ok {
		t.Error("Normalize() should drop a row whose date/time markup is absent")
	}
}

func TestNormalize_TrimsFields(t *testing.T) {
	row := scraper.RawRow{
		Cells:        []string{"", "x", "  Railway  ", "-", " Dragons ", "  Club A "},
		DateTimeHTML: " 28/10/25 <br> 20:30 ",
	}

	m, ok := Normalize(row, scraper.FixturesSchema)
	if !ok {
		t.Fatal("Normalize() returned ok=false")
	}

	if m.HomeTeam != "Railway" || m.AwayTeam != "Dragons" || m.Venue != "Club A" {
		t.Errorf("fields not trimmed: %+v", *m)
	}
	if m.Date != "28/10/25" || m.Time != "20:30" {
		t.Errorf("date/time not trimmed: %q %q", m.Date, m.Time)
	}
}

func TestNormalize_EmptyFieldsAccepted(t *testing.T) {
	row := scraper.RawRow{
		Cells:        []string{"", "x", "", "-", "", ""},
		DateTimeHTML: "28/10/25<br>20:30",
	}

	m, ok := Normalize(row, scraper.FixturesSchema)
	if !ok {
		t.Fatal("Normalize() should accept empty team and venue fields")
	}
	if m.HomeTeam != "" || m.AwayTeam != "" || m.Venue != "" {
		t.Errorf("expected empty fields, got %+v", *m)
	}
}
