package scraper

// Field names a record field that a table cell maps onto.
type Field string

const (
	FieldDateTime Field = "datetime"
	FieldHome     Field = "home_team"
	FieldAway     Field = "away_team"
	FieldVenue    Field = "venue"
	FieldResult   Field = "result"
)

// Schema describes one table layout: which rows to select and which cell
// position holds which record field. Adding a new source layout means
// adding a schema, not branching the extractor.
type Schema struct {
	Name     string
	Selector string
	MinCells int

	// Fields maps a zero-based cell index to the record field it holds.
	Fields map[int]Field

	// DateTimeIndex is the cell whose raw inner markup is preserved so a
	// combined "date<br>time" cell can be split downstream.
	DateTimeIndex int
}

// FixturesSchema matches the upcoming-matches table: a 6-cell row where
// cell 1 holds the combined date/time markup.
var FixturesSchema = Schema{
	Name:     "fixtures",
	Selector: "table:not(.results-table) tbody tr",
	MinCells: 6,
	Fields: map[int]Field{
		1: FieldDateTime,
		2: FieldHome,
		4: FieldAway,
		5: FieldVenue,
	},
	DateTimeIndex: 1,
}

// ResultsSchema matches the played-matches table (marked with the
// results-table class): a 5-cell row with the score inline.
var ResultsSchema = Schema{
	Name:     "results",
	Selector: "table.results-table tbody tr",
	MinCells: 5,
	Fields: map[int]Field{
		0: FieldDateTime,
		1: FieldHome,
		2: FieldResult,
		3: FieldAway,
		4: FieldVenue,
	},
	DateTimeIndex: 0,
}
