package scraper

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/leaguefeeds/leaguecal/internal/logger"
)

const (
	DefaultBaseURL = "https://www.leaguefixtures.net/team/%s"
	UserAgent      = "leaguecal/1.0 (github.com/leaguefeeds/leaguecal)"
	Timeout        = 30 * time.Second
)

// RawRow is one table row's cell contents. Cells holds the rendered text
// of every cell; DateTimeHTML holds the raw inner markup of the schema's
// date/time cell so the <br>-separated date and time can be split apart.
type RawRow struct {
	Cells        []string
	DateTimeHTML string
}

// Scraper fetches team fixture/result pages
type Scraper struct {
	client  *http.Client
	baseURL string
}

// New creates a new Scraper. baseURL must contain a single %s placeholder
// for the team slug; an empty string selects DefaultBaseURL.
func New(baseURL string) *Scraper {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: baseURL,
	}
}

// FetchPage fetches the fixtures/results page for one team and returns
// the raw HTML text.
func (s *Scraper) FetchPage(team string) (string, error) {
	url := fmt.Sprintf(s.baseURL, team)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading page body: %w", err)
	}

	return string(body), nil
}

// ExtractRows parses htmlText and returns the raw rows matched by the
// schema's selector. A document with no matching table body yields an
// empty slice with a warning, never an error. Rows with too few cells or
// an absent/empty date/time cell are skipped; later rows still parse.
func ExtractRows(htmlText string, schema Schema) []RawRow {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		// goquery's net/html parser is lenient; an error here means the
		// input was unreadable, which is treated as an empty document.
		logger.Warn("unparseable document", logger.Fields{
			"schema": schema.Name,
			"error":  err.Error(),
		})
		return nil
	}

	rows := make([]RawRow, 0)

	sel := doc.Find(schema.Selector)
	if sel.Length() == 0 {
		logger.Warn("no table rows found", logger.Fields{
			"schema":   schema.Name,
			"selector": schema.Selector,
		})
		return rows
	}

	sel.Each(func(i int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() < schema.MinCells {
			logger.Warn("skipping short row", logger.Fields{
				"schema": schema.Name,
				"row":    i,
				"cells":  tds.Length(),
			})
			logger.IncrCounter("rows.skipped")
			return
		}

		dtHTML, err := tds.Eq(schema.DateTimeIndex).Html()
		if err != nil || strings.TrimSpace(dtHTML) == "" {
			logger.Warn("skipping row without date/time cell", logger.Fields{
				"schema": schema.Name,
				"row":    i,
			})
			logger.IncrCounter("rows.skipped")
			return
		}

		cells := make([]string, tds.Length())
		tds.Each(func(j int, td *goquery.Selection) {
			cells[j] = strings.TrimSpace(td.Text())
		})

		rows = append(rows, RawRow{
			Cells:        cells,
			DateTimeHTML: dtHTML,
		})
	})

	return rows
}
