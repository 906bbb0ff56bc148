package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leaguefeeds/leaguecal/internal/calendar"
	"github.com/leaguefeeds/leaguecal/internal/logger"
	"github.com/leaguefeeds/leaguecal/internal/match"
	"github.com/leaguefeeds/leaguecal/internal/scraper"
	"github.com/leaguefeeds/leaguecal/internal/storage"
	"github.com/leaguefeeds/leaguecal/internal/venue"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitNewFixtures = 2
)

// ErrNoRecords signals that a team's page produced no usable records at
// all, as opposed to a legitimately empty calendar. Suppressed by
// --allow-empty.
var ErrNoRecords = errors.New("no records extracted")

var (
	flagTeams       []string
	flagBaseURL     string
	flagResults     bool
	flagLocations   string
	flagOutDir      string
	flagDataDir     string
	flagSaveRecords bool
	flagAllowEmpty  bool
	flagDescription string
	flagFormat      string
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaguecal",
		Short: "Generate iCalendar files from league fixture pages",
		Long: `Scrapes league fixture and result tables for one or more teams and
writes an iCalendar (.ics) file per team, resolving venue aliases to
display locations along the way.`,
		RunE: runGenerate,
	}

	cmd.Flags().StringSliceVar(&flagTeams, "team", nil, "Team page slug (repeatable, required)")
	cmd.Flags().StringVar(&flagBaseURL, "base-url", scraper.DefaultBaseURL, "Team page URL template with a %s placeholder")
	cmd.Flags().BoolVar(&flagResults, "results", false, "Also scrape the played-results table")
	cmd.Flags().StringVar(&flagLocations, "locations", "locations.json", "Venue alias JSON file")
	cmd.Flags().StringVar(&flagOutDir, "out", ".", "Directory for generated .ics files")
	cmd.Flags().StringVar(&flagDataDir, "data-dir", "~/.local/share/leaguecal", "Data directory for record files")
	cmd.Flags().BoolVar(&flagSaveRecords, "save-records", false, "Persist normalized records as indented JSON")
	cmd.Flags().BoolVar(&flagAllowEmpty, "allow-empty", false, "Treat a page with no usable rows as an empty calendar instead of an error")
	cmd.Flags().StringVar(&flagDescription, "description", "", "Free-text description added to every event")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Run summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.MarkFlagRequired("team")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	locations, err := venue.Load(flagLocations)
	if err != nil {
		logger.Warn("location map unavailable, using raw venue names", logger.Fields{
			"path": flagLocations,
		})
		locations = venue.LocationMap{}
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New(flagBaseURL)
	now := time.Now().UTC()

	result := &OutputResult{
		GeneratedAt: now,
	}

	var failed []string
	for _, team := range flagTeams {
		team = strings.ToLower(strings.TrimSpace(team))
		if team == "" {
			continue
		}

		tr, err := processTeam(sc, store, locations, team, now)
		if err != nil {
			logger.Error("team failed", logger.Fields{"team": team}, err)
			failed = append(failed, team)
			continue
		}

		result.Teams = append(result.Teams, tr)
		result.EventCount += tr.RecordCount
		result.NewFixtureCount += len(tr.NewFixtures)
	}

	logger.SetGauge("events.written", float64(result.EventCount))

	if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d team(s) failed: %s", len(failed), strings.Join(failed, ", "))
	}

	if result.NewFixtureCount > 0 {
		os.Exit(ExitNewFixtures)
	}

	return nil
}

// processTeam runs the full pipeline for one team: fetch, extract,
// normalize, diff against stored records, serialize, write.
func processTeam(sc *scraper.Scraper, store *storage.Storage, locations venue.LocationMap, team string, now time.Time) (*TeamResult, error) {
	start := time.Now()
	html, err := sc.FetchPage(team)
	logger.RecordTiming("fetch", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", team, err)
	}

	records := normalizeRows(scraper.ExtractRows(html, scraper.FixturesSchema), scraper.FixturesSchema)
	if flagResults {
		records = append(records, normalizeRows(scraper.ExtractRows(html, scraper.ResultsSchema), scraper.ResultsSchema)...)
	}

	logger.Debug("normalized records", logger.Fields{
		"team":  team,
		"count": len(records),
	})

	if len(records) == 0 && !flagAllowEmpty {
		return nil, fmt.Errorf("%s: %w", team, ErrNoRecords)
	}

	tr := &TeamResult{
		Team:        team,
		RecordCount: len(records),
	}

	if flagSaveRecords {
		previous, err := store.LoadRecords(team)
		if err != nil {
			return nil, fmt.Errorf("loading previous records: %w", err)
		}
		tr.NewFixtures = match.NewMatches(previous, records)

		if err := store.SaveRecords(team, records); err != nil {
			return nil, fmt.Errorf("saving records: %w", err)
		}
	}

	ics := calendar.Generate(records, locations, calendar.Options{
		Description: flagDescription,
		Now:         now,
	})

	path, err := storage.WriteCalendar(flagOutDir, team, ics)
	if err != nil {
		return nil, err
	}
	tr.CalendarPath = path

	return tr, nil
}

// normalizeRows converts raw rows to records, dropping the ones the
// normalizer rejects.
func normalizeRows(rows []scraper.RawRow, schema scraper.Schema) []*match.Match {
	records := make([]*match.Match, 0, len(rows))
	for _, row := range rows {
		if m, ok := match.Normalize(row, schema); ok {
			records = append(records, m)
		}
	}
	return records
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
