package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leaguefeeds/leaguecal/internal/logger"
	"github.com/leaguefeeds/leaguecal/internal/match"
	"github.com/leaguefeeds/leaguecal/internal/venue"
)

// EventDuration is the fixed length of every calendar event
const EventDuration = 2 * time.Hour

// DefaultProdID identifies this generator in the calendar envelope
const DefaultProdID = "-//leaguecal//fixture feed//EN"

// Options controls one Generate call
type Options struct {
	// ProdID overrides DefaultProdID when set.
	ProdID string

	// Description is an optional free-text line added to every event.
	Description string

	// Now is the shared DTSTAMP for every event in the document; the
	// zero value means time.Now in UTC.
	Now time.Time
}

// Event is the calendar-ready form of one match. It is always derived
// from a Match plus a location lookup, never constructed on its own.
type Event struct {
	UID      string
	Summary  string
	Location string
	Stamp    time.Time
	Start    time.Time
	End      time.Time
}

// newEvent derives an Event from a match. Returns false when the match's
// date/time pair does not parse; the caller skips it and keeps going.
func newEvent(m *match.Match, locations venue.LocationMap, stamp time.Time) (*Event, bool) {
	start, ok := match.ParseKickoff(m.Date, m.Time)
	if !ok {
		return nil, false
	}

	return &Event{
		UID:      uuid.NewString(),
		Summary:  m.Summary(),
		Location: locations.Resolve(m.Venue),
		Stamp:    stamp,
		Start:    start,
		End:      start.Add(EventDuration),
	}, true
}

// Generate assembles matches into a complete iCalendar document. Matches
// whose date/time pair fails to parse are logged and omitted; an empty
// input yields an envelope-only document. Line endings are CRLF as the
// format requires.
func Generate(matches []*match.Match, locations venue.LocationMap, opts Options) string {
	prodID := opts.ProdID
	if prodID == "" {
		prodID = DefaultProdID
	}
	stamp := opts.Now
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString(fmt.Sprintf("PRODID:%s\r\n", prodID))
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	for _, m := range matches {
		evt, ok := newEvent(m, locations, stamp)
		if !ok {
			logger.Warn("omitting match with unparseable date/time", logger.Fields{
				"date":    m.Date,
				"time":    m.Time,
				"summary": m.Summary(),
			})
			logger.IncrCounter("events.omitted")
			continue
		}

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s\r\n", evt.UID))
		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(evt.Summary)))
		ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(evt.Location)))
		if opts.Description != "" {
			ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(opts.Description)))
		}
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(evt.Stamp)))
		ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(evt.Start)))
		ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(evt.End)))
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
