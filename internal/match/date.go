package match

import (
	"strconv"
	"strings"
	"time"
)

// ParseKickoff parses the vendor "DD/MM/YY" date and "HH:MM" time pair
// into a UTC instant. Validation is structural only: the date must split
// into three slash-delimited parts and the time into two colon-delimited
// parts, each numeric. Component ranges are not checked against the
// calendar; out-of-range values carry per time.Date's normalization
// rules (a month of 13 rolls into January of the following year).
//
// The two-digit year is interpreted as 2000+YY, so only the years
// 2000 through 2099 are representable.
//
// Returns the zero time and false when either string fails to parse;
// callers skip the record and continue.
func ParseKickoff(date, kickoff string) (time.Time, bool) {
	dateParts := strings.Split(date, "/")
	if len(dateParts) != 3 {
		return time.Time{}, false
	}
	timeParts := strings.Split(kickoff, ":")
	if len(timeParts) != 2 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(dateParts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(dateParts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(dateParts[2]))
	if err != nil {
		return time.Time{}, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(timeParts[0]))
	if err != nil {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(timeParts[1]))
	if err != nil {
		return time.Time{}, false
	}

	// Wall clock equals UTC clock; no locale conversion anywhere.
	return time.Date(2000+year, time.Month(month), day, hour, minute, 0, 0, time.UTC), true
}
