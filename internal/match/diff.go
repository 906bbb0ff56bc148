package match

import "sort"

// NewMatches returns the matches in current whose semantic key does not
// appear in previous, sorted by date then kickoff for stable output.
// Used to report fixtures that appeared on the source page since the
// last stored record file.
func NewMatches(previous, current []*Match) []*Match {
	seen := make(map[string]bool, len(previous))
	for _, m := range previous {
		seen[m.Key()] = true
	}

	fresh := make([]*Match, 0)
	for _, m := range current {
		if !seen[m.Key()] {
			fresh = append(fresh, m)
		}
	}

	sort.Slice(fresh, func(i, j int) bool {
		ti, okI := ParseKickoff(fresh[i].Date, fresh[i].Time)
		tj, okJ := ParseKickoff(fresh[j].Date, fresh[j].Time)
		if okI && okJ && !ti.Equal(tj) {
			return ti.Before(tj)
		}
		if okI != okJ {
			return okI
		}
		return fresh[i].Key() < fresh[j].Key()
	})

	return fresh
}
