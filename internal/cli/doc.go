// Package cli implements the leaguecal command: per-team orchestration
// of the fetch, extract, normalize, and serialize pipeline, plus the run
// summary output in text or JSON form.
//
// Row-level defects never abort a team; a team whose page yields no
// usable records at all is a failure unless --allow-empty is set. Exit
// codes: 0 success, 1 error, 2 success with new fixtures detected.
package cli
