// Package match provides the normalized fixture/result record type and
// the row-to-record conversion logic.
//
// A Match models both an upcoming fixture and a played result (the Result
// score field is empty until a match is played). Normalization splits the
// combined date/time cell on its <br> marker, trims every field, and
// collapses whitespace inside scores. Kickoff parsing is deliberately
// structural: the source's DD/MM/YY format is split and read literally as
// UTC, with no calendar-range validation.
package match
