// Package calendar serializes normalized match records into iCalendar
// (.ics) text suitable for any calendar client.
//
// Each document shares one DTSTAMP across its events, every event runs
// exactly two hours from kickoff, and UIDs are freshly generated per
// call, so regenerating from identical input does not reproduce
// byte-identical output.
package calendar
