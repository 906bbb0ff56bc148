// Package storage persists normalized match records between runs and
// writes generated .ics files. Record files are indented JSON so they
// stay hand-inspectable when a row normalizes oddly.
package storage
