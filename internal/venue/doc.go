// Package venue resolves raw venue names from scraped rows into display
// locations via an optional alias file.
package venue
