// Package scraper provides HTTP fetching and HTML table extraction for
// league fixture and result pages.
//
// Pages carry fixtures and results in plain HTML tables whose cell layout
// is fixed per table kind. Extraction is driven by a declarative Schema
// (row selector plus cell-index to field mapping), so supporting a new
// source layout means adding a schema rather than branching the
// extractor. Incomplete rows are skipped with a warning; a missing table
// never aborts a run.
package scraper
