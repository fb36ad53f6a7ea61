// Package scraper fetches the club website's events listing and extracts
// candidate event records from its HTML.
//
// The page markup is not stable, so extraction runs an ordered chain of
// strategies: a primary CSS-selector pass over known event containers, then
// a full-text scan over generic elements gated on a date-looking pattern.
// The first strategy that yields any records wins. Extracted records go
// through the same record parser as CSV rows.
//
// The scrape path degrades rather than fails: if the site is unreachable or
// nothing can be extracted, a small fixed set of placeholder events spanning
// every category stands in so downstream screens are never empty.
package scraper
