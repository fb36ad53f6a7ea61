// Package event defines the normalized event record produced by the import
// pipeline, along with the fixed category enumeration and the helpers that
// derive registration URLs and dedupe keys.
//
// An Event is the pipeline's only output unit: every valid CSV row or scraped
// HTML fragment resolves to exactly one Event with a canonical date, a
// canonical time, exactly one category, and a price. Events are handed whole
// to the storage/display collaborators; the pipeline keeps no state between
// batches.
package event
