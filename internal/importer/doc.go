// Package importer turns raw calendar data into normalized events.
//
// It has two layers. The record parser resolves one candidate record,
// whether it came from a CSV row or a scraped HTML fragment, into a single
// normalized event, or rejects it with a reason. The batch importer splits a
// whole delimited-text export into records, runs each through the record
// parser, and reports the surviving events together with per-category counts
// and the number of rejected records.
//
// Rejection is always local: one bad row never aborts a batch. The worst a
// batch can produce is an empty result.
package importer
