// Package storage persists normalized events as a local JSON snapshot so
// repeated imports and scheduled syncs accumulate instead of overwriting.
//
// The snapshot is keyed by each event's title+date key: re-importing the
// same calendar export is a no-op, while genuinely new events are added.
// The default location is ~/.local/share/ihcc-events/. Real database
// persistence belongs to the application layer consuming this pipeline;
// this package exists so the CLI and the sync scheduler have somewhere
// durable to land results.
package storage
