// Package classify assigns a category to an event from its title and
// description using ordered keyword rules.
//
// Matching is deliberately literal: case-insensitive substring containment,
// not whole-word matching, evaluated in a fixed priority order with Social as
// the catch-all. This reproduces the club's historical categorization,
// including its known over-matches: "course" inside "of course" counts as
// Golf, and a generic "tournament" lands in Golf because Golf is checked
// before anything else. Rule order is the only thing keeping those collisions
// predictable, so changing it changes category outcomes.
//
// The keyword tables are plain data carried in a Ruleset, injected by the
// caller and optionally loaded from YAML, so club-specific tuning doesn't
// require a rebuild.
package classify
