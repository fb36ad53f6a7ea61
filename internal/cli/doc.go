// Package cli wires the import pipeline into the ihcc-events command.
//
// Subcommands:
//
//	import  parse a calendar export file (or the built-in sample)
//	scrape  fetch and parse the club website's events page
//	sync    run scrape-and-merge once or on a cron schedule
//	list    show stored events, optionally filtered
//	export  render the stored snapshot as iCalendar data, optionally filtered
//
// All commands share --format (text or json), --verbose, and --data-dir.
// Classification rules and price ranges can be overridden per run with
// --rules and --prices; --seed makes default pricing reproducible. These
// exist mostly for testing and club-specific tuning.
package cli
