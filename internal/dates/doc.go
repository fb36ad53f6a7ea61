// Package dates converts the date and time strings found in calendar exports
// and scraped pages into canonical forms: dates as "YYYY-MM-DD" and times as
// 24-hour "HH:MM:SS".
//
// The two fields are deliberately asymmetric. A record without a parseable
// date is useless and gets rejected upstream, so date parsing reports
// failure. A record without a parseable time is still a real event, so time
// parsing falls back to DefaultTime instead of failing.
package dates
