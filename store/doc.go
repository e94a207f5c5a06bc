// SPDX-License-Identifier: MIT

// Package store persists assembled series in a SQLite database (pure-Go
// driver, no cgo).
//
// Layout: one row per run in "runs" and one row per (run, date, metric) in
// "series_points". Dates are stored as YYYY-MM-DD text, so a loaded series
// compares equal to the one saved.
package store
