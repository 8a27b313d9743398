// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Devpulse - Devpulse turns raw git history dumps and closed-task lists into
structured engineering activity reports: per-commit records, per-day aggregates,
and per-category task tallies.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package gitlog parses raw `git log` dumps into typed commit records.
package gitlog

import "time"

// Commit represents one parsed commit block from a history dump.
// Records are immutable once produced by Parse.
type Commit struct {
	Hash       string
	Author     string
	Date       time.Time
	Title      string
	Insertions int
	Deletions  int
	Diff       string
}

// HasDate reports whether the commit's date string parsed into a calendar date.
// Commits with an unparseable date are still emitted, carrying the zero time as
// a sentinel, and are excluded from day grouping downstream.
func (c Commit) HasDate() bool {
	return !c.Date.IsZero()
}

// Day returns the commit's UTC calendar day at midnight.
// Only meaningful when HasDate is true.
func (c Commit) Day() time.Time {
	d := c.Date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
