// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Devpulse - Devpulse turns raw git history dumps and closed-task lists into
structured engineering activity reports: per-commit records, per-day aggregates,
and per-category task tallies.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package task parses closed-task lists into typed, categorized records.
package task

// Category is the work area a closed task belongs to, derived from the
// single-letter marker trailing each task line.
type Category string

const (
	Infrastructure Category = "Infrastructure"
	Frontend       Category = "Frontend"
	Backend        Category = "Backend"
)

// markers maps trailing category letters to categories.
var markers = map[rune]Category{
	'I': Infrastructure,
	'F': Frontend,
	'B': Backend,
}

// Categories lists all known categories in stable order.
func Categories() []Category {
	return []Category{Infrastructure, Frontend, Backend}
}

// Record is one successfully parsed closed-task line.
type Record struct {
	Description string
	Category    Category
}

// MalformedLine records a non-blank task line whose trailing character is not a
// known category marker. Malformed lines are excluded from the record sequence
// but always reported, never silently dropped.
type MalformedLine struct {
	Line   string
	Number int
}
