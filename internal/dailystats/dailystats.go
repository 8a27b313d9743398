// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Devpulse - Devpulse turns raw git history dumps and closed-task lists into
structured engineering activity reports: per-commit records, per-day aggregates,
and per-category task tallies.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package dailystats folds commit records into per-day activity rows.
package dailystats

import (
	"sort"
	"time"

	"github.com/bartekus/devpulse/internal/gitlog"
)

// DayStats is one calendar day's rolled-up commit statistics.
type DayStats struct {
	Day        time.Time
	Insertions int
	Deletions  int
	Commits    int
}

// Summary is the result of one aggregation pass: one row per distinct day
// present in the input, ascending, plus the count of commits that carried the
// unparsed-date sentinel and so could not be attributed to any day.
type Summary struct {
	Days         []DayStats
	Unattributed int
}

// Aggregate groups commits by UTC calendar day and sums their statistics.
// The fold is order-independent: shuffling the input yields the same rows.
// Summaries are always recomputed wholesale, never updated incrementally.
func Aggregate(commits []gitlog.Commit) Summary {
	byDay := make(map[time.Time]*DayStats)
	var unattributed int

	for _, c := range commits {
		if !c.HasDate() {
			unattributed++
			continue
		}
		day := c.Day()
		row, ok := byDay[day]
		if !ok {
			row = &DayStats{Day: day}
			byDay[day] = row
		}
		row.Insertions += c.Insertions
		row.Deletions += c.Deletions
		row.Commits++
	}

	days := make([]DayStats, 0, len(byDay))
	for _, row := range byDay {
		days = append(days, *row)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day.Before(days[j].Day) })

	return Summary{Days: days, Unattributed: unattributed}
}

// MeanInsertions returns the average insertions per aggregated day.
// Zero when the summary has no rows.
func (s Summary) MeanInsertions() float64 {
	return s.mean(func(d DayStats) int { return d.Insertions })
}

// MeanDeletions returns the average deletions per aggregated day.
func (s Summary) MeanDeletions() float64 {
	return s.mean(func(d DayStats) int { return d.Deletions })
}

func (s Summary) mean(field func(DayStats) int) float64 {
	if len(s.Days) == 0 {
		return 0
	}
	var total int
	for _, d := range s.Days {
		total += field(d)
	}
	return float64(total) / float64(len(s.Days))
}
