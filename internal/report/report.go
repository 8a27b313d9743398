// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Devpulse - Devpulse turns raw git history dumps and closed-task lists into
structured engineering activity reports: per-commit records, per-day aggregates,
and per-category task tallies.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package report composes the parsers and the daily aggregator into the final
// artifacts handed to external consumers. It performs no parsing or
// aggregation of its own.
package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bartekus/devpulse/internal/dailystats"
	"github.com/bartekus/devpulse/internal/gitlog"
	"github.com/bartekus/devpulse/internal/render"
	"github.com/bartekus/devpulse/internal/task"
)

// Report is one complete pass over a history dump and a closed-task list.
type Report struct {
	Commits        []gitlog.Commit
	Tasks          []task.Record
	MalformedTasks []task.MalformedLine
	Daily          dailystats.Summary
	Tally          map[task.Category]int
}

// Estimator is the seam for the future estimation collaborator. It consumes
// the structured records read-only; its results are opaque to this core.
// Implementations are passed in explicitly, never held as process-wide state.
type Estimator interface {
	EstimateTasks(ctx context.Context, tasks []task.Record, days []dailystats.DayStats) (string, error)
}

// Build parses both inputs and aggregates the commit records. Either input may
// be empty. Recovered anomalies (malformed task lines, commits without a
// parseable date) are carried in the Report; only a structurally unrecognizable
// history dump returns an error.
func Build(historyText, taskText string) (Report, error) {
	commits, err := gitlog.Parse(historyText)
	if err != nil {
		return Report{}, fmt.Errorf("parsing history: %w", err)
	}

	tasks, malformed := task.Parse(taskText)

	return Report{
		Commits:        commits,
		Tasks:          tasks,
		MalformedTasks: malformed,
		Daily:          dailystats.Aggregate(commits),
		Tally:          task.Tally(tasks),
	}, nil
}

// Estimate hands the report's records to the collaborator.
func (r Report) Estimate(ctx context.Context, e Estimator) (string, error) {
	return e.EstimateTasks(ctx, r.Tasks, r.Daily.Days)
}

// Markdown renders the report as a deterministic Markdown document: the daily
// table ascending by day, per-day averages, the category tally, and every
// recovered anomaly.
func (r Report) Markdown() string {
	var b strings.Builder

	b.WriteString(render.Header(1, "Engineering Activity"))

	b.WriteString(render.Header(2, "Daily Activity"))
	rows := make([][]string, 0, len(r.Daily.Days))
	for _, d := range r.Daily.Days {
		rows = append(rows, []string{
			d.Day.Format("2006-01-02"),
			strconv.Itoa(d.Insertions),
			strconv.Itoa(d.Deletions),
			strconv.Itoa(d.Commits),
		})
	}
	b.WriteString(render.Table([]string{"Day", "Insertions", "Deletions", "Commits"}, rows))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("- Average insertions per day: %.2f\n", r.Daily.MeanInsertions()))
	b.WriteString(fmt.Sprintf("- Average deletions per day: %.2f\n", r.Daily.MeanDeletions()))
	if r.Daily.Unattributed > 0 {
		b.WriteString(fmt.Sprintf("- Unattributed commits: %d\n", r.Daily.Unattributed))
	}
	b.WriteString("\n")

	b.WriteString(render.Header(2, "Closed Tasks"))
	tallyRows := make([][]string, 0, len(task.Categories()))
	for _, c := range task.Categories() {
		tallyRows = append(tallyRows, []string{string(c), strconv.Itoa(r.Tally[c])})
	}
	b.WriteString(render.Table([]string{"Category", "Tasks"}, tallyRows))

	if len(r.MalformedTasks) > 0 {
		b.WriteString("\n")
		b.WriteString(render.Header(3, "Malformed task lines"))
		items := make([]string, 0, len(r.MalformedTasks))
		for _, m := range r.MalformedTasks {
			items = append(items, fmt.Sprintf("line %d: %s", m.Number, m.Line))
		}
		b.WriteString(render.List(items))
	}

	return b.String()
}
