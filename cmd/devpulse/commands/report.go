// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Devpulse - Devpulse turns raw git history dumps and closed-task lists into
structured engineering activity reports: per-commit records, per-day aggregates,
and per-category task tallies.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bartekus/devpulse/cmd/devpulse/internal/clierr"
	"github.com/bartekus/devpulse/internal/render"
	"github.com/bartekus/devpulse/internal/report"
)

// NewReportCommand builds the full activity report: daily table, category
// tally, and every recovered anomaly.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the full engineering activity report",
		Long: `Parse the git history dump and the closed-task directory and render the
combined Markdown report: per-day commit statistics, per-category task counts,
and any lines that failed to parse.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			historyText, err := readHistory(cfg.History)
			if err != nil {
				return clierr.Wrap(1, "report", err)
			}

			taskText, err := readTasks(cfg.TasksDir)
			if err != nil {
				if !errors.Is(err, os.ErrNotExist) {
					return clierr.Wrap(1, "report", err)
				}
				// A project without closed-task files still gets the daily table.
				logger.Warn().Str("dir", cfg.TasksDir).Msg("no closed-tasks directory, skipping tally")
			}

			r, err := report.Build(historyText, taskText)
			if err != nil {
				return clierr.Wrap(1, "report", err)
			}
			logAnomalies(logger, r)

			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return clierr.Wrap(2, "report: get output flag", err)
			}
			if output != "" {
				if err := render.AtomicWrite(output, []byte(r.Markdown())); err != nil {
					return clierr.Wrap(1, "report: write output", err)
				}
				return nil
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), r.Markdown())
			return err
		},
	}

	cmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")

	return cmd
}
