// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bartekus/devpulse/cmd/devpulse/internal/clierr"
	"github.com/bartekus/devpulse/internal/dailystats"
	"github.com/bartekus/devpulse/internal/gitlog"
	"github.com/bartekus/devpulse/internal/render"
)

// NewDailyCommand prints only the per-day commit statistics table.
func NewDailyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Print per-day commit statistics from the git history dump",
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
				return clierr.Wrap(1, "daily", err)
			}

			commits, err := gitlog.Parse(historyText)
			if err != nil {
				return clierr.Wrap(1, "daily: parsing history", err)
			}

			summary := dailystats.Aggregate(commits)
			if summary.Unattributed > 0 {
				logger.Warn().Int("commits", summary.Unattributed).Msg("commits with unparseable dates excluded from daily grouping")
			}

			rows := make([][]string, 0, len(summary.Days))
			for _, d := range summary.Days {
				rows = append(rows, []string{
					d.Day.Format("2006-01-02"),
					strconv.Itoa(d.Insertions),
					strconv.Itoa(d.Deletions),
					strconv.Itoa(d.Commits),
				})
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, render.Table([]string{"Day", "Insertions", "Deletions", "Commits"}, rows)); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "\nAverage insertions per day: %.2f\nAverage deletions per day: %.2f\n",
				summary.MeanInsertions(), summary.MeanDeletions())
			return err
		},
	}
}
