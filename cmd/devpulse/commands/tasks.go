// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bartekus/devpulse/cmd/devpulse/internal/clierr"
	"github.com/bartekus/devpulse/internal/render"
	"github.com/bartekus/devpulse/internal/task"
)

// NewTasksCommand prints the per-category closed-task tally.
func NewTasksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "Print the per-category tally of closed tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			taskText, err := readTasks(cfg.TasksDir)
			if err != nil {
				return clierr.Wrap(1, "tasks", err)
			}

			records, malformed := task.Parse(taskText)
			for _, m := range malformed {
				logger.Warn().Int("line", m.Number).Str("text", m.Line).Msg("malformed task line")
			}

			tally := task.Tally(records)
			rows := make([][]string, 0, len(task.Categories()))
			for _, c := range task.Categories() {
				rows = append(rows, []string{string(c), strconv.Itoa(tally[c])})
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), render.Table([]string{"Category", "Tasks"}, rows))
			return err
		},
	}
}
