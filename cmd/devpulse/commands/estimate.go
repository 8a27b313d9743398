// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/devpulse/cmd/devpulse/internal/clierr"
	"github.com/bartekus/devpulse/internal/estimate"
	"github.com/bartekus/devpulse/internal/report"
)

// NewEstimateCommand hands the parsed records to the ollama collaborator and
// prints its free-form estimation.
func NewEstimateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Ask the configured ollama model to estimate effort behind the records",
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
				return clierr.Wrap(1, "estimate", err)
			}
			taskText, err := readTasks(cfg.TasksDir)
			if err != nil {
				return clierr.Wrap(1, "estimate", err)
			}

			r, err := report.Build(historyText, taskText)
			if err != nil {
				return clierr.Wrap(1, "estimate", err)
			}
			logAnomalies(logger, r)

			model, err := cmd.Flags().GetString("model")
			if err != nil {
				return clierr.Wrap(2, "estimate: get model flag", err)
			}
			if model == "" {
				model = cfg.Ollama.Model
			}

			logger.Info().Str("model", model).Str("host", cfg.Ollama.Host).Msg("requesting estimation")
			out, err := r.Estimate(cmd.Context(), estimate.NewOllama(cfg.Ollama.Host, model))
			if err != nil {
				return clierr.Wrap(1, "estimate", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().String("model", "", "ollama model name (default: from config)")

	return cmd
}
