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
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the Devpulse root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("DEVPULSE_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "devpulse",
		Short:         "Devpulse - engineering activity reports from git history and closed tasks",
		Long:          "Devpulse parses git history dumps and closed-task lists into per-day commit statistics and per-category task tallies.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().String("config", "", "path to devpulse.yaml (default: discovered upward from the working directory)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Devpulse",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Devpulse version %s\n", version)
		},
	})

	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewDailyCommand())
	cmd.AddCommand(NewTasksCommand())
	cmd.AddCommand(NewEstimateCommand())

	return cmd
}
