// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bartekus/devpulse/cmd/devpulse/internal/clierr"
	"github.com/bartekus/devpulse/internal/config"
	"github.com/bartekus/devpulse/internal/report"
	"github.com/bartekus/devpulse/pkg/logutils"
)

// loadConfig resolves the configuration for a command invocation: the --config
// flag if set, otherwise a devpulse.yaml discovered upward from the working
// directory, otherwise the built-in defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, clierr.Wrap(2, "get config flag", err)
	}

	if path == "" {
		path = config.Find(".")
	}
	if path == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, clierr.Wrap(1, "load config", err)
	}
	return cfg, nil
}

// newLogger builds the command logger from the --log-level flag, writing to
// the command's stderr stream so stdout stays clean for report output.
func newLogger(cmd *cobra.Command) (zerolog.Logger, error) {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return zerolog.Logger{}, clierr.Wrap(2, "get log-level flag", err)
	}

	logger, err := logutils.New(level, cmd.ErrOrStderr())
	if err != nil {
		return zerolog.Logger{}, clierr.Wrapf(2, err, "invalid log level %q", level)
	}
	return logger, nil
}

// readHistory reads the history dump file into memory.
func readHistory(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path chosen by the user
	if err != nil {
		return "", fmt.Errorf("reading history %s: %w", path, err)
	}
	return string(data), nil
}

// readTasks concatenates every file in the closed-tasks directory, in
// lexicographic file order, preserving line order within each file.
func readTasks(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading tasks dir %s: %w", dir, err)
	}

	var parts []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name())) //nolint:gosec // under the user-chosen dir
		if err != nil {
			return "", fmt.Errorf("reading task file %s: %w", entry.Name(), err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}

// logAnomalies surfaces every recovered parse anomaly. Anomalies never abort a
// run, but they are never swallowed either.
func logAnomalies(logger zerolog.Logger, r report.Report) {
	for _, m := range r.MalformedTasks {
		logger.Warn().Int("line", m.Number).Str("text", m.Line).Msg("malformed task line")
	}
	if r.Daily.Unattributed > 0 {
		logger.Warn().Int("commits", r.Daily.Unattributed).Msg("commits with unparseable dates excluded from daily grouping")
	}
}
