// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Devpulse - Devpulse turns raw git history dumps and closed-task lists into
structured engineering activity reports: per-commit records, per-day aggregates,
and per-category task tallies.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package config loads devpulse.yaml, the optional per-project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up by Find.
const FileName = "devpulse.yaml"

// Config is the root configuration.
type Config struct {
	// History is the path to the git history dump.
	History string `yaml:"history"`
	// TasksDir is the directory holding closed-task files, one task per line.
	TasksDir string `yaml:"tasks_dir"`
	// Ollama configures the estimation collaborator.
	Ollama Ollama `yaml:"ollama"`
}

// Ollama holds connection settings for the local ollama daemon used by the
// estimate command.
type Ollama struct {
	Host  string `yaml:"host"`
	Model string `yaml:"model"`
}

// Default returns the configuration used when no devpulse.yaml exists.
func Default() Config {
	return Config{
		History:  "git.logs",
		TasksDir: "closed_tasks",
		Ollama: Ollama{
			Host:  "http://localhost:11434",
			Model: "deepseek-r1:8b",
		},
	}
}

// Load reads the configuration file at path, overlaying it on the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path chosen by the user
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from start looking for devpulse.yaml. It returns the empty
// string when no configuration file exists anywhere above start.
func Find(start string) string {
	dir, err := filepath.Abs(start)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
