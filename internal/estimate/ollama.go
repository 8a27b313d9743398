// SPDX-License-Identifier: AGPL-3.0-or-later

// Package estimate implements the estimation collaborator over a local ollama
// daemon. It lives outside the parsing/aggregation core: the core only defines
// the report.Estimator interface and never constructs a client itself.
package estimate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bartekus/devpulse/internal/dailystats"
	"github.com/bartekus/devpulse/internal/task"
)

const systemPrompt = "You are a project manager assistant. " +
	"Based on the closed tasks and the daily commit statistics below, " +
	"estimate the effort behind each task category and flag unfinished work."

// Ollama calls the ollama /api/generate endpoint.
type Ollama struct {
	host   string
	model  string
	client *http.Client
}

// NewOllama creates a client for the given daemon host and model name.
func NewOllama(host, model string) *Ollama {
	return &Ollama{
		host:   strings.TrimRight(host, "/"),
		model:  model,
		client: &http.Client{Timeout: 5 * time.Minute},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// EstimateTasks implements report.Estimator.
func (o *Ollama) EstimateTasks(ctx context.Context, tasks []task.Record, days []dailystats.DayStats) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  o.model,
		Prompt: buildPrompt(tasks, days),
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.host+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return out.Response, nil
}

func buildPrompt(tasks []task.Record, days []dailystats.DayStats) string {
	var b strings.Builder
	b.WriteString(systemPrompt)

	b.WriteString("\n\nClosed tasks:\n")
	for _, t := range tasks {
		fmt.Fprintf(&b, "- [%s] %s\n", t.Category, t.Description)
	}

	b.WriteString("\nDaily commit statistics:\n")
	for _, d := range days {
		fmt.Fprintf(&b, "- %s: %d commits, +%d/-%d lines\n",
			d.Day.Format("2006-01-02"), d.Commits, d.Insertions, d.Deletions)
	}

	return b.String()
}
