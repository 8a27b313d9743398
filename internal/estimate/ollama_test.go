// SPDX-License-Identifier: AGPL-3.0-or-later
package estimate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/devpulse/internal/dailystats"
	"github.com/bartekus/devpulse/internal/task"
)

func TestEstimateTasks(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "roughly two weeks"})
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "deepseek-r1:8b")

	tasks := []task.Record{{Description: "Build auth service", Category: task.Backend}}
	days := []dailystats.DayStats{{
		Day:        time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC),
		Insertions: 13,
		Deletions:  3,
		Commits:    2,
	}}

	out, err := o.EstimateTasks(context.Background(), tasks, days)
	require.NoError(t, err)
	assert.Equal(t, "roughly two weeks", out)

	assert.Equal(t, "deepseek-r1:8b", got.Model)
	assert.False(t, got.Stream)
	assert.Contains(t, got.Prompt, "[Backend] Build auth service")
	assert.Contains(t, got.Prompt, "2025-12-04: 2 commits, +13/-3 lines")
}

func TestEstimateTasksServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	o := NewOllama(srv.URL, "missing")
	_, err := o.EstimateTasks(context.Background(), nil, nil)
	assert.Error(t, err)
}
