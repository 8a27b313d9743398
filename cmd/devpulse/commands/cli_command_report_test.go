// SPDX-License-Identifier: AGPL-3.0-or-later
package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHistory = `commit 4f2a9c1d8e7b6a5f4e3d2c1b0a9f8e7d6c5b4a39
Author: Ada Byron <ada@example.com>
Date:   Thu Dec 4 09:15:00 2025 +0100

    Add retry to uploader

 2 files changed, 3 insertions(+), 1 deletion(-)

commit aabbccddeeff00112233445566778899aabbccdd
Author: Grace Murray <grace@example.com>
Date:   Fri Dec 5 11:00:00 2025 +0100

    Update docs
`

// writeFixtures lays out a project dir with a history dump, a closed-tasks
// directory, and a devpulse.yaml pointing at both.
func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	historyPath := filepath.Join(dir, "git.logs")
	require.NoError(t, os.WriteFile(historyPath, []byte(testHistory), 0o600))

	tasksDir := filepath.Join(dir, "closed_tasks")
	require.NoError(t, os.MkdirAll(tasksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tasksDir, "december"),
		[]byte("Fix login bug F\nSet up CI pipeline I\nMisc cleanup\n"), 0o600))

	cfgPath := filepath.Join(dir, "devpulse.yaml")
	cfg := "history: " + historyPath + "\ntasks_dir: " + tasksDir + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	return cfgPath
}

func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd()
	outBuf := bytes.NewBufferString("")
	errBuf := bytes.NewBufferString("")
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestCLICommandReport(t *testing.T) {
	cfgPath := writeFixtures(t)

	stdout, stderr, err := runCommand(t, "report", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "| 2025-12-04 | 3 | 1 | 1 |")
	assert.Contains(t, stdout, "| 2025-12-05 | 0 | 0 | 1 |")
	assert.Contains(t, stdout, "| Frontend | 1 |")
	assert.Contains(t, stdout, "| Backend | 0 |")
	assert.Contains(t, stdout, "line 3: Misc cleanup")

	// The malformed line is also surfaced on stderr, not swallowed.
	assert.Contains(t, stderr, "malformed task line")
}

func TestCLICommandReportToFile(t *testing.T) {
	cfgPath := writeFixtures(t)
	outPath := filepath.Join(t.TempDir(), "report.md")

	_, _, err := runCommand(t, "report", "--config", cfgPath, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Engineering Activity")
}

func TestCLICommandDaily(t *testing.T) {
	cfgPath := writeFixtures(t)

	stdout, _, err := runCommand(t, "daily", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "| Day | Insertions | Deletions | Commits |")
	assert.Contains(t, stdout, "| 2025-12-04 | 3 | 1 | 1 |")
	assert.Contains(t, stdout, "Average insertions per day: 1.50")
}

func TestCLICommandTasks(t *testing.T) {
	cfgPath := writeFixtures(t)

	stdout, _, err := runCommand(t, "tasks", "--config", cfgPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "| Infrastructure | 1 |")
	assert.Contains(t, stdout, "| Frontend | 1 |")
	assert.Contains(t, stdout, "| Backend | 0 |")
}

func TestCLICommandReportMissingHistory(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "devpulse.yaml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("history: "+filepath.Join(dir, "nope.logs")+"\n"), 0o600))

	_, _, err := runCommand(t, "report", "--config", cfgPath)
	assert.Error(t, err)
}
