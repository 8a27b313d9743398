// SPDX-License-Identifier: AGPL-3.0-or-later
package render

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWrite(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "out", "report.md")
	content := []byte("# Daily Activity\n")

	if err := AtomicWrite(target, content); err != nil {
		t.Fatalf("AtomicWrite failed: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(got) != string(content) {
		t.Errorf("got %q, want %q", got, content)
	}
}

func TestTable(t *testing.T) {
	got := Table([]string{"Day", "Commits"}, [][]string{
		{"2025-12-04", "2"},
		{"2025-12-05", "1"},
	})

	want := "| Day | Commits |\n| --- | --- |\n| 2025-12-04 | 2 |\n| 2025-12-05 | 1 |\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHeader(t *testing.T) {
	if got := Header(2, "Tasks"); got != "## Tasks\n\n" {
		t.Errorf("got %q", got)
	}
}
