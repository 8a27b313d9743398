// SPDX-License-Identifier: AGPL-3.0-or-later
package gitlog

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrNoCommitHeaders indicates that non-empty history text contained no
// recognizable commit header at all, so no records could be extracted.
var ErrNoCommitHeaders = errors.New("gitlog: no commit headers found in input")

const (
	headerPrefix = "commit "
	authorLabel  = "Author:"
	dateLabel    = "Date:"
	mergeLabel   = "Merge:"
)

// Date layouts tried in order. The first is git's default log format.
var dateLayouts = []string{
	"Mon Jan 2 15:04:05 2006 -0700",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02",
}

var (
	summaryRe   = regexp.MustCompile(`^\s*\d+\s+files?\s+changed`)
	insertionRe = regexp.MustCompile(`(\d+)\s+insertions?\(\+\)`)
	deletionRe  = regexp.MustCompile(`(\d+)\s+deletions?\(-\)`)
)

// Parse converts raw history text into commit records, in source order.
//
// Each line is classified as header, metadata, title, numeric summary, or diff
// body. Malformed details degrade locally: a commit block whose date does not
// parse is still emitted with the sentinel date, and a block with no numeric
// summary line keeps zero insertions and deletions. Only input that contains no
// header at all fails, with ErrNoCommitHeaders.
func Parse(text string) ([]Commit, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var (
		commits []Commit
		cur     *Commit
		diff    []string
	)

	flush := func() {
		if cur == nil {
			return
		}
		cur.Diff = strings.Join(diff, "\n")
		commits = append(commits, *cur)
		cur, diff = nil, nil
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case isHeader(line):
			flush()
			cur = &Commit{Hash: strings.Fields(line)[1]}

		case cur == nil:
			// Preamble before the first header is not attributable to any commit.
			continue

		case cur.Title == "" && strings.HasPrefix(line, authorLabel):
			cur.Author = strings.TrimSpace(strings.TrimPrefix(line, authorLabel))

		case cur.Title == "" && strings.HasPrefix(line, dateLabel):
			cur.Date = parseDate(strings.TrimSpace(strings.TrimPrefix(line, dateLabel)))

		case cur.Title == "" && strings.HasPrefix(line, mergeLabel):
			// Merge parent metadata carries no report-relevant data.

		case summaryRe.MatchString(line):
			// Either clause may be absent; only overwrite what is present.
			if m := insertionRe.FindStringSubmatch(line); m != nil {
				cur.Insertions, _ = strconv.Atoi(m[1])
			}
			if m := deletionRe.FindStringSubmatch(line); m != nil {
				cur.Deletions, _ = strconv.Atoi(m[1])
			}

		case cur.Title == "":
			if t := strings.TrimSpace(line); t != "" {
				cur.Title = t
			}

		default:
			diff = append(diff, line)
		}
	}
	flush()

	if len(commits) == 0 {
		return nil, ErrNoCommitHeaders
	}
	return commits, nil
}

// isHeader reports whether the line opens a new commit block: the "commit"
// label followed by a hex object identifier.
func isHeader(line string) bool {
	if !strings.HasPrefix(line, headerPrefix) {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	for _, r := range fields[1] {
		isHex := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
		if !isHex {
			return false
		}
	}
	return true
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
