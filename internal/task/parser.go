// SPDX-License-Identifier: AGPL-3.0-or-later
package task

import "strings"

// Separator runes tolerated between the description and the trailing marker,
// e.g. "Fix login bug - F" or "Set up CI: I".
const separators = " \t-:,;."

// Parse converts raw task-list text, one task per line, into records in source
// order. Blank lines are skipped. Non-blank lines without a valid trailing
// marker are returned as malformed, with 1-based line numbers.
func Parse(text string) ([]Record, []MalformedLine) {
	var (
		records   []Record
		malformed []MalformedLine
	)

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		runes := []rune(trimmed)
		category, ok := markers[runes[len(runes)-1]]
		if !ok {
			malformed = append(malformed, MalformedLine{Line: trimmed, Number: i + 1})
			continue
		}

		desc := strings.TrimRight(string(runes[:len(runes)-1]), separators)
		records = append(records, Record{Description: desc, Category: category})
	}

	return records, malformed
}

// Tally counts records per category. Every known category is present in the
// result, zero-valued when unseen.
func Tally(records []Record) map[Category]int {
	tally := make(map[Category]int, len(markers))
	for _, c := range Categories() {
		tally[c] = 0
	}
	for _, r := range records {
		tally[r.Category]++
	}
	return tally
}
