package cliutil

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff renders a line-oriented diff of before and after. Unchanged
// lines are prefixed with two spaces, removed lines with "- " and added
// lines with "+ ". Identical inputs produce an empty string.
func LineDiff(before, after string, p Palette) string {
	if before == after {
		return ""
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				sb.WriteString(p.Added("+ %s", line))
			case diffmatchpatch.DiffDelete:
				sb.WriteString(p.Removed("- %s", line))
			default:
				sb.WriteString("  " + line)
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
