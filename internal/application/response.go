package application

import (
	"fmt"
	"strings"
)

// ClampRead caps file content at max characters, marking the cut.
func ClampRead(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + fmt.Sprintf("\n...(truncated to %d chars)", max)
}

// TruncateResponse caps a tool response at max characters and reports how
// much of the content survived, steering callers toward line-ranged views.
func TruncateResponse(text string, max int) string {
	if len(text) <= max {
		return text
	}

	totalLines := strings.Count(text, "\n") + 1
	shownLines := strings.Count(text[:max], "\n") + 1
	return text[:max] +
		fmt.Sprintf("\n...(truncated to %d chars, showing ~%d/%d lines)\n", max, shownLines, totalLines) +
		"Tip: use start_line/end_line to view specific sections of large files."
}

// SliceLines returns the 0-based inclusive line range [start, end] of
// content. Negative bounds mean "unset". Out-of-range bounds clamp; an
// empty range yields an empty string.
func SliceLines(content string, start, end int) string {
	if start < 0 && end < 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	if start < 0 {
		start = 0
	}
	if end < 0 || end >= len(lines) {
		end = len(lines) - 1
	}
	if start >= len(lines) || start > end {
		return ""
	}
	return strings.Join(lines[start:end+1], "\n")
}

// LargeFileNote returns a warning when content exceeds threshold, or the
// empty string. Write tools append it so callers learn to page through
// big files instead of re-reading them whole.
func LargeFileNote(content string, threshold int) string {
	if len(content) <= threshold {
		return ""
	}
	lines := strings.Count(content, "\n") + 1
	return fmt.Sprintf(
		"WARNING: large file (%d chars, ~%d lines). Use start_line/end_line when viewing to avoid truncation.",
		len(content), lines)
}
