package recipe

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	lineBreaks = regexp.MustCompile(`\n+`)
	stepPrefix = regexp.MustCompile(`^\d+\.\s*`)
)

// parseInstructions splits stored instruction text into ordered steps:
// split on runs of newlines, strip the numbered prefix by pattern, trim,
// drop lines that end up empty. A step whose content itself began with
// "<n>. " loses that prefix here; that is the cost of the storage format
// below, not a defect to compensate for.
func parseInstructions(text string) []string {
	steps := []string{}
	if text == "" {
		return steps
	}
	for _, line := range lineBreaks.Split(text, -1) {
		line = strings.TrimSpace(stepPrefix.ReplaceAllString(line, ""))
		if line != "" {
			steps = append(steps, line)
		}
	}
	return steps
}

// formatInstructions joins steps with newlines, each prefixed with its
// 1-based position and ". ". parseInstructions assumes exactly this shape.
func formatInstructions(steps []string) string {
	lines := make([]string, 0, len(steps))
	for i, step := range steps {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
	}
	return strings.Join(lines, "\n")
}
