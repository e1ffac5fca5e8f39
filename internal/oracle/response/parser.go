package response

import (
	"regexp"
	"strings"
)

var (
	// leading labels chat models like to add despite being told not to
	labelRegex       = regexp.MustCompile(`(?i)^\s*(summary|tl;dr)\s*:\s*`)
	inlineSpaceRegex = regexp.MustCompile(`[ \t]+`)
	blankLinesRegex  = regexp.MustCompile(`\n{3,}`)
)

// Clean normalizes decoded model output: drops an echoed instruction prefix
// and a leading "Summary:" label, collapses runs of spaces and blank lines,
// and trims the result. Line breaks are kept so bullet lists survive.
func Clean(text, instruction string) string {
	result := strings.TrimSpace(text)
	if instruction != "" {
		result = strings.TrimSpace(strings.TrimPrefix(result, strings.TrimSpace(instruction)))
	}
	result = labelRegex.ReplaceAllString(result, "")

	lines := strings.Split(result, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpaceRegex.ReplaceAllString(line, " "))
	}
	result = strings.Join(lines, "\n")
	result = blankLinesRegex.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}
