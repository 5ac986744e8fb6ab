package certificate

import "strings"

// wrapText breaks text into lines no wider than maxWidth according to the
// given width measure. Greedy: words accumulate until the next one would
// exceed the budget, then the line is flushed.
func wrapText(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := ""
	for _, word := range words {
		test := line + word + " "
		if line != "" && measure(test) > maxWidth {
			lines = append(lines, strings.TrimSpace(line))
			line = word + " "
			continue
		}
		line = test
	}
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		lines = append(lines, trimmed)
	}
	return lines
}
