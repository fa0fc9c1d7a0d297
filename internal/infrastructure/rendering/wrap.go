package rendering

import "strings"

const lineHeightFactor = 1.2

// WrapText greedily packs space separated words into lines no wider than maxWidth.
// A single word wider than maxWidth is emitted alone, unsplit.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	line := ""
	for _, word := range strings.Split(text, " ") {
		candidate := line + word + " "
		if measure(candidate) > maxWidth && line != "" {
			lines = append(lines, strings.TrimRight(line, " "))
			line = word + " "
			continue
		}
		line = candidate
	}
	if trimmed := strings.TrimRight(line, " "); trimmed != "" {
		lines = append(lines, trimmed)
	}
	return lines
}

func lineAdvance(fontSize float64) float64 {
	return fontSize * lineHeightFactor
}
