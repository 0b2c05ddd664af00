package parser

import "strings"

type line struct {
	Number int // 1-based, counts dropped lines too
	Text   string
}

func preprocess(text string) []line {
	text = strings.TrimPrefix(text, "\uFEFF")
	raw := strings.Split(text, "\n")
	lines := make([]line, 0, len(raw))
	for i, l := range raw {
		if idx := strings.Index(l, "//"); idx >= 0 {
			l = l[:idx]
		}
		// Also drops the \r of \r\n endings
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, line{Number: i + 1, Text: l})
	}
	return lines
}
