package cliutil

import (
	"strings"

	"golang.org/x/term"
)

const fallbackWidth = 80

// TerminalWidth returns the width of fd if it is a terminal, otherwise
// fallbackWidth. Mirrors the teacher's pkg/cmd/inspect.go use of x/term.
func TerminalWidth(fd int) int {
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}

	return width
}

// WrapText greedily wraps text to width, breaking only on spaces.
func WrapText(text string, width int) string {
	if width < 1 {
		width = fallbackWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder

	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				b.WriteByte('\n')
				lineLen = 0
			} else {
				b.WriteByte(' ')
				lineLen++
			}
		}

		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}
