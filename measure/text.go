// Package measure sizes terminal text so declared row heights agree with
// what gets drawn.
package measure

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Lines wraps text to width display cells. Explicit newlines are kept.
// A width below 1 disables wrapping.
func Lines(text string, width int) []string {
	if text == "" {
		return []string{""}
	}
	if width < 1 {
		return strings.Split(text, "\n")
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, splitWidth(runewidth.Wrap(line, width), width)...)
	}
	return out
}

// splitWidth hard-breaks wrapped output whose words were wider than width.
func splitWidth(wrapped string, width int) []string {
	var out []string
	for _, line := range strings.Split(wrapped, "\n") {
		for runewidth.StringWidth(line) > width {
			head := runewidth.Truncate(line, width, "")
			if head == "" {
				break
			}
			out = append(out, head)
			line = line[len(head):]
		}
		out = append(out, line)
	}
	return out
}

// Height returns the number of lines text occupies at width.
func Height(text string, width int) int {
	return len(Lines(text, width))
}

// Width returns the display width of s.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
