// Package textinput locates a caret inside multi-line formula input.
//
// Offsets count runes, not bytes, and lines are separated by '\n'.
package textinput

import (
	"strings"
	"unicode/utf8"
)

// Position is a caret location.
type Position struct {
	// Offset is the zero-based rune offset into the text.
	Offset int
	// Line is the zero-based index of the line holding the caret.
	Line int
	// Column is the rune offset from the start of that line.
	Column int
}

// Locate returns the position of the caret at rune offset within text.
// Offsets outside the text are clamped to its ends.
func Locate(text string, offset int) Position {
	before := prefix(text, offset)
	pos := Position{Offset: utf8.RuneCountInString(before)}
	pos.Line = strings.Count(before, "\n")
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		before = before[i+1:]
	}
	pos.Column = utf8.RuneCountInString(before)
	return pos
}

// CurrentLine returns the whole line holding the caret, without its
// newline.
func CurrentLine(text string, offset int) string {
	before := prefix(text, offset)
	start := strings.LastIndexByte(before, '\n') + 1
	rest := text[len(before):]
	end := len(text)
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		end = len(before) + i
	}
	return text[start:end]
}

// LinePrefix returns the part of the current line that precedes the
// caret.
func LinePrefix(text string, offset int) string {
	before := prefix(text, offset)
	return before[strings.LastIndexByte(before, '\n')+1:]
}

// prefix returns the text before the clamped rune offset.
func prefix(text string, offset int) string {
	if offset <= 0 {
		return ""
	}
	n := 0
	for i := range text {
		if n == offset {
			return text[:i]
		}
		n++
	}
	return text
}
