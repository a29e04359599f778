// Package jsonclean strips line comments (// and #) from otherwise-JSON text
// so it can be handed to a standard JSON decoder. Comment markers inside
// single- or double-quoted string literals are left alone. Escaped quotes
// inside literals and block comments are not supported.
package jsonclean

import (
	"strings"
)

type spanKind int

const (
	spanPlain spanKind = iota
	spanLiteral
	spanComment
)

// span is one classified stretch of a line. Spans partition the line with no
// gaps and no overlaps: concatenating them in order reproduces it exactly.
type span struct {
	kind spanKind
	text string
}

// scanLine classifies one line (without its terminator) into plain, quoted
// literal, and comment spans, scanning left to right.
//
// A quote opens a literal only if the matching close quote appears later on
// the same line; otherwise the quote is plain and scanning continues past it.
// Comment markers win only outside literals, and a comment always runs to the
// end of the line, so a comment span is always last.
func scanLine(line string) []span {
	var spans []span
	plainStart := 0

	flushPlain := func(end int) {
		if end > plainStart {
			spans = append(spans, span{spanPlain, line[plainStart:end]})
		}
	}

	// Marker and quote characters are ASCII, so byte indexing is safe even
	// when literal contents hold multi-byte runes
	for i := 0; i < len(line); {
		ch := line[i]

		if ch == '"' || ch == '\'' {
			end := strings.IndexByte(line[i+1:], ch)
			if end == -1 {
				// No closing quote on this line; the quote is plain
				i++
				continue
			}
			flushPlain(i)
			spans = append(spans, span{spanLiteral, line[i : i+2+end]})
			i += 2 + end
			plainStart = i
			continue
		}

		if ch == '#' || (ch == '/' && i+1 < len(line) && line[i+1] == '/') {
			flushPlain(i)
			spans = append(spans, span{spanComment, line[i:]})
			return spans
		}

		i++
	}

	flushPlain(len(line))
	return spans
}

// cleanLine removes the comment span, if any, from one line. Spaces that
// separated the retained content from the removed comment are trimmed; a line
// with no comment comes back untouched.
func cleanLine(line string) string {
	spans := scanLine(line)
	last := len(spans) - 1
	if last < 0 || spans[last].kind != spanComment {
		return line
	}

	var cleaned strings.Builder
	for _, s := range spans[:last] {
		cleaned.WriteString(s.text)
	}

	// Only the plain space character is trimmed, never tabs, so tab-indented
	// content next to a removed comment keeps its indentation
	return strings.TrimRight(cleaned.String(), " ")
}

// wholeLineComment reports whether the line's first non-blank characters open
// a comment. The streaming reader drops such lines outright instead of
// scanning them.
func wholeLineComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}
