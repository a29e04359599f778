package jsonclean

import (
	"encoding/json"
	"strings"
)

// Clean returns text with // and # line comments removed. Markers inside
// quoted literals are preserved, comment-free input passes through unchanged,
// and cleaning already-cleaned text is a no-op. A line that held only a
// comment is left as an empty line so the buffer keeps its line structure.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}
	return strings.Join(lines, "\n")
}

// CleanBytes is Clean for byte slices.
func CleanBytes(data []byte) []byte {
	return []byte(Clean(string(data)))
}

// Unmarshal cleans data and decodes the result with encoding/json. Decoder
// behavior, including errors for genuinely malformed JSON, is unchanged
// stdlib behavior.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(CleanBytes(data), v)
}
