package jsonclean

import (
	"strings"
	"testing"
)

func TestScanLinePartition(t *testing.T) {
	// Concatenating the spans of any line must reproduce it exactly
	lines := []string{
		"",
		"{}",
		`{"a": 1, // note`,
		`{"a": "// not a comment"} # trailing`,
		`   # whole line`,
		`'a' "b" // c`,
		`{"a": "unterminated // swallowed`,
		"\t{\"a\":\t1}\t",
		`{"path": "C:\\x"} // win`,
	}

	for _, line := range lines {
		var joined strings.Builder
		for _, s := range scanLine(line) {
			joined.WriteString(s.text)
		}
		if joined.String() != line {
			t.Errorf("scanLine(%q) spans join to %q, want original line", line, joined.String())
		}
	}
}

func TestScanLineClassification(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []span
	}{
		{
			name:  "plain only",
			input: `{1: 2}`,
			want:  []span{{spanPlain, `{1: 2}`}},
		},
		{
			name:  "literal with hash inside",
			input: `"a#b"`,
			want:  []span{{spanLiteral, `"a#b"`}},
		},
		{
			name:  "single quoted literal with slashes",
			input: `'a//b'`,
			want:  []span{{spanLiteral, `'a//b'`}},
		},
		{
			name:  "trailing slash comment",
			input: `1 // c`,
			want:  []span{{spanPlain, `1 `}, {spanComment, `// c`}},
		},
		{
			name:  "trailing hash comment",
			input: `1 # c`,
			want:  []span{{spanPlain, `1 `}, {spanComment, `# c`}},
		},
		{
			// A lone slash is ordinary content, not a comment marker
			name:  "single slash is plain",
			input: `1/2`,
			want:  []span{{spanPlain, `1/2`}},
		},
		{
			// Two separate literals on one line must both be recognized,
			// with the comment between or after them still detected
			name:  "two literals then comment",
			input: `'a' "b" // c`,
			want: []span{
				{spanLiteral, `'a'`},
				{spanPlain, ` `},
				{spanLiteral, `"b"`},
				{spanPlain, ` `},
				{spanComment, `// c`},
			},
		},
		{
			name:  "comment between literals wins",
			input: `"a" # x "b"`,
			want: []span{
				{spanLiteral, `"a"`},
				{spanPlain, ` `},
				{spanComment, `# x "b"`},
			},
		},
		{
			// A quote with no closing mate on the same line does not open a
			// literal, so the later marker still starts a comment
			name:  "unterminated quote",
			input: `"open # c`,
			want: []span{
				{spanPlain, `"open `},
				{spanComment, `# c`},
			},
		},
		{
			name:  "comment at line start",
			input: `// all comment`,
			want:  []span{{spanComment, `// all comment`}},
		},
		{
			name:  "apostrophe inside double quotes",
			input: `"it's" # c`,
			want: []span{
				{spanLiteral, `"it's"`},
				{spanPlain, ` `},
				{spanComment, `# c`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanLine(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("scanLine(%q) = %v spans, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("scanLine(%q) span %d = {%d %q}, want {%d %q}",
						tt.input, i, got[i].kind, got[i].text, tt.want[i].kind, tt.want[i].text)
				}
			}
		})
	}
}

func TestCleanLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no comment untouched",
			input:    `{"a": 1,  "b": 2}`,
			expected: `{"a": 1,  "b": 2}`,
		},
		{
			name:     "trailing comment and separating space removed",
			input:    `{"a": 1, // note`,
			expected: `{"a": 1,`,
		},
		{
			// Tabs before a removed comment are intentional whitespace and
			// must survive; only spaces are trimmed
			name:     "tab before comment preserved",
			input:    "{\"a\": 1,\t# note",
			expected: "{\"a\": 1,\t",
		},
		{
			name:     "comment only line becomes empty",
			input:    `   # note`,
			expected: ``,
		},
		{
			name:     "marker inside literal preserved",
			input:    `"text": "// not a comment //"`,
			expected: `"text": "// not a comment //"`,
		},
		{
			name:     "literal directly before comment",
			input:    `"a"// c`,
			expected: `"a"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanLine(tt.input)
			if result != tt.expected {
				t.Errorf("cleanLine(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWholeLineComment(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{`# comment`, true},
		{`// comment`, true},
		{`   # indented`, true},
		{"\t\t// tab indented", true},
		{`{"a": 1} # trailing`, false},
		{`/ not quite`, false},
		{``, false},
		{`   `, false},
		{`"# in literal"`, false},
	}

	for _, tt := range tests {
		if got := wholeLineComment(tt.input); got != tt.want {
			t.Errorf("wholeLineComment(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
