package strip

import "testing"

func TestComments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no comments",
			content: "## Title\n\nPlain text.\n",
			want:    "## Title\n\nPlain text.\n",
		},
		{
			name:    "html comment inline",
			content: "Before <!-- hidden --> after",
			want:    "Before  after",
		},
		{
			name:    "html comment spanning lines",
			content: "<!--\n  markdownlint-disable\n-->\n## Security Policy\n",
			want:    "\n## Security Policy\n",
		},
		{
			name:    "block comment",
			content: "a /* note */b",
			want:    "a b",
		},
		{
			name:    "unterminated comment runs to end",
			content: "keep <!-- never closed\nstill hidden",
			want:    "keep ",
		},
		{
			name:    "line comments are kept",
			content: "See https://example.com // for details",
			want:    "See https://example.com // for details",
		},
		{
			name:    "fenced code block untouched",
			content: "```html\n<!-- inside -->\n```\n<!-- outside -->done",
			want:    "```html\n<!-- inside -->\n```\ndone",
		},
		{
			name:    "tilde fence needs matching marker",
			content: "~~~~\n/* a */\n~~~\n/* b */\n~~~~\nx<!-- y -->",
			want:    "~~~~\n/* a */\n~~~\n/* b */\n~~~~\nx",
		},
		{
			name:    "inline code span untouched",
			content: "Run `eslint src/**/*.js` now <!-- c -->",
			want:    "Run `eslint src/**/*.js` now ",
		},
		{
			name:    "unmatched backtick is literal",
			content: "a ` b <!-- c --> d",
			want:    "a ` b  d",
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Comments(tt.content); got != tt.want {
				t.Errorf("Comments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFenceMarker(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"```go\n", "```"},
		{"   ~~~~\n", "~~~~"},
		{"    ```\n", ""},
		{"``inline``", ""},
		{"text", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := fenceMarker(tt.line); got != tt.want {
			t.Errorf("fenceMarker(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestUnclosed(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantLine int
		wantOK   bool
	}{
		{"all closed", "a <!-- x --> b /* y */ c", 0, false},
		{"glob in prose", "## Lint\n\nlint files under build/*.mjs\nmore text\n", 3, true},
		{"unclosed html comment", "<!-- todo\nrest", 1, true},
		{"glob inside inline code", "run `build/*.mjs` please\n", 0, false},
		{"glob inside fence", "```sh\nls build/*.mjs\n```\ntext\n", 0, false},
		{"no comments", "plain\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, ok := Unclosed(tt.content)
			if ok != tt.wantOK || line != tt.wantLine {
				t.Errorf("Unclosed() = %d, %v, want %d, %v", line, ok, tt.wantLine, tt.wantOK)
			}
		})
	}
}
