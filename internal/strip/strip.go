// Package strip removes comment markup from markdown-like text.
// It is a textual transform, not a markdown parser: it only knows enough
// about fenced code blocks and inline code spans to leave them alone.
package strip

import "strings"

// comment delimiters recognized outside of code
var delimiters = []struct {
	open  string
	close string
}{
	{"<!--", "-->"},
	{"/*", "*/"},
}

// Comments returns text with HTML comments (<!-- -->) and block comments
// (/* */) removed. An unterminated comment runs to the end of the text.
// Fenced code blocks and inline code spans are copied verbatim.
// Line comments (//) are kept so URLs survive.
func Comments(text string) string {
	out, _ := scan(text)
	return out
}

// Unclosed returns the 1-based line of a comment opener that is never
// closed, which makes Comments drop the rest of the text. ok is false when
// every comment is closed.
func Unclosed(text string) (line int, ok bool) {
	_, at := scan(text)
	if at < 0 {
		return 0, false
	}
	return strings.Count(text[:at], "\n") + 1, true
}

// scan strips comments and returns the offset of an unterminated opener,
// or -1.
func scan(text string) (string, int) {
	var b strings.Builder
	b.Grow(len(text))

	fence := ""
	i := 0
	for i < len(text) {
		if i == 0 || text[i-1] == '\n' {
			marker := fenceMarker(text[i:])
			switch {
			case fence == "" && marker != "":
				fence = marker
			case fence != "" && marker != "" && marker[0] == fence[0] && len(marker) >= len(fence):
				fence = ""
				i = copyLine(&b, text, i)
				continue
			}
			if fence != "" {
				i = copyLine(&b, text, i)
				continue
			}
		}

		if text[i] == '`' {
			i = copySpan(&b, text, i)
			continue
		}

		if open, closer, ok := commentAt(text, i); ok {
			end := strings.Index(text[i+len(open):], closer)
			if end < 0 {
				return b.String(), i
			}
			i += len(open) + end + len(closer)
			continue
		}

		b.WriteByte(text[i])
		i++
	}

	return b.String(), -1
}

func commentAt(text string, i int) (string, string, bool) {
	for _, d := range delimiters {
		if strings.HasPrefix(text[i:], d.open) {
			return d.open, d.close, true
		}
	}
	return "", "", false
}

// fenceMarker returns the ``` or ~~~ run opening line, or "" if the line
// does not start a code fence. Up to three spaces of indentation are allowed.
func fenceMarker(line string) string {
	indent := 0
	for indent < len(line) && indent < 3 && line[indent] == ' ' {
		indent++
	}
	line = line[indent:]
	if line == "" || (line[0] != '`' && line[0] != '~') {
		return ""
	}
	n := 0
	for n < len(line) && line[n] == line[0] {
		n++
	}
	if n < 3 {
		return ""
	}
	return line[:n]
}

// copyLine writes text[i:] up to and including the next newline.
func copyLine(b *strings.Builder, text string, i int) int {
	end := strings.IndexByte(text[i:], '\n')
	if end < 0 {
		b.WriteString(text[i:])
		return len(text)
	}
	b.WriteString(text[i : i+end+1])
	return i + end + 1
}

// copySpan writes an inline code span starting at i. A backtick run
// without a matching closing run is written as literal text.
func copySpan(b *strings.Builder, text string, i int) int {
	n := 0
	for i+n < len(text) && text[i+n] == '`' {
		n++
	}
	run := text[i : i+n]
	end := strings.Index(text[i+n:], run)
	if end < 0 {
		b.WriteString(run)
		return i + n
	}
	stop := i + n + end + n
	b.WriteString(text[i:stop])
	return stop
}
