package healthdoc

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// headingPattern matches a level-2 ATX heading at the start of a line.
var headingPattern = regexp.MustCompile(`(?m)^## ([^\r\n]*)\r?$`)

// removablePattern matches any level-2 heading line followed by a blank line.
var removablePattern = regexp.MustCompile(`(?m)^## [^\r\n]*\n\n`)

// ExtractTitle returns the text of the first level-2 heading in content.
// ok is false when the document has no such heading.
func ExtractTitle(content string) (title string, ok bool) {
	m := headingPattern.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// RemoveHeading drops every level-2 heading line that is followed by a
// blank line, together with that blank line, in a single global pass.
// The heading text does not matter: section headings go too.
func RemoveHeading(content string) string {
	return removablePattern.ReplaceAllLiteralString(content, "")
}

// HeadingKept reports whether the first level-2 heading stays in the body
// because no blank line follows it.
func HeadingKept(content string) bool {
	loc := headingPattern.FindStringIndex(content)
	if loc == nil {
		return false
	}
	return !strings.HasPrefix(content[loc[1]:], "\n\n")
}

// baseName returns the file name without directory and extension.
func baseName(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// TitleFromFilename derives a human title from a file name:
// "CODE_OF_CONDUCT.md" becomes "Code Of Conduct".
func TitleFromFilename(name string) string {
	tokens := strings.Split(strings.ToLower(baseName(name)), "_")
	for i, tok := range tokens {
		tokens[i] = capitalize(tok)
	}
	return strings.Join(tokens, " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Slug derives the URL slug for a file name: lower-cased base name with
// underscores replaced by hyphens.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(baseName(name)), "_", "-")
}

// Permalink returns the default site URL for a slug.
func Permalink(slug string) string {
	return "/docs/" + slug + "/"
}

// ProvenanceNote is the fixed note telling readers where to edit the source.
func ProvenanceNote(name string) string {
	return "This file is autogenerated. Edit " + name + " instead."
}
