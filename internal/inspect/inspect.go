// Package inspect checks health files for markup the frontmatter
// synthesizer would handle differently than a reader expects.
package inspect

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/openinf/siteify/internal/healthdoc"
	"github.com/openinf/siteify/internal/strip"
)

// Report is the result of inspecting one health file.
type Report struct {
	Name string

	// Title is what the synthesizer derives (heading or file name).
	Title       string
	FromHeading bool

	// HeadingTitle is the first level-2 heading according to the markdown
	// parser. Setext is true for underlined ("---") headings.
	HeadingTitle string
	HasHeading   bool
	Setext       bool

	HasComments bool
	// UnclosedLine is the line of a comment opener that is never closed,
	// or 0. Everything from there on is dropped from the body.
	UnclosedLine int
	// HeadingKept is true when the title heading stays in the body because
	// no blank line follows it.
	HeadingKept bool

	Issues []string
}

// OK reports whether no issues were found.
func (r Report) OK() bool {
	return len(r.Issues) == 0
}

// Source inspects a health file's content.
func Source(name string, content []byte) Report {
	stripped := strip.Comments(string(content))
	r := Report{
		Name:        name,
		HasComments: stripped != string(content),
	}
	r.UnclosedLine, _ = strip.Unclosed(string(content))

	r.Title, r.FromHeading = healthdoc.ExtractTitle(stripped)
	if r.FromHeading {
		r.HeadingKept = healthdoc.HeadingKept(stripped)
	} else {
		r.Title = healthdoc.TitleFromFilename(name)
	}

	r.HeadingTitle, r.Setext, r.HasHeading = firstLevelTwo([]byte(stripped))

	switch {
	case !r.FromHeading && !r.HasHeading:
		r.Issues = append(r.Issues, fmt.Sprintf("no level-2 heading; title falls back to %q", r.Title))
	case !r.FromHeading && r.Setext:
		r.Issues = append(r.Issues, fmt.Sprintf("heading %q is underlined and will not become the title", r.HeadingTitle))
	case r.FromHeading && !r.HasHeading:
		r.Issues = append(r.Issues, fmt.Sprintf("title %q comes from a line that is not a markdown heading", r.Title))
	case r.FromHeading && r.HeadingTitle != r.Title:
		r.Issues = append(r.Issues, fmt.Sprintf("title %q differs from first heading %q", r.Title, r.HeadingTitle))
	}
	if r.UnclosedLine > 0 {
		r.Issues = append(r.Issues, fmt.Sprintf("comment opened on line %d is never closed; everything after it is dropped", r.UnclosedLine))
	}
	if r.HeadingKept {
		r.Issues = append(r.Issues, "title heading is not followed by a blank line and will stay in the body")
	}

	return r
}

// firstLevelTwo walks the markdown AST for the first level-2 heading.
func firstLevelTwo(source []byte) (title string, setext bool, found bool) {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 2 {
			return ast.WalkContinue, nil
		}
		title = string(h.Text(source))
		setext = isSetext(h, source)
		found = true
		return ast.WalkStop, nil
	})

	return title, setext, found
}

// isSetext reports whether the heading's first content line lacks an ATX
// "#" prefix.
func isSetext(h *ast.Heading, source []byte) bool {
	if h.Lines().Len() == 0 {
		return false
	}
	start := h.Lines().At(0).Start
	lineStart := bytes.LastIndexByte(source[:start], '\n') + 1
	prefix := bytes.TrimLeft(source[lineStart:start], " ")
	return !bytes.HasPrefix(prefix, []byte("#"))
}
