package healthdoc

import (
	"bytes"
	"fmt"

	"github.com/openinf/siteify/internal/strip"
)

// Document is a health file ready to be written into the site collection.
type Document struct {
	// Source is the health file name as given by the caller.
	Source string
	Slug   string
	// DerivedTitle is the heading or file name title, before overrides.
	DerivedTitle string
	// FromHeading is true when DerivedTitle came from a level-2 heading.
	FromHeading bool
	Frontmatter *Frontmatter
	Body        string
}

// Build turns raw health file content into a Document. Comment markup is
// stripped, the first level-2 heading supplies the title, every level-2
// heading followed by a blank line is dropped from the body, and the
// overrides are merged over the derived title, permalink and note.
func Build(name, content string, overrides Overrides) (*Document, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	body := strip.Comments(content)
	title, ok := ExtractTitle(body)
	if ok {
		body = RemoveHeading(body)
	} else {
		title = TitleFromFilename(name)
	}

	slug := Slug(name)
	fm := NewFrontmatter(
		Field{Key: "title", Value: title},
		Field{Key: "permalink", Value: Permalink(slug)},
		Field{Key: "note", Value: ProvenanceNote(name)},
	)
	fm.Merge(overrides)

	return &Document{
		Source:       name,
		Slug:         slug,
		DerivedTitle: title,
		FromHeading:  ok,
		Frontmatter:  fm,
		Body:         body,
	}, nil
}

// Title returns the effective title after overrides.
func (d *Document) Title() string {
	v, ok := d.Frontmatter.Get("title")
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Render produces the output file content: the frontmatter block between
// delimiter lines, a blank line, then the body.
func (d *Document) Render() ([]byte, error) {
	data, err := d.Frontmatter.Marshal()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(Delimiter + "\n")
	buf.Write(data)
	buf.WriteString(Delimiter + "\n\n")
	buf.WriteString(d.Body)
	return buf.Bytes(), nil
}
