package healthdoc

// Entry pairs a health file with its frontmatter overrides.
type Entry struct {
	File      string
	Overrides Overrides
}

// Table is the ordered list of health files to publish.
type Table []Entry

// DefaultTable returns the OpenINF health files in publishing order.
func DefaultTable() Table {
	return Table{
		{File: "CODE_OF_CONDUCT.md", Overrides: Overrides{
			{Key: "title", Value: "OpenINF Code of Conduct"},
			{Key: "editable", Value: false},
		}},
		{File: "CONTRIBUTING.md", Overrides: Overrides{
			{Key: "title", Value: "Contributing to OpenINF"},
			{Key: "permalink", Value: "/docs/dev/internals/contributing/"},
		}},
		{File: "SECURITY.md", Overrides: Overrides{
			{Key: "title", Value: "OpenINF Security Policies"},
			{Key: "permalink", Value: "/docs/dev/internals/security/"},
		}},
		{File: "SUPPORT.md", Overrides: Overrides{
			{Key: "title", Value: "Support • Frequently Asked Questions"},
			{Key: "permalink", Value: "/docs/dev/faq/support/"},
			{Key: "redirect_from", Value: "/docs/dev/faq/help/"},
		}},
		{File: "VISION.md", Overrides: Overrides{
			{Key: "title", Value: "OpenINF Vision"},
			{Key: "permalink", Value: "/about/vision/"},
		}},
	}
}

// Files returns the health file names in order.
func (t Table) Files() []string {
	files := make([]string, len(t))
	for i, e := range t {
		files[i] = e.File
	}
	return files
}

// Lookup returns the overrides registered for an exact file name match.
// Unknown files get no overrides.
func (t Table) Lookup(file string) Overrides {
	for _, e := range t {
		if e.File == file {
			return e.Overrides
		}
	}
	return nil
}

// Only keeps the entries named in files, preserving table order. Names
// that are not in the table are appended with no overrides.
func (t Table) Only(files ...string) Table {
	if len(files) == 0 {
		return t
	}

	wanted := make(map[string]bool, len(files))
	for _, f := range files {
		wanted[f] = true
	}

	var out Table
	for _, e := range t {
		if wanted[e.File] {
			out = append(out, e)
			delete(wanted, e.File)
		}
	}
	for _, f := range files {
		if wanted[f] {
			out = append(out, Entry{File: f})
			delete(wanted, f)
		}
	}
	return out
}
