// Package prdesc builds pull request descriptions and patches existing ones in
// place. Every patch leaves the document untouched when its anchor is absent.
package prdesc

import "strings"

const headingPrefix = "## "

// Document is a description split on "## " heading lines. Joining Preamble and
// the sections back with newlines reproduces the original text byte for byte.
// Text saved from the GitHub web editor uses CRLF throughout; lines are held
// without the CR and String puts it back.
type Document struct {
	Preamble []string
	Sections []*Section

	crlf bool
}

type Section struct {
	// Heading is the whole heading line, e.g. "## Commits".
	Heading string
	// Lines are the lines between the heading and the next heading.
	Lines []string
}

// Name is the heading text without the "## " marker.
func (x *Section) Name() string {
	return strings.TrimSpace(strings.TrimPrefix(x.Heading, headingPrefix))
}

func isHeading(line string) bool {
	return strings.HasPrefix(line, headingPrefix)
}

func Parse(text string) *Document {
	doc := &Document{}
	if n := strings.Count(text, "\r\n"); n > 0 && n == strings.Count(text, "\n") {
		doc.crlf = true
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}

	var current *Section
	for _, line := range strings.Split(text, "\n") {
		if isHeading(line) {
			current = &Section{Heading: line}
			doc.Sections = append(doc.Sections, current)
			continue
		}
		if current == nil {
			doc.Preamble = append(doc.Preamble, line)
		} else {
			current.Lines = append(current.Lines, line)
		}
	}
	return doc
}

func (x *Document) String() string {
	lines := make([]string, 0, len(x.Preamble)+len(x.Sections)*8)
	lines = append(lines, x.Preamble...)
	for _, s := range x.Sections {
		lines = append(lines, s.Heading)
		lines = append(lines, s.Lines...)
	}
	if x.crlf {
		return strings.Join(lines, "\r\n")
	}
	return strings.Join(lines, "\n")
}

// Section returns the first section with the given name, or nil.
func (x *Document) Section(name string) *Section {
	for _, s := range x.Sections {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (x *Document) isLast(s *Section) bool {
	return len(x.Sections) > 0 && x.Sections[len(x.Sections)-1] == s
}
