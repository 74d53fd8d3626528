package prdesc

import (
	"strings"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

const (
	headingCommits     = "Commits"
	headingReviewGuide = "Review Guide"

	entryMarker = "###"
)

func isEntryStart(line string) bool {
	return line == entryMarker || strings.HasPrefix(line, entryMarker+" ")
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ReconcileCommits merges the incoming commits into the Commits section and
// keeps the commit-by-commit hint in sync with the commit count. Without a
// Commits section the text is returned as is.
func ReconcileCommits(text string, commits []model.Commit) string {
	doc := Parse(text)
	sec := doc.Section(headingCommits)
	if sec == nil {
		return text
	}

	toggleCommitByCommit(doc, len(commits) > 1)
	sec.Lines = reconcileEntries(sec.Lines, commits)
	return doc.String()
}

func toggleCommitByCommit(doc *Document, want bool) {
	sec := doc.Section(headingReviewGuide)
	if sec == nil {
		return
	}

	var lines []string
	found := false
	for _, line := range sec.Lines {
		if strings.TrimSuffix(line, "\r") == CommitByCommitLine {
			found = true
			if !want {
				continue
			}
		}
		lines = append(lines, line)
	}

	if want && !found {
		lines = insertLine(lines, 0, CommitByCommitLine)
	}
	sec.Lines = lines
}

// entry is one "### " block, heading line first.
type entry []string

func (x entry) empty() bool {
	return len(x) < 2 || isBlank(x[1])
}

// text is the entry without its marker and trailing blank lines, in the form
// a commit message takes.
func (x entry) text() string {
	lines := append([]string{}, x...)
	lines[0] = strings.TrimPrefix(strings.TrimPrefix(lines[0], entryMarker), " ")
	for len(lines) > 1 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func splitEntries(lines []string) (lead []string, entries []entry) {
	for _, line := range lines {
		switch {
		case isEntryStart(line):
			entries = append(entries, entry{line})
		case len(entries) == 0:
			lead = append(lead, line)
		default:
			entries[len(entries)-1] = append(entries[len(entries)-1], line)
		}
	}
	return lead, entries
}

// entryMessage is msg as it reads inside an entry: trailing blank lines
// dropped and body lines starting with "#" escaped, so a commit body can never
// open a section or another entry.
func entryMessage(msg string) string {
	lines := strings.Split(msg, "\n")
	for len(lines) > 1 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	for i := 1; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], "#") {
			lines[i] = `\` + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func reconcileEntries(lines []string, commits []model.Commit) []string {
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	body, trailing := lines[:end], lines[end:]

	incoming := make(map[string]bool, len(commits))
	for _, c := range commits {
		if msg := entryMessage(c.Message); msg != "" {
			incoming[msg] = false
		}
	}

	// Entries written from an incoming commit stay where they are, even when
	// the commit has no body.
	lead, entries := splitEntries(body)
	out := append([]string{}, lead...)
	for _, e := range entries {
		if _, ok := incoming[e.text()]; ok {
			incoming[e.text()] = true
			out = append(out, e...)
			continue
		}
		if e.empty() {
			continue
		}
		out = append(out, e...)
	}

	kept := strings.Join(out, "\n")
	for _, c := range commits {
		msg := entryMessage(c.Message)
		if msg == "" || incoming[msg] || embeddedIn(kept, msg) {
			continue
		}
		incoming[msg] = true
		out = append(out, strings.Split(entryMarker+" "+msg, "\n")...)
	}

	return append(out, trailing...)
}

// embeddedIn tells whether msg already appears inside a manual entry: an
// occurrence that ends its line and is followed by more text that does not
// open a new entry. Occurrences in the middle of a longer line do not count.
func embeddedIn(content, msg string) bool {
	if msg == "" {
		return false
	}
	for offset := 0; ; {
		idx := strings.Index(content[offset:], msg)
		if idx < 0 {
			return false
		}
		after := content[offset+idx+len(msg):]
		offset += idx + len(msg)

		restOfLine, _, _ := strings.Cut(after, "\n")
		if !isBlank(restOfLine) {
			continue
		}
		rest := strings.TrimLeft(after, " \t\r\n")
		return rest != "" && !strings.HasPrefix(rest, entryMarker)
	}
}
