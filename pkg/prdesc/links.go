package prdesc

import (
	"regexp"
	"strings"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

const headingLinks = "Links"

var prdLinePattern = regexp.MustCompile(`📝[ \t\x{00a0}]+\[PRD\]\([^)]*\)`)

// InsertLyriqLine adds a not-yet-started Lyriq Branch line to a description
// that has none. Fix descriptions get it first in Links, feature descriptions
// right after the PRD line.
func InsertLyriqLine(text string, kind model.BranchKind) string {
	if strings.Contains(text, lyriqBranchLabel) {
		return text
	}

	doc := Parse(text)
	switch kind {
	case model.BranchKindFix:
		sec := doc.Section(headingLinks)
		if sec == nil {
			return text
		}
		sec.Lines = insertLine(sec.Lines, 0, LyriqBranchLine())
		return doc.String()

	case model.BranchKindFeature:
		for _, sec := range doc.Sections {
			for i, line := range sec.Lines {
				if prdLinePattern.MatchString(line) {
					sec.Lines = insertLine(sec.Lines, i+1, LyriqBranchLine())
					return doc.String()
				}
			}
		}
		return text

	default:
		return text
	}
}

func insertLine(lines []string, at int, line string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	return append(out, lines[at:]...)
}
