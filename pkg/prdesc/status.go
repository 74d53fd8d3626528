package prdesc

import (
	"regexp"
	"strings"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

const lyriqBranchLabel = "[Lyriq Branch]"

// Groups: indentation, glyph, gap after the glyph, URL.
var lyriqLinePattern = regexp.MustCompile(`(?m)^([ \t\x{00a0}]*)(♌\x{FE0F}?)([ \t\x{00a0}]+)\[Lyriq Branch\]\(([^)\r\n]*)\)[^\r\n]*`)

// SetLyriqStatus rewrites the status of the Lyriq Branch line, keeping its
// indentation and link. Any status may follow any other.
func SetLyriqStatus(text string, status model.LyriqStatus) string {
	m := lyriqLinePattern.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}

	var b strings.Builder
	b.WriteString(text[:m[0]])
	b.WriteString(text[m[2]:m[3]])
	b.WriteString(text[m[4]:m[5]])
	b.WriteString(text[m[6]:m[7]])
	b.WriteString(lyriqBranchLabel)
	b.WriteString("(")
	b.WriteString(text[m[8]:m[9]])
	b.WriteString(") | ")
	b.WriteString(status.Rendered())
	b.WriteString(text[m[1]:])
	return b.String()
}

// LyriqBranchURL returns the link target of the Lyriq Branch line. The URL is
// empty when the link has not been filled in yet.
func LyriqBranchURL(text string) (string, bool) {
	m := lyriqLinePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[4], true
}

// LyriqStatusOf returns the current status of the Lyriq Branch line.
func LyriqStatusOf(text string) (model.LyriqStatus, bool) {
	m := lyriqLinePattern.FindString(text)
	if m == "" {
		return "", false
	}
	_, rendered, found := strings.Cut(m, "|")
	if !found {
		return "", false
	}
	return model.ParseLyriqStatus(strings.TrimSpace(rendered))
}

// HasLyriqPullLink tells whether the Lyriq Branch line links to a pull
// request of the repository, meaning the translation round has started.
func HasLyriqPullLink(text string, repo model.GitHubRepo) bool {
	return strings.Contains(text, lyriqBranchLabel+"("+repo.PullURLPrefix())
}
