package prdesc

import (
	"strings"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

const headingCompletion = "Completion"

// RenderLocaleCompletion renders one checkbox per locale, newline terminated.
func RenderLocaleCompletion(states []model.LocaleState) string {
	var b strings.Builder
	for _, s := range states {
		if s.Complete {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(s.Flag)
		b.WriteString("\n")
	}
	return b.String()
}

// ReplaceLocaleCompletion swaps the body of the Completion section for the
// rendered text. A trailing Completion section ends the document without a
// newline.
func ReplaceLocaleCompletion(text, completion string) string {
	doc := Parse(text)
	sec := doc.Section(headingCompletion)
	if sec == nil {
		return text
	}

	lines := strings.Split(strings.TrimSuffix(completion, "\n"), "\n")
	if !doc.isLast(sec) {
		lines = append(lines, "")
	}
	sec.Lines = lines
	return doc.String()
}
