package prdesc

import (
	"regexp"
	"strconv"
)

var specRatioPattern = regexp.MustCompile(`(🌈\s+_)\d+(%\s+of\s+the\s+diff\s+is\s+specs_)`)

// ReplaceSpecPercentage rewrites the number of the first spec ratio line.
func ReplaceSpecPercentage(text string, percentage int) string {
	loc := specRatioPattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	// loc[3] ends the prefix group, loc[4] starts the suffix group
	return text[:loc[3]] + strconv.Itoa(percentage) + text[loc[4]:]
}
