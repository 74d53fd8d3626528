package model

import (
	"strconv"
	"strings"
	"unicode"
)

type FileStatus string

const (
	FileStatusAdded    FileStatus = "added"
	FileStatusModified FileStatus = "modified"
	FileStatusRemoved  FileStatus = "removed"
	FileStatusRenamed  FileStatus = "renamed"
)

// ChangedFile is one file of a diff with its changed line count.
type ChangedFile struct {
	Path         string
	LinesChanged int
	Status       FileStatus
}

// DiffStatRow is a file row scraped from a rendered diff page.
type DiffStatRow struct {
	Title    string
	DiffStat string
}

// ChangedFilesFromDiffStats converts scraped rows. The diffstat text starts
// with the changed line count (e.g. "12 ++++--"); rows without a leading
// number count as zero. Scraped rows carry no status, so they are reported as
// modified.
func ChangedFilesFromDiffStats(rows []DiffStatRow) []ChangedFile {
	files := make([]ChangedFile, 0, len(rows))
	for _, row := range rows {
		files = append(files, ChangedFile{
			Path:         row.Title,
			LinesChanged: leadingInt(row.DiffStat),
			Status:       FileStatusModified,
		})
	}
	return files
}

func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != ',' })
	if end < 0 {
		end = len(s)
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s[:end], ",", ""))
	if err != nil {
		return 0
	}
	return n
}
