package model

import "strings"

type Commit struct {
	SHA     string
	Message string
}

// Title is the first line of the message.
func (x Commit) Title() string {
	title, _, _ := strings.Cut(x.Message, "\n")
	return title
}

// JoinCommitTitles joins titles with newlines, the form the description
// builders accept.
func JoinCommitTitles(commits []Commit) string {
	titles := make([]string, 0, len(commits))
	for _, c := range commits {
		titles = append(titles, c.Title())
	}
	return strings.Join(titles, "\n")
}
