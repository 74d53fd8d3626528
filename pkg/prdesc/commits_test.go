package prdesc_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
)

func commitsOf(messages ...string) []model.Commit {
	var out []model.Commit
	for _, m := range messages {
		out = append(out, model.Commit{Message: m})
	}
	return out
}

func commitsSection(t *testing.T, text string) []string {
	t.Helper()
	sec := prdesc.Parse(text).Section("Commits")
	gt.V(t, sec != nil).Equal(true)
	return sec.Lines
}

func TestReconcileCommits(t *testing.T) {
	t.Run("no Commits heading is a no-op", func(t *testing.T) {
		text := "## Review Guide\n  🌈   _1% of the diff is specs_\n"
		gt.V(t, prdesc.ReconcileCommits(text, commitsOf("a", "b"))).Equal(text)
	})

	t.Run("manual entries stay ahead of the new commit", func(t *testing.T) {
		text := "## Commits\n### Manual one\nnotes one\n### Manual two\nnotes two\n\n## Screens\nkeep"
		out := prdesc.ReconcileCommits(text, commitsOf("Brand new"))

		gt.V(t, out).Equal("## Commits\n### Manual one\nnotes one\n### Manual two\nnotes two\n### Brand new\n\n## Screens\nkeep")

		var entries []string
		for _, line := range commitsSection(t, out) {
			if strings.HasPrefix(line, "### ") {
				entries = append(entries, line)
			}
		}
		gt.V(t, len(entries)).Equal(3)
		gt.V(t, entries[2]).Equal("### Brand new")
	})

	t.Run("empty placeholder entries are dropped", func(t *testing.T) {
		text := "## Commits\n### \n### Old title\n"
		out := prdesc.ReconcileCommits(text, commitsOf("Add X"))
		gt.V(t, out).Equal("## Commits\n### Add X\n")
	})

	t.Run("entry with blank second line is empty", func(t *testing.T) {
		text := "## Commits\n### Gone\n\nnot a body"
		out := prdesc.ReconcileCommits(text, nil)
		gt.V(t, out).Equal("## Commits")
	})

	t.Run("message embedded in a manual entry is not appended", func(t *testing.T) {
		text := "## Commits\n### Add X\nWhy we added X\n"
		out := prdesc.ReconcileCommits(text, commitsOf("Add X"))
		gt.V(t, out).Equal(text)
	})

	t.Run("substring of a longer title is still appended", func(t *testing.T) {
		text := "## Commits\n### Add X and Y\nbody\n"
		out := prdesc.ReconcileCommits(text, commitsOf("Add X"))
		gt.V(t, out).Equal("## Commits\n### Add X and Y\nbody\n### Add X\n")
	})

	t.Run("message followed by another entry is appended", func(t *testing.T) {
		text := "## Commits\nAdd X\n### Manual\nbody\n"
		out := prdesc.ReconcileCommits(text, commitsOf("Add X"))
		gt.V(t, out).Equal("## Commits\nAdd X\n### Manual\nbody\n### Add X\n")
	})

	t.Run("idempotent on its own output", func(t *testing.T) {
		commits := commitsOf("Add X", "Fix Y\n\nwith a body", "Polish")
		text := prdesc.BuildFeatureDescription(30, model.JoinCommitTitles(commits), len(commits), false)

		once := prdesc.ReconcileCommits(text, commits)
		twice := prdesc.ReconcileCommits(once, commits)
		gt.V(t, twice).Equal(once)
	})

	t.Run("same messages already present stay byte-identical", func(t *testing.T) {
		text := prdesc.BuildFeatureDescription(30, "Add X\nFix Y", 2, false)
		gt.V(t, prdesc.ReconcileCommits(text, commitsOf("Add X", "Fix Y"))).Equal(text)
	})

	t.Run("headings in a commit body stay inside the entry", func(t *testing.T) {
		text := "## Commits\n### \n\n## Screens\nkeep"
		commits := commitsOf("Add X\n\n## Why\nbecause", "Add Y\n\n### Details\nfoo")

		once := prdesc.ReconcileCommits(text, commits)
		gt.V(t, once).Equal("## Commits\n### Add X\n\n\\## Why\nbecause\n### Add Y\n\n\\### Details\nfoo\n\n## Screens\nkeep")

		doc := prdesc.Parse(once)
		gt.V(t, len(doc.Sections)).Equal(2)
		gt.V(t, doc.Section("Why") == nil).Equal(true)

		out := once
		for i := 0; i < 3; i++ {
			out = prdesc.ReconcileCommits(out, commits)
		}
		gt.V(t, out).Equal(once)
	})

	t.Run("matching entry keeps its place before manual entries", func(t *testing.T) {
		text := "## Commits\n### A\nline2\n### Manual\nnotes"
		gt.V(t, prdesc.ReconcileCommits(text, commitsOf("A\nline2"))).Equal(text)
	})

	t.Run("entries of commits without a body keep their place", func(t *testing.T) {
		text := "## Commits\n### A\n### B\nbody\n### Manual\nnotes\n"
		out := prdesc.ReconcileCommits(text, commitsOf("A", "B\nbody", "C"))
		gt.V(t, out).Equal("## Commits\n### A\n### B\nbody\n### Manual\nnotes\n### C\n")
		gt.V(t, prdesc.ReconcileCommits(out, commitsOf("A", "B\nbody", "C"))).Equal(out)
	})

	t.Run("trailing blank lines of a message are ignored", func(t *testing.T) {
		text := "## Commits\n### \n"
		once := prdesc.ReconcileCommits(text, commitsOf("Add X\n\nbody\n\n"))
		gt.V(t, once).Equal("## Commits\n### Add X\n\nbody\n")
		gt.V(t, prdesc.ReconcileCommits(once, commitsOf("Add X\n\nbody\n\n"))).Equal(once)
	})

	t.Run("CRLF description", func(t *testing.T) {
		commits := commitsOf("Add X", "Add Y")
		text := strings.ReplaceAll(prdesc.BuildFeatureDescription(5, "Add X", 1, false), "\n", "\r\n")

		once := prdesc.ReconcileCommits(text, commits)
		gt.V(t, strings.Count(once, prdesc.CommitByCommitLine)).Equal(1)
		gt.S(t, once).Contains("### Add X\r\n### Add Y\r\n")
		gt.V(t, strings.Count(once, "\r\n")).Equal(strings.Count(once, "\n"))
		gt.V(t, prdesc.ReconcileCommits(once, commits)).Equal(once)

		single := prdesc.ReconcileCommits(once, commitsOf("Add X"))
		gt.False(t, strings.Contains(single, prdesc.CommitByCommitLine))
	})

	t.Run("content after Commits is kept", func(t *testing.T) {
		text := prdesc.BuildFeatureDescription(0, "Add X", 1, false)
		out := prdesc.ReconcileCommits(text, commitsOf("Add X", "Add Z"))
		gt.True(t, strings.HasSuffix(out, "### Add X\n### Add Z\n\n## Screens\n| Before | After |\n| --- | --- |\n| <img src=\"\"> | <img src=\"\"> |\n| <video src=\"\"> | <video src=\"\"> |"))
	})
}

func TestCommitByCommitToggle(t *testing.T) {
	t.Run("added for several commits", func(t *testing.T) {
		text := prdesc.BuildFeatureDescription(5, "Add X", 1, false)
		out := prdesc.ReconcileCommits(text, commitsOf("Add X", "Add Y"))
		gt.S(t, out).Contains("## Review Guide\n" + prdesc.CommitByCommitLine + "\n  🌈   _5% of the diff is specs_\n")
		gt.V(t, strings.Count(out, prdesc.CommitByCommitLine)).Equal(1)
	})

	t.Run("not duplicated", func(t *testing.T) {
		text := prdesc.BuildFeatureDescription(5, "Add X\nAdd Y", 2, false)
		out := prdesc.ReconcileCommits(text, commitsOf("Add X", "Add Y", "Add Z"))
		gt.V(t, strings.Count(out, prdesc.CommitByCommitLine)).Equal(1)
	})

	t.Run("removed without leaving a blank line", func(t *testing.T) {
		text := prdesc.BuildFeatureDescription(5, "Add X\nAdd Y", 2, false)
		out := prdesc.ReconcileCommits(text, commitsOf("Add X"))
		gt.False(t, strings.Contains(out, prdesc.CommitByCommitLine))
		gt.S(t, out).Contains("## Review Guide\n  🌈   _5% of the diff is specs_\n\n## Context")
	})

	t.Run("needs the Commits section", func(t *testing.T) {
		text := "## Review Guide\n  🌈   _5% of the diff is specs_"
		gt.V(t, prdesc.ReconcileCommits(text, commitsOf("a", "b"))).Equal(text)
	})
}
