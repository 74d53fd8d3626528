package prdesc

import (
	"fmt"
	"strings"

	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

// CommitByCommitLine hints reviewers to walk through the commits one by one.
const CommitByCommitLine = "  🪜   _Commit by commit_"

// LyriqBranchLine is the tracking line of the translation branch, before any
// link is set.
func LyriqBranchLine() string {
	return "  ♌️   " + lyriqBranchLabel + "() | " + model.LyriqStatusNotYetStarted.Rendered()
}

func specRatioLine(percentage int) string {
	return fmt.Sprintf("  🌈   _%d%% of the diff is specs_", percentage)
}

// commitEntries turns newline separated titles into "### " entries. A list
// without any title still gets one placeholder entry to type into.
func commitEntries(joinedTitles string) []string {
	var entries []string
	for _, title := range strings.Split(joinedTitles, "\n") {
		title = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(title), entryMarker))
		if title == "" {
			continue
		}
		entries = append(entries, entryMarker+" "+title)
	}
	if len(entries) == 0 {
		return []string{entryMarker + " "}
	}
	return entries
}

func reviewGuide(percentage, commitCount int) []string {
	lines := []string{"## Review Guide"}
	if commitCount > 1 {
		lines = append(lines, CommitByCommitLine)
	}
	return append(lines, specRatioLine(percentage), "")
}

func BuildFeatureDescription(percentage int, joinedTitles string, commitCount int, includeLyriq bool) string {
	lines := []string{
		"## Links",
		"  📝   [PRD]()",
	}
	if includeLyriq {
		lines = append(lines, LyriqBranchLine())
	}
	lines = append(lines,
		"  🎨   [Figma]()",
		"  🪸   [Deep Dive]()",
		"  💬   [Slack]()",
		"  🐛   [Bugsnag]()",
		"",
		"## Timeline",
		"* Previous PR: _None_",
		"* Followup PR: _None_",
		"",
	)
	lines = append(lines, reviewGuide(percentage, commitCount)...)
	lines = append(lines,
		"## Context",
		"",
		"## Implementation",
		"",
		"## Commits",
	)
	lines = append(lines, commitEntries(joinedTitles)...)
	lines = append(lines,
		"",
		"## Screens",
		"| Before | After |",
		"| --- | --- |",
		`| <img src=""> | <img src=""> |`,
		`| <video src=""> | <video src=""> |`,
	)
	return strings.Join(lines, "\n")
}

func BuildFixDescription(percentage int, joinedTitles string, commitCount int, includeLyriq bool) string {
	lines := []string{"## Links"}
	if includeLyriq {
		lines = append(lines, LyriqBranchLine())
	}
	lines = append(lines,
		"  🐛   [Bugsnag]()",
		"  💬   [Slack]()",
		"",
	)
	lines = append(lines, reviewGuide(percentage, commitCount)...)
	lines = append(lines,
		"## Context",
		"",
		"## Fix",
		"",
		"## Commits",
	)
	lines = append(lines, commitEntries(joinedTitles)...)
	return strings.Join(lines, "\n")
}

// BuildTranslationDescription lays out a translation pull request around the
// rendered locale completion, which is kept newline terminated.
func BuildTranslationDescription(completion string) string {
	lines := []string{
		"> [!NOTE]",
		"> _This PR will not be merged onto main, its sole purpose is to receive Lyriq translations. The Lyriq commits will then be cherry-picked in the feature branch._",
		"",
		"## Links",
		"  👑   [Feature Branch]()",
		"  💬   [Slack]()",
		"  ♌️   [Lyriq job]()",
		"",
		"## Completion",
	}
	return strings.Join(lines, "\n") + "\n" + completion
}
