package prdesc_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/prdesc"
)

func TestBuildFeatureDescription(t *testing.T) {
	t.Run("several commits", func(t *testing.T) {
		out := prdesc.BuildFeatureDescription(42, "Add X\nFix Y", 2, false)
		gt.S(t, out).Contains("_42% of the diff is specs_")
		gt.S(t, out).Contains(prdesc.CommitByCommitLine)
		gt.False(t, strings.Contains(out, "[Lyriq Branch]"))
		gt.S(t, out).Contains("## Commits\n### Add X\n### Fix Y\n\n## Screens")
	})

	t.Run("single commit has no hint", func(t *testing.T) {
		out := prdesc.BuildFeatureDescription(0, "Add X", 1, false)
		gt.False(t, strings.Contains(out, prdesc.CommitByCommitLine))
		gt.S(t, out).Contains("## Review Guide\n  🌈   _0% of the diff is specs_\n")
	})

	t.Run("lyriq line follows the PRD line", func(t *testing.T) {
		out := prdesc.BuildFeatureDescription(0, "Add X", 1, true)
		gt.S(t, out).Contains("  📝   [PRD]()\n  ♌️   [Lyriq Branch]() | _Not yet started_ 👻\n  🎨   [Figma]()")

		status, ok := prdesc.LyriqStatusOf(out)
		gt.True(t, ok)
		gt.V(t, status).Equal(model.LyriqStatusNotYetStarted)
	})

	t.Run("no titles leaves a placeholder", func(t *testing.T) {
		out := prdesc.BuildFeatureDescription(0, "", 0, false)
		gt.S(t, out).Contains("## Commits\n### \n\n## Screens")
	})

	t.Run("entry markers in titles are not doubled", func(t *testing.T) {
		out := prdesc.BuildFeatureDescription(0, "Add X\n### Fix Y", 2, false)
		gt.S(t, out).Contains("### Add X\n### Fix Y\n")
	})

	t.Run("deterministic", func(t *testing.T) {
		gt.V(t, prdesc.BuildFeatureDescription(7, "a\nb", 2, true)).
			Equal(prdesc.BuildFeatureDescription(7, "a\nb", 2, true))
	})
}

func TestBuildFixDescription(t *testing.T) {
	out := prdesc.BuildFixDescription(12, "Fix login", 1, true)
	gt.V(t, out).Equal(strings.Join([]string{
		"## Links",
		"  ♌️   [Lyriq Branch]() | _Not yet started_ 👻",
		"  🐛   [Bugsnag]()",
		"  💬   [Slack]()",
		"",
		"## Review Guide",
		"  🌈   _12% of the diff is specs_",
		"",
		"## Context",
		"",
		"## Fix",
		"",
		"## Commits",
		"### Fix login",
	}, "\n"))
}

func TestBuildTranslationDescription(t *testing.T) {
	completion := prdesc.RenderLocaleCompletion(states(true, false, false, false, false, false))
	out := prdesc.BuildTranslationDescription(completion)

	gt.True(t, strings.HasPrefix(out, "> [!NOTE]\n"))
	gt.S(t, out).Contains("## Links\n  👑   [Feature Branch]()\n  💬   [Slack]()\n  ♌️   [Lyriq job]()\n")
	gt.True(t, strings.HasSuffix(out, "## Completion\n- [x] 🇬🇧\n- [ ] 🇫🇷\n- [ ] 🇳🇴\n- [ ] 🇩🇪\n- [ ] 🇪🇸\n- [ ] 🇧🇪\n"))
	_, ok := prdesc.LyriqBranchURL(out)
	gt.False(t, ok)
}
