package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
)

func TestChangedFilesFromDiffStats(t *testing.T) {
	rows := []model.DiffStatRow{
		{Title: "a.rb", DiffStat: " 12 ++--"},
		{Title: "b.rb", DiffStat: "1,204"},
		{Title: "c.rb", DiffStat: "BIN"},
	}
	files := model.ChangedFilesFromDiffStats(rows)
	gt.V(t, len(files)).Equal(3)
	gt.V(t, files[0].LinesChanged).Equal(12)
	gt.V(t, files[1].LinesChanged).Equal(1204)
	gt.V(t, files[2].LinesChanged).Equal(0)
	gt.V(t, files[0].Status).Equal(model.FileStatusModified)
}

func TestCommitTitle(t *testing.T) {
	gt.V(t, model.Commit{Message: "Add X\n\nBecause"}.Title()).Equal("Add X")
	gt.V(t, model.Commit{Message: "Fix Y"}.Title()).Equal("Fix Y")

	joined := model.JoinCommitTitles([]model.Commit{
		{Message: "Add X\n\nbody"},
		{Message: "Fix Y"},
	})
	gt.V(t, joined).Equal("Add X\nFix Y")
}

func TestLyriqStatus(t *testing.T) {
	gt.V(t, model.LyriqStatusDone.Rendered()).Equal("_Done_ ✅")
	gt.V(t, model.LyriqStatusInProgress.Rendered()).Equal("_In progress_ ⏳")
	gt.V(t, model.LyriqStatusNotYetStarted.Rendered()).Equal("_Not yet started_ 👻")
	gt.False(t, model.LyriqStatus("unknown").Valid())

	status, ok := model.ParseLyriqStatus("_In progress_ ⏳")
	gt.True(t, ok)
	gt.V(t, status).Equal(model.LyriqStatusInProgress)

	_, ok = model.ParseLyriqStatus("_Maybe_ 🤷")
	gt.False(t, ok)
}

func TestGitHubRepo(t *testing.T) {
	t.Run("valid repo passes validation", func(t *testing.T) {
		repo := &model.GitHubRepo{Owner: "drivy", RepoName: "drivy-rails"}
		gt.NoError(t, repo.Validate())
		gt.V(t, repo.PullURLPrefix()).Equal("https://github.com/drivy/drivy-rails/pull/")
	})

	t.Run("missing owner fails validation", func(t *testing.T) {
		repo := &model.GitHubRepo{RepoName: "drivy-rails"}
		gt.Error(t, repo.Validate())
	})

	t.Run("missing repo name fails validation", func(t *testing.T) {
		repo := &model.GitHubRepo{Owner: "drivy"}
		gt.Error(t, repo.Validate())
	})
}

func TestPullRequestTargetValidate(t *testing.T) {
	t.Run("valid target", func(t *testing.T) {
		target := &model.PullRequestTarget{
			GitHubRepo: model.GitHubRepo{Owner: "o", RepoName: "r"},
			Number:     1,
		}
		gt.NoError(t, target.Validate())
	})

	t.Run("zero number fails", func(t *testing.T) {
		target := &model.PullRequestTarget{
			GitHubRepo: model.GitHubRepo{Owner: "o", RepoName: "r"},
		}
		gt.Error(t, target.Validate())
	})
}

func TestNewSession(t *testing.T) {
	cv := model.DefaultConventions()

	pr := &model.PullRequest{Labels: []string{"bug", "has_translations"}}
	gt.True(t, model.NewSession(pr, cv).TranslationLabelAdded)

	pr = &model.PullRequest{Labels: []string{"bug"}}
	gt.False(t, model.NewSession(pr, cv).TranslationLabelAdded)
}
