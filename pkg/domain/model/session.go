package model

// Session is the per-page state of body-change handling. It is owned by the
// caller and handed back updated, so nothing is kept in package state.
type Session struct {
	TranslationLabelAdded bool
}

// NewSession derives the initial state from the labels already on the PR.
func NewSession(pr *PullRequest, cv *Conventions) Session {
	return Session{
		TranslationLabelAdded: pr.HasLabel(cv.Labels.HasTranslations),
	}
}
