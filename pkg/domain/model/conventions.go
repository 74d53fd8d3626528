package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
)

type BranchKind string

const (
	BranchKindFeature     BranchKind = "feature"
	BranchKindFix         BranchKind = "fix"
	BranchKindTranslation BranchKind = "translation"
)

type Locale struct {
	File string `json:"file"`
	Flag string `json:"flag"`
}

// LocaleState is the completion of one required locale.
type LocaleState struct {
	Locale
	Complete bool
}

type Labels struct {
	Lyriq            string `json:"lyriq"`
	HasTranslations  string `json:"has_translations"`
	TranslationsDone string `json:"translations_done"`
}

// Conventions are the repository-specific naming rules the automation relies on.
type Conventions struct {
	SpecMarker              string   `json:"spec_marker"`
	LocalesPath             string   `json:"locales_path"`
	SourceLocale            string   `json:"source_locale"`
	Locales                 []Locale `json:"locales"`
	TranslationBranchMarker string   `json:"translation_branch_marker"`
	FixBranchPrefix         string   `json:"fix_branch_prefix"`
	TranslationTitlePrefix  string   `json:"translation_title_prefix"`
	Labels                  Labels   `json:"labels"`
}

func DefaultConventions() *Conventions {
	return &Conventions{
		SpecMarker:   "_spec.rb",
		LocalesPath:  "config/locales/",
		SourceLocale: "en.yml",
		Locales: []Locale{
			{File: "en.yml", Flag: "🇬🇧"},
			{File: "fr.yml", Flag: "🇫🇷"},
			{File: "nb_NO.yml", Flag: "🇳🇴"},
			{File: "de.yml", Flag: "🇩🇪"},
			{File: "es.yml", Flag: "🇪🇸"},
			{File: "nl_BE.yml", Flag: "🇧🇪"},
		},
		TranslationBranchMarker: "translations/",
		FixBranchPrefix:         "fix/",
		TranslationTitlePrefix:  "♌️ ",
		Labels: Labels{
			Lyriq:            "lyriq",
			HasTranslations:  "has_translations",
			TranslationsDone: "translations_done",
		},
	}
}

func (x *Conventions) Validate() error {
	if x.SpecMarker == "" {
		return goerr.Wrap(types.ErrValidationFailed, "spec marker is empty")
	}
	if x.LocalesPath == "" {
		return goerr.Wrap(types.ErrValidationFailed, "locales path is empty")
	}
	if len(x.Locales) == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "no required locale")
	}
	for i, l := range x.Locales {
		if l.File == "" {
			return goerr.Wrap(types.ErrValidationFailed, "locale file is empty", goerr.V("index", i))
		}
	}
	if x.TranslationBranchMarker == "" || x.FixBranchPrefix == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch conventions are empty")
	}
	return nil
}

// ClassifyBranch maps a head branch name to its kind. Every name classifies.
func (x *Conventions) ClassifyBranch(name string) BranchKind {
	switch {
	case strings.Contains(name, x.TranslationBranchMarker):
		return BranchKindTranslation
	case strings.HasPrefix(name, x.FixBranchPrefix):
		return BranchKindFix
	default:
		return BranchKindFeature
	}
}

func (x *Conventions) IsSpecFile(path string) bool {
	return strings.Contains(path, x.SpecMarker)
}

// SpecPercentage returns the share of changed lines that belong to spec files,
// rounded half up to an integer percentage. It is 0 when nothing changed.
func (x *Conventions) SpecPercentage(files []ChangedFile) int {
	var total, spec int
	for _, f := range files {
		total += f.LinesChanged
		if x.IsSpecFile(f.Path) {
			spec += f.LinesChanged
		}
	}
	if total <= 0 {
		return 0
	}
	return (200*spec + total) / (2 * total)
}

func (x *Conventions) presentLocaleFile(files []ChangedFile, name string) bool {
	for _, f := range files {
		if f.Status == FileStatusRemoved {
			continue
		}
		if strings.HasPrefix(f.Path, x.LocalesPath) && strings.HasSuffix(f.Path, name) {
			return true
		}
	}
	return false
}

// LocaleCompletion reports, in required order, which locales have a
// non-removed file in the diff.
func (x *Conventions) LocaleCompletion(files []ChangedFile) []LocaleState {
	states := make([]LocaleState, 0, len(x.Locales))
	for _, l := range x.Locales {
		states = append(states, LocaleState{
			Locale:   l,
			Complete: x.presentLocaleFile(files, l.File),
		})
	}
	return states
}

func (x *Conventions) AllLocalesPresent(files []ChangedFile) bool {
	for _, s := range x.LocaleCompletion(files) {
		if !s.Complete {
			return false
		}
	}
	return true
}

// HasSourceLocale tells whether the diff touches the source locale file,
// which is what starts a translation round.
func (x *Conventions) HasSourceLocale(files []ChangedFile) bool {
	return x.presentLocaleFile(files, x.SourceLocale)
}
