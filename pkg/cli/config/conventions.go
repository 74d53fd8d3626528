package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/m-mizutani/goerr/v2"
	"github.com/nicepulls/nicepulls/pkg/domain/model"
	"github.com/nicepulls/nicepulls/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// conventionsSchema is closed, so a misspelled key in the file is an error.
const conventionsSchema = `
#Locale: {
	file: string & !=""
	flag: string | *""
}

#Conventions: {
	spec_marker?:               string & !=""
	locales_path?:              string & !=""
	source_locale?:             string & !=""
	locales?:                   [...#Locale]
	translation_branch_marker?: string & !=""
	fix_branch_prefix?:         string & !=""
	translation_title_prefix?:  string
	labels?: {
		lyriq?:             string & !=""
		has_translations?:  string & !=""
		translations_done?: string & !=""
	}
}
`

type Conventions struct {
	path string
}

func (x *Conventions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "conventions",
			Usage:       "CUE file overriding branch, locale and label conventions",
			Category:    "Conventions",
			Destination: &x.path,
			Sources:     cli.EnvVars("NICEPULLS_CONVENTIONS"),
		},
	}
}

func (x *Conventions) LogValue() slog.Value {
	return slog.GroupValue(slog.String("Path", x.path))
}

// New returns the default conventions unless a file is given.
func (x *Conventions) New() (*model.Conventions, error) {
	if x.path == "" {
		return model.DefaultConventions(), nil
	}

	raw, err := os.ReadFile(filepath.Clean(x.path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read conventions file", goerr.V("path", x.path))
	}
	return ParseConventions(x.path, raw)
}

// ParseConventions overlays the fields set in the CUE source on the defaults.
func ParseConventions(filename string, src []byte) (*model.Conventions, error) {
	cctx := cuecontext.New()
	schema := cctx.CompileString(conventionsSchema).LookupPath(cue.ParsePath("#Conventions"))
	if err := schema.Err(); err != nil {
		return nil, goerr.Wrap(err, "invalid conventions schema")
	}

	value := cctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to compile conventions", goerr.V("path", filename))
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "conventions do not match schema",
			goerr.V("path", filename), goerr.V("cause", err.Error()))
	}

	var overlay model.Conventions
	if err := unified.Decode(&overlay); err != nil {
		return nil, goerr.Wrap(err, "failed to decode conventions", goerr.V("path", filename))
	}

	cv := mergeConventions(model.DefaultConventions(), &overlay)
	if err := cv.Validate(); err != nil {
		return nil, err
	}
	return cv, nil
}

func mergeConventions(base, overlay *model.Conventions) *model.Conventions {
	setString := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	setString(&base.SpecMarker, overlay.SpecMarker)
	setString(&base.LocalesPath, overlay.LocalesPath)
	setString(&base.SourceLocale, overlay.SourceLocale)
	setString(&base.TranslationBranchMarker, overlay.TranslationBranchMarker)
	setString(&base.FixBranchPrefix, overlay.FixBranchPrefix)
	setString(&base.TranslationTitlePrefix, overlay.TranslationTitlePrefix)
	setString(&base.Labels.Lyriq, overlay.Labels.Lyriq)
	setString(&base.Labels.HasTranslations, overlay.Labels.HasTranslations)
	setString(&base.Labels.TranslationsDone, overlay.Labels.TranslationsDone)
	if len(overlay.Locales) > 0 {
		base.Locales = overlay.Locales
	}
	return base
}
