package resolve

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	"github.com/lintup-dev/lintup/internal/document"
)

// BabelFile is the build-tool config written for Babel builds.
const BabelFile = "babel.config.js"

//go:embed templates/*.tmpl
var templateFS embed.FS

// babelData is the template input. Values reach the output only through the
// json function, so they are always valid JavaScript literals.
type babelData struct {
	DefaultEnv string
	KnownEnvs  []string
	Helpers    bool
	CoreJS     int
}

var templateFuncs = template.FuncMap{
	"json": func(v any) (string, error) {
		b, err := document.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	},
}

// SelectTemplate picks exactly one build-tool branch for flags.
func SelectTemplate(flags FeatureFlags) BuildTemplate {
	flags = flags.Normalize()
	switch {
	case flags.TypeScript:
		return TemplateTypeScript
	case flags.React:
		return TemplateReactBabel
	case flags.Babel:
		return TemplateGenericBabel
	default:
		return TemplateNone
	}
}

// templateFileName returns the embedded template for t, or "" when t writes
// no file.
func templateFileName(t BuildTemplate) string {
	switch t {
	case TemplateReactBabel:
		return "templates/babel-react.js.tmpl"
	case TemplateGenericBabel:
		return "templates/babel-generic.js.tmpl"
	default:
		return ""
	}
}

// RenderBuildTemplate renders the Babel config for t. The second return is
// false when t generates no file.
func RenderBuildTemplate(t BuildTemplate) (GeneratedFile, bool, error) {
	name := templateFileName(t)
	if name == "" {
		return GeneratedFile{}, false, nil
	}

	tmpl, err := template.New(t.String()).Funcs(templateFuncs).ParseFS(templateFS, name)
	if err != nil {
		return GeneratedFile{}, false, fmt.Errorf("parsing template %s: %w", name, err)
	}

	data := babelData{
		DefaultEnv: "development",
		KnownEnvs:  []string{"development", "test", "production"},
		Helpers:    false,
		CoreJS:     3,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, path.Base(name), data); err != nil {
		return GeneratedFile{}, false, fmt.Errorf("executing template %s: %w", name, err)
	}

	return GeneratedFile{Path: BabelFile, Contents: buf.String()}, true, nil
}
