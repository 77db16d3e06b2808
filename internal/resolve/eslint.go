package resolve

import "github.com/lintup-dev/lintup/internal/document"

// ESLintFile is the lint config written into the project root.
const ESLintFile = ".eslintrc.js"

var lintExtends = []entry{
	{Always, "eslint:recommended"},
	{WithTypeScript, "plugin:@typescript-eslint/recommended"},
	{WithReact, "react-app"},
	{Always, "plugin:jsx-a11y/recommended"},
	// Formatter integration goes last so it can switch off conflicting rules.
	{Always, "prettier"},
	{WithTypeScript, "prettier/@typescript-eslint"},
	{WithReact, "prettier/react"},
}

var lintPlugins = []entry{
	{WithTypeScript, "@typescript-eslint"},
	{WithReact, "react"},
	{WithReact, "react-hooks"},
	{Always, "jsx-a11y"},
	{Always, "prettier"},
}

var lintSteps = []Step{
	{
		Name: "typescript-parser",
		When: WithTypeScript,
		Apply: func(doc *document.Object) {
			doc.Set("parser", "@typescript-eslint/parser")
		},
	},
	{
		Name: "parser-options",
		When: Always,
		Apply: func(doc *document.Object) {
			doc.Set("parserOptions", document.NewObject().
				Set("ecmaFeatures", document.NewObject()).
				Set("ecmaVersion", 2020).
				Set("sourceType", "module"))
		},
	},
	{
		Name: "react-jsx",
		When: WithReact,
		Apply: func(doc *document.Object) {
			opts, _ := doc.GetObject("parserOptions")
			features, _ := opts.GetObject("ecmaFeatures")
			features.Set("jsx", true)
		},
	},
	{
		Name: "env",
		When: Always,
		Apply: func(doc *document.Object) {
			doc.Set("env", document.NewObject().
				Set("jest", true).
				Set("browser", true).
				Set("es6", true).
				Set("mocha", true).
				Set("node", true))
		},
	},
	{
		Name: "react-settings",
		When: WithReact,
		Apply: func(doc *document.Object) {
			doc.Set("settings", document.NewObject().
				Set("react", document.NewObject().Set("version", "detect")))
		},
	},
	{
		Name: "prettier-rules",
		When: Always,
		Apply: func(doc *document.Object) {
			doc.Set("rules", document.NewObject().Set("prettier/prettier", "error"))
		},
	},
	{
		Name: "typescript-rules",
		When: WithTypeScript,
		Apply: func(doc *document.Object) {
			rules, _ := doc.GetObject("rules")
			rules.Set("@typescript-eslint/interface-name-prefix", []any{
				"error",
				document.NewObject().Set("prefixWithI", "always"),
			})
			rules.Set("@typescript-eslint/no-empty-interface", "warn")
		},
	},
}

// LintConfig derives the ESLint configuration document.
func LintConfig(flags FeatureFlags) *document.Object {
	doc, _ := lintConfig(flags)
	return doc
}

// lintConfig also returns the names of the builder steps that ran.
func lintConfig(flags FeatureFlags) (*document.Object, []string) {
	flags = flags.Normalize()

	base := document.NewObject().
		Set("extends", selectEntries(flags, lintExtends)).
		Set("plugins", selectEntries(flags, lintPlugins))

	return NewBuilder(lintSteps...).Build(base, flags)
}

func lintFile(flags FeatureFlags) (GeneratedFile, []string, error) {
	doc, steps := lintConfig(flags)
	contents, err := document.ModuleExports(doc)
	if err != nil {
		return GeneratedFile{}, nil, err
	}
	return GeneratedFile{Path: ESLintFile, Contents: string(contents)}, steps, nil
}
