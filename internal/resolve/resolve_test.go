package resolve

import (
	"slices"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/lintup-dev/lintup/internal/document"
	"github.com/lintup-dev/lintup/internal/manifest"
)

// allFlags enumerates every combination of the three flags.
func allFlags() []FeatureFlags {
	var out []FeatureFlags
	for _, ts := range []bool{false, true} {
		for _, react := range []bool{false, true} {
			for _, babel := range []bool{false, true} {
				out = append(out, FeatureFlags{TypeScript: ts, React: react, Babel: babel})
			}
		}
	}
	return out
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.PackageName = "demo-lib"
	return opts
}

func mustResolve(t *testing.T, flags FeatureFlags) *Plan {
	t.Helper()
	plan, err := Resolve(flags, testOptions())
	if err != nil {
		t.Fatalf("Resolve(%s) error: %v", flags, err)
	}
	return plan
}

func stringList(t *testing.T, doc *document.Object, key string) []string {
	t.Helper()
	v, ok := doc.Get(key)
	if !ok {
		t.Fatalf("document has no %q", key)
	}
	list, ok := v.([]string)
	if !ok {
		t.Fatalf("%q is %T, want []string", key, v)
	}
	return list
}

func TestDefaultBabel(t *testing.T) {
	tests := []struct {
		ts, react bool
		want      bool
		asks      bool
	}{
		{false, false, false, true},
		{true, false, false, false},
		{false, true, true, false},
		{true, true, false, false},
	}
	for _, tt := range tests {
		if got := DefaultBabel(tt.ts, tt.react); got != tt.want {
			t.Errorf("DefaultBabel(%v, %v) = %v, want %v", tt.ts, tt.react, got, tt.want)
		}
		if got := AsksBabel(tt.ts, tt.react); got != tt.asks {
			t.Errorf("AsksBabel(%v, %v) = %v, want %v", tt.ts, tt.react, got, tt.asks)
		}
	}
}

func TestNormalize_KeepsExplicitBabelOnlyWhenAsked(t *testing.T) {
	got := FeatureFlags{Babel: true}.Normalize()
	if !got.Babel {
		t.Error("plain project should keep an explicit Babel answer")
	}
	got = FeatureFlags{TypeScript: true, Babel: true}.Normalize()
	if got.Babel {
		t.Error("TypeScript project must not keep Babel")
	}
	got = FeatureFlags{React: true, Babel: false}.Normalize()
	if !got.Babel {
		t.Error("React project implies Babel")
	}
}

func TestLintConfig_FlagGatedEntries(t *testing.T) {
	tsExtends := []string{"plugin:@typescript-eslint/recommended", "prettier/@typescript-eslint"}
	reactExtends := []string{"react-app", "prettier/react"}
	tsPlugins := []string{"@typescript-eslint"}
	reactPlugins := []string{"react", "react-hooks"}

	for _, flags := range allFlags() {
		t.Run(flags.String(), func(t *testing.T) {
			doc := LintConfig(flags)
			extends := stringList(t, doc, "extends")
			plugins := stringList(t, doc, "plugins")

			for _, e := range tsExtends {
				if slices.Contains(extends, e) != flags.TypeScript {
					t.Errorf("extends contains %q = %v, want %v", e, !flags.TypeScript, flags.TypeScript)
				}
			}
			for _, e := range reactExtends {
				if slices.Contains(extends, e) != flags.React {
					t.Errorf("extends contains %q = %v, want %v", e, !flags.React, flags.React)
				}
			}
			for _, p := range tsPlugins {
				if slices.Contains(plugins, p) != flags.TypeScript {
					t.Errorf("plugins contains %q = %v, want %v", p, !flags.TypeScript, flags.TypeScript)
				}
			}
			for _, p := range reactPlugins {
				if slices.Contains(plugins, p) != flags.React {
					t.Errorf("plugins contains %q = %v, want %v", p, !flags.React, flags.React)
				}
			}

			// The formatter integration group closes the extends list.
			last := extends[len(extends)-1]
			if !strings.HasPrefix(last, "prettier") {
				t.Errorf("last extends entry = %q, want a prettier entry", last)
			}

			_, hasParser := doc.Get("parser")
			if hasParser != flags.TypeScript {
				t.Errorf("parser present = %v, want %v", hasParser, flags.TypeScript)
			}
		})
	}
}

func TestLintConfig_FullTypeScriptReact(t *testing.T) {
	doc := LintConfig(FeatureFlags{TypeScript: true, React: true})

	wantExtends := []string{
		"eslint:recommended",
		"plugin:@typescript-eslint/recommended",
		"react-app",
		"plugin:jsx-a11y/recommended",
		"prettier",
		"prettier/@typescript-eslint",
		"prettier/react",
	}
	if diff := cmp.Diff(wantExtends, stringList(t, doc, "extends")); diff != "" {
		t.Errorf("extends mismatch (-want +got):\n%s", diff)
	}

	rules, _ := doc.GetObject("rules")
	if diff := cmp.Diff([]string{
		"prettier/prettier",
		"@typescript-eslint/interface-name-prefix",
		"@typescript-eslint/no-empty-interface",
	}, rules.Keys()); diff != "" {
		t.Errorf("rule keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLintFile_IsCommonJSModule(t *testing.T) {
	plan := mustResolve(t, FeatureFlags{})
	f, ok := plan.File(ESLintFile)
	if !ok {
		t.Fatal(".eslintrc.js not generated")
	}
	if !strings.HasPrefix(f.Contents, "module.exports = {") {
		t.Errorf("unexpected prefix: %q", f.Contents[:20])
	}
	if !strings.HasSuffix(f.Contents, "};\n") {
		t.Errorf("unexpected suffix in %q", f.Contents)
	}
}

func TestResolve_TSConfigOnlyWithTypeScript(t *testing.T) {
	for _, flags := range allFlags() {
		plan := mustResolve(t, flags)
		_, ok := plan.File(TSConfigFile)
		if ok != flags.TypeScript {
			t.Errorf("%s: tsconfig.json generated = %v, want %v", flags, ok, flags.TypeScript)
		}
	}
}

func TestTypeScriptConfig_IncludeRootIsConfigurable(t *testing.T) {
	opts := testOptions()
	opts.TypesInclude = "./src/lib/**/*"
	opts.OutDir = "dist"

	doc := TypeScriptConfig(opts)
	if diff := cmp.Diff([]string{"./src/lib/**/*"}, stringList(t, doc, "include")); diff != "" {
		t.Errorf("include mismatch (-want +got):\n%s", diff)
	}
	compiler, _ := doc.GetObject("compilerOptions")
	if out, _ := compiler.GetString("outDir"); out != "./dist" {
		t.Errorf("outDir = %q, want ./dist", out)
	}
	if v, _ := compiler.Get("strict"); v != true {
		t.Errorf("strict = %v, want true", v)
	}
}

func TestTypeScriptConfig_IncludeFollowsSourceDir(t *testing.T) {
	opts := testOptions()
	opts.SourceDir = "app"
	opts.TypesInclude = ""

	doc := TypeScriptConfig(opts)
	if diff := cmp.Diff([]string{"./app/**/*"}, stringList(t, doc, "include")); diff != "" {
		t.Errorf("include mismatch (-want +got):\n%s", diff)
	}
}

func TestIncludeFor(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"src", "./src/**/*"},
		{"./app/", "./app/**/*"},
		{"packages/core", "./packages/core/**/*"},
		{".", "./**/*"},
	}
	for _, tt := range tests {
		if got := IncludeFor(tt.dir); got != tt.want {
			t.Errorf("IncludeFor(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestSelectTemplate_ExactlyOneBranch(t *testing.T) {
	for _, flags := range allFlags() {
		got := SelectTemplate(flags)

		var want BuildTemplate
		switch {
		case flags.TypeScript:
			want = TemplateTypeScript
		case flags.React:
			want = TemplateReactBabel
		case flags.Babel:
			want = TemplateGenericBabel
		default:
			want = TemplateNone
		}
		if got != want {
			t.Errorf("SelectTemplate(%s) = %s, want %s", flags, got, want)
		}

		plan := mustResolve(t, flags)
		_, hasBabel := plan.File(BabelFile)
		wantBabel := want == TemplateReactBabel || want == TemplateGenericBabel
		if hasBabel != wantBabel {
			t.Errorf("%s: babel.config.js generated = %v, want %v", flags, hasBabel, wantBabel)
		}
	}
}

func TestRenderBuildTemplate_Contents(t *testing.T) {
	react, ok, err := RenderBuildTemplate(TemplateReactBabel)
	if err != nil || !ok {
		t.Fatalf("RenderBuildTemplate(react) = %v, %v", ok, err)
	}
	for _, want := range []string{
		"require('babel-preset-react-app')",
		`process.env.NODE_ENV || "development"`,
		`["development","test","production"].includes(env)`,
		"helpers: false",
	} {
		if !strings.Contains(react.Contents, want) {
			t.Errorf("react template missing %q", want)
		}
	}

	generic, ok, err := RenderBuildTemplate(TemplateGenericBabel)
	if err != nil || !ok {
		t.Fatalf("RenderBuildTemplate(generic) = %v, %v", ok, err)
	}
	for _, want := range []string{
		"@babel/plugin-proposal-class-properties",
		"@babel/plugin-proposal-object-rest-spread",
		"@babel/plugin-transform-runtime",
		"@babel/plugin-syntax-dynamic-import",
		"corejs: 3",
	} {
		if !strings.Contains(generic.Contents, want) {
			t.Errorf("generic template missing %q", want)
		}
	}

	for _, tmpl := range []BuildTemplate{TemplateNone, TemplateTypeScript} {
		if _, ok, err := RenderBuildTemplate(tmpl); ok || err != nil {
			t.Errorf("RenderBuildTemplate(%s) = %v, %v; want no file", tmpl, ok, err)
		}
	}
}

func TestDependencies_MatchTableConditions(t *testing.T) {
	for _, flags := range allFlags() {
		t.Run(flags.String(), func(t *testing.T) {
			norm := flags.Normalize()
			deps := Dependencies(flags)

			names := make(map[string]bool)
			for _, d := range deps {
				if names[d.Name] {
					t.Errorf("duplicate dependency %q", d.Name)
				}
				names[d.Name] = true
			}

			for _, row := range dependencyTable {
				want := false
				for _, other := range dependencyTable {
					if other.Name == row.Name && other.When(norm) {
						want = true
					}
				}
				if names[row.Name] != want {
					t.Errorf("%s included = %v, want %v", row.Name, names[row.Name], want)
				}
			}
		})
	}
}

func TestDependencies_Deterministic(t *testing.T) {
	for _, flags := range allFlags() {
		first := Dependencies(flags)
		second := Dependencies(flags)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("%s: dependency list changed between runs (-first +second):\n%s", flags, diff)
		}

		a := mustResolve(t, flags)
		b := mustResolve(t, flags)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: plan changed between runs (-first +second):\n%s", flags, diff)
		}
	}
}

func TestDependencyTable_VersionsArePinnedSemver(t *testing.T) {
	for _, row := range dependencyTable {
		if row.Version == LatestVersion {
			continue
		}
		if _, err := semver.StrictNewVersion(row.Version); err != nil {
			t.Errorf("%s: version %q is not strict semver: %v", row.Name, row.Version, err)
		}
	}
}

func TestPlan_PackageArgs(t *testing.T) {
	plan := mustResolve(t, FeatureFlags{TypeScript: true})
	args := plan.PackageArgs()
	if !slices.Contains(args, "typescript@3.7.2") {
		t.Errorf("PackageArgs missing typescript@3.7.2: %v", args)
	}
	if len(args) != len(plan.Dependencies) {
		t.Errorf("len(PackageArgs) = %d, want %d", len(args), len(plan.Dependencies))
	}
}

func TestManifestPatch_BuildFamilies(t *testing.T) {
	babelScripts := []string{ScriptBuildClean, ScriptBuildBabel}
	tsScripts := []string{ScriptBuildTS, ScriptBuildTypes}

	for _, flags := range allFlags() {
		t.Run(flags.String(), func(t *testing.T) {
			p := ManifestPatch(flags, testOptions())

			for _, name := range []string{ScriptLint, ScriptLintFix} {
				if _, ok := p.Script(name); !ok {
					t.Errorf("missing %s script", name)
				}
			}

			wantBabel := (flags.React && !flags.TypeScript) || (flags.Babel && !flags.TypeScript)
			for _, name := range babelScripts {
				if _, ok := p.Script(name); ok != wantBabel {
					t.Errorf("%s present = %v, want %v", name, ok, wantBabel)
				}
			}
			for _, name := range tsScripts {
				if _, ok := p.Script(name); ok != flags.TypeScript {
					t.Errorf("%s present = %v, want %v", name, ok, flags.TypeScript)
				}
			}

			_, hasBuild := p.Script(ScriptBuild)
			if hasBuild != (wantBabel || flags.TypeScript) {
				t.Errorf("build present = %v", hasBuild)
			}

			if _, ok := p.Section(manifest.KeyHusky); !ok {
				t.Error("missing husky section")
			}
			if _, ok := p.Section(manifest.KeyLintStaged); !ok {
				t.Error("missing lint-staged section")
			}
			if _, ok := p.Section(manifest.KeyBrowserslist); ok != flags.React {
				t.Errorf("browserslist present = %v, want %v", ok, flags.React)
			}
		})
	}
}

func TestManifestPatch_QuotesPackageName(t *testing.T) {
	opts := testOptions()
	opts.PackageName = "evil;rm -rf ~"

	p := ManifestPatch(FeatureFlags{TypeScript: true}, opts)
	cmd, _ := p.Script(ScriptBuildTypes)
	want := "dts-bundle --name 'evil;rm -rf ~' --main types/index.d.ts --out ../index.d.ts"
	if cmd != want {
		t.Errorf("build:types = %q, want %q", cmd, want)
	}
}

func TestManifestPatch_ScriptRunner(t *testing.T) {
	opts := testOptions()
	opts.ScriptRunner = "yarn"

	p := ManifestPatch(FeatureFlags{React: true}, opts)
	build, _ := p.Script(ScriptBuild)
	if build != "yarn build:clean && yarn build:babel" {
		t.Errorf("build = %q", build)
	}
}

func TestScenario_NoFlags(t *testing.T) {
	flags := FeatureFlags{}
	plan := mustResolve(t, flags)

	var paths []string
	for _, f := range plan.Files {
		paths = append(paths, f.Path)
	}
	if diff := cmp.Diff([]string{ESLintFile}, paths); diff != "" {
		t.Errorf("generated files mismatch (-want +got):\n%s", diff)
	}

	p := ManifestPatch(flags, testOptions())
	var names []string
	for _, s := range p.Scripts {
		names = append(names, s.Name)
	}
	if diff := cmp.Diff([]string{ScriptLint, ScriptLintFix}, names); diff != "" {
		t.Errorf("scripts mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario_TypeScriptOnly(t *testing.T) {
	flags := FeatureFlags{TypeScript: true}
	if AsksBabel(flags.TypeScript, flags.React) {
		t.Error("Babel question should be skipped for TypeScript")
	}

	plan := mustResolve(t, flags)
	if plan.Flags.Babel {
		t.Error("Babel should resolve to false")
	}

	var paths []string
	for _, f := range plan.Files {
		paths = append(paths, f.Path)
	}
	if diff := cmp.Diff([]string{ESLintFile, TSConfigFile}, paths); diff != "" {
		t.Errorf("generated files mismatch (-want +got):\n%s", diff)
	}

	p := ManifestPatch(flags, testOptions())
	for _, name := range []string{ScriptBuild, ScriptBuildTS, ScriptBuildTypes} {
		if _, ok := p.Script(name); !ok {
			t.Errorf("missing %s", name)
		}
	}
	lint, _ := p.Script(ScriptLint)
	if lint != "eslint --ext .ts,.tsx src" {
		t.Errorf("lint = %q", lint)
	}
	staged, _ := p.Section(manifest.KeyLintStaged)
	if _, ok := staged.(*document.Object).Get("src/**/*.{ts,tsx}"); !ok {
		t.Errorf("lint-staged keys = %v", staged.(*document.Object).Keys())
	}
}

func TestScenario_ReactOnly(t *testing.T) {
	flags := FeatureFlags{React: true}
	plan := mustResolve(t, flags)

	if !plan.Flags.Babel {
		t.Error("Babel should resolve to true for React")
	}
	if plan.Template != TemplateReactBabel {
		t.Errorf("template = %s, want react-babel", plan.Template)
	}
	f, ok := plan.File(BabelFile)
	if !ok || !strings.Contains(f.Contents, "babel-preset-react-app") {
		t.Error("babel.config.js should use the React preset template")
	}

	p := ManifestPatch(flags, testOptions())
	for _, name := range []string{ScriptBuild, ScriptBuildClean, ScriptBuildBabel} {
		if _, ok := p.Script(name); !ok {
			t.Errorf("missing %s", name)
		}
	}
	lint, _ := p.Script(ScriptLintFix)
	if lint != "eslint --ext .js,.jsx src --fix" {
		t.Errorf("lint:fix = %q", lint)
	}
}
