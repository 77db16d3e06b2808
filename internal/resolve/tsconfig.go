package resolve

import (
	"path"
	"strings"

	"github.com/lintup-dev/lintup/internal/document"
)

// TSConfigFile is the type-checker config written when TypeScript is enabled.
const TSConfigFile = "tsconfig.json"

// TypeScriptConfig derives tsconfig.json. The include root and output
// directories come from opts; everything else is fixed.
func TypeScriptConfig(opts Options) *document.Object {
	opts = opts.withDefaults()

	compilerOptions := document.NewObject().
		Set("declaration", true).
		Set("declarationDir", opts.TypesDir).
		Set("declarationMap", true).
		Set("target", "esnext").
		Set("lib", []string{"dom", "dom.iterable", "esnext"}).
		Set("allowJs", false).
		Set("skipLibCheck", true).
		Set("esModuleInterop", true).
		Set("allowSyntheticDefaultImports", true).
		Set("strict", true).
		Set("forceConsistentCasingInFileNames", true).
		Set("module", "esnext").
		Set("moduleResolution", "node").
		Set("resolveJsonModule", true).
		Set("isolatedModules", true).
		Set("noEmit", true).
		Set("jsx", "react").
		Set("noFallthroughCasesInSwitch", true).
		Set("noImplicitReturns", true).
		Set("outDir", relativeDir(opts.OutDir)).
		Set("removeComments", true).
		Set("sourceMap", true)

	return document.NewObject().
		Set("compilerOptions", compilerOptions).
		Set("exclude", []string{
			"node_modules",
			"**/__tests__",
			"**/*.spec.js",
			"**/*.test.js",
			"**/__snapshots__",
		}).
		Set("include", []string{opts.TypesInclude})
}

// IncludeFor returns the tsconfig include glob covering every file below
// sourceDir, e.g. "./src/**/*" for "src".
func IncludeFor(sourceDir string) string {
	dir := relativeDir(sourceDir)
	if dir == "./." {
		return "./**/*"
	}
	return strings.TrimSuffix(dir, "/") + "/**/*"
}

// relativeDir renders dir as a "./"-prefixed slash path.
func relativeDir(dir string) string {
	dir = path.Clean(strings.ReplaceAll(dir, "\\", "/"))
	if strings.HasPrefix(dir, "./") || strings.HasPrefix(dir, "../") || strings.HasPrefix(dir, "/") {
		return dir
	}
	return "./" + dir
}

func typeScriptFile(opts Options) (GeneratedFile, error) {
	contents, err := document.MarshalIndent(TypeScriptConfig(opts))
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Path: TSConfigFile, Contents: string(contents)}, nil
}
