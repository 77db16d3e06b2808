package resolve

// dependencyRow is one line of the development dependency table.
type dependencyRow struct {
	When    Condition
	Name    string
	Version string
}

// dependencyTable lists every package lintup may install. Only rows whose
// condition holds are installed, in table order.
var dependencyTable = []dependencyRow{
	// Babel toolchain for React projects, via babel-preset-react-app.
	{ReactBabel, "@babel/cli", "7.7.4"},
	{ReactBabel, "@babel/core", "7.7.4"},
	{ReactBabel, "@babel/plugin-proposal-class-properties", "7.7.4"},
	{ReactBabel, "@babel/plugin-proposal-decorators", "7.7.4"},
	{ReactBabel, "@babel/plugin-transform-runtime", "7.7.4"},
	{ReactBabel, "@babel/preset-env", "7.7.4"},
	{ReactBabel, "babel-plugin-macros", "2.7.1"},
	{ReactBabel, "babel-preset-react-app", "9.0.2"},

	// Babel toolchain for plain JavaScript projects.
	{GenericBabel, "@babel/cli", "7.7.4"},
	{GenericBabel, "@babel/core", "7.7.4"},
	{GenericBabel, "@babel/plugin-proposal-class-properties", "7.7.4"},
	{GenericBabel, "@babel/plugin-proposal-object-rest-spread", "7.7.4"},
	{GenericBabel, "@babel/plugin-syntax-dynamic-import", "7.7.4"},
	{GenericBabel, "@babel/plugin-transform-destructuring", "7.7.4"},
	{GenericBabel, "@babel/plugin-transform-runtime", "7.7.4"},
	{GenericBabel, "@babel/preset-env", "7.7.4"},
	{GenericBabel, "@babel/runtime", "7.7.4"},
	{GenericBabel, "babel-plugin-dynamic-import-node", "2.3.0"},
	{GenericBabel, "babel-plugin-macros", "2.7.1"},
	{GenericBabel, "core-js", "3.4.7"},

	// TypeScript compiler, lint integration and declaration bundling.
	{WithTypeScript, "@typescript-eslint/eslint-plugin", "2.9.0"},
	{WithTypeScript, "@typescript-eslint/parser", "2.9.0"},
	{WithTypeScript, "dts-bundle", "0.7.3"},
	{WithTypeScript, "typescript", "3.7.2"},

	// Lint, format and pre-commit tooling.
	{Always, "eslint", "6.7.1"},
	{Always, "eslint-config-prettier", "6.7.0"},
	{WithReact, "eslint-config-react-app", "5.0.2"},
	{WithReact, "eslint-plugin-flowtype", "4.5.2"},
	{Always, "eslint-plugin-import", "2.18.2"},
	{Always, "eslint-plugin-jsx-a11y", "6.2.3"},
	{Always, "eslint-plugin-prettier", "3.1.1"},
	{WithReact, "eslint-plugin-react", "7.16.0"},
	{WithReact, "eslint-plugin-react-hooks", "2.3.0"},
	{Always, "husky", "3.1.0"},
	{Always, "lint-staged", "9.5.0"},
	{Always, "prettier", "1.19.1"},
	{WithBabelBuild, "rimraf", "3.0.0"},
}

// Dependencies returns the development packages for flags. A package that
// several matching rows name is listed once, at its first position.
func Dependencies(flags FeatureFlags) []DependencySpec {
	flags = flags.Normalize()

	seen := make(map[string]bool)
	var deps []DependencySpec
	for _, row := range dependencyTable {
		if !row.When(flags) || seen[row.Name] {
			continue
		}
		seen[row.Name] = true
		deps = append(deps, DependencySpec{Name: row.Name, Version: row.Version})
	}
	return deps
}
