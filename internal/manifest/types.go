package manifest

// FileName is the manifest file name inside a project directory.
const FileName = "package.json"

// Top-level manifest keys touched by lintup.
const (
	KeyName            = "name"
	KeyScripts         = "scripts"
	KeyDependencies    = "dependencies"
	KeyDevDependencies = "devDependencies"
	KeyHusky           = "husky"
	KeyLintStaged      = "lint-staged"
	KeyBrowserslist    = "browserslist"
)

// Script is a single entry of the manifest's scripts mapping.
type Script struct {
	Name    string `json:"name" yaml:"name"`
	Command string `json:"command" yaml:"command"`
}

// Section is a top-level manifest key whose value is replaced whole.
type Section struct {
	Key   string `json:"key" yaml:"key"`
	Value any    `json:"value" yaml:"value"`
}

// Patch describes the changes merged into an existing manifest. Scripts are
// merged into the scripts mapping: existing entries with the same name are
// overwritten and all others are kept. Sections replace the top-level key.
type Patch struct {
	Scripts  []Script  `json:"scripts" yaml:"scripts"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Script returns the command for the named script in the patch.
func (p Patch) Script(name string) (string, bool) {
	for _, s := range p.Scripts {
		if s.Name == name {
			return s.Command, true
		}
	}
	return "", false
}

// Section returns the value of the named section in the patch.
func (p Patch) Section(key string) (any, bool) {
	for _, s := range p.Sections {
		if s.Key == key {
			return s.Value, true
		}
	}
	return nil, false
}
