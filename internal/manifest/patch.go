package manifest

import "github.com/lintup-dev/lintup/internal/document"

// Apply merges p into the manifest. A missing or non-object scripts value is
// replaced by a fresh mapping.
func (m *Manifest) Apply(p Patch) {
	scripts, ok := m.doc.GetObject(KeyScripts)
	if !ok {
		scripts = document.NewObject()
		m.doc.Set(KeyScripts, scripts)
	}
	for _, s := range p.Scripts {
		scripts.Set(s.Name, s.Command)
	}

	for _, s := range p.Sections {
		m.doc.Set(s.Key, s.Value)
	}
}
