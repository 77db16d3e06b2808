package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/lintup-dev/lintup/internal/document"
)

// Manifest is a parsed package.json. The underlying document keeps every
// key the user had, in the order they had it.
type Manifest struct {
	doc *document.Object
}

// New returns a manifest backed by doc.
func New(doc *document.Object) *Manifest {
	if doc == nil {
		doc = document.NewObject()
	}
	return &Manifest{doc: doc}
}

// Path returns the manifest path for a project directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists reports whether dir contains a package.json.
func Exists(dir string) (bool, error) {
	_, err := os.Stat(Path(dir))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking manifest in %s: %w", dir, err)
}

// Load reads and parses the package.json in dir.
func Load(dir string) (*Manifest, error) {
	path := Path(dir)
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse decodes package.json bytes. path is only used in error messages.
func Parse(data []byte, path string) (*Manifest, error) {
	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return New(doc), nil
}

// Document returns the underlying ordered document.
func (m *Manifest) Document() *document.Object {
	return m.doc
}

// Name returns the declared package name, or "" when absent.
func (m *Manifest) Name() string {
	name, _ := m.doc.GetString(KeyName)
	return name
}

// NameOr returns the declared package name, falling back to the base name
// of dir when the manifest has none.
func (m *Manifest) NameOr(dir string) string {
	if name := m.Name(); name != "" {
		return name
	}
	return filepath.Base(filepath.Clean(dir))
}

// Scripts returns the scripts mapping, or nil when absent.
func (m *Manifest) Scripts() *document.Object {
	scripts, _ := m.doc.GetObject(KeyScripts)
	return scripts
}

// HasDependency reports whether name appears in dependencies,
// devDependencies or peerDependencies.
func (m *Manifest) HasDependency(name string) bool {
	for _, key := range []string{KeyDependencies, KeyDevDependencies, "peerDependencies"} {
		deps, ok := m.doc.GetObject(key)
		if !ok {
			continue
		}
		if _, ok := deps.Get(name); ok {
			return true
		}
	}
	return false
}

// Marshal encodes the manifest the way npm writes it: two-space indent and a
// trailing newline.
func (m *Manifest) Marshal() ([]byte, error) {
	return document.MarshalIndent(m.doc)
}

// Save atomically replaces the package.json in dir.
func (m *Manifest) Save(dir string) error {
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	path := Path(dir)
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
