package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the manifest file name npm reads.
const FileName = "package.json"

// Manifest is a package.json document.
type Manifest struct {
	root Object
}

// New returns the minimal manifest `npm init -y` would produce for name.
func New(name string) *Manifest {
	m := &Manifest{}
	_ = m.root.Set("name", name)
	_ = m.root.Set("version", "1.0.0")
	_ = m.root.Set("description", "")
	_ = m.root.Set("main", "index.js")
	_ = m.root.Set("scripts", map[string]string{})
	_ = m.root.Set("keywords", []string{})
	_ = m.root.Set("author", "")
	_ = m.root.Set("license", "ISC")
	return m
}

// Parse decodes a manifest from JSON bytes.
func Parse(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := json.Unmarshal(data, &m.root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// PathIn returns the manifest path inside dir.
func PathIn(dir string) string {
	return filepath.Join(dir, FileName)
}

// Bytes renders the manifest with two-space indentation and a trailing newline.
func (m *Manifest) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m.root); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", FileName, err)
	}
	return buf.Bytes(), nil
}

// Store writes the manifest to path, replacing any existing file.
func (m *Manifest) Store(path string) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// Keys returns the top-level field names in document order.
func (m *Manifest) Keys() []string { return m.root.Keys() }

// Has reports whether a top-level field is present.
func (m *Manifest) Has(key string) bool { return m.root.Has(key) }

// Get returns a top-level string field, or "" when absent or not a string.
func (m *Manifest) Get(key string) string { return m.root.String(key) }

// Name returns the package name.
func (m *Manifest) Name() string { return m.Get("name") }

// Version returns the package version.
func (m *Manifest) Version() string { return m.Get("version") }

// Set stores a top-level field.
func (m *Manifest) Set(key string, v any) error { return m.root.Set(key, v) }

// Script returns the command registered under scripts.<name>.
func (m *Manifest) Script(name string) string {
	scripts, err := m.root.Object("scripts")
	if err != nil {
		return ""
	}
	return scripts.String(name)
}

// SetScript sets scripts.<name>, creating the scripts object if needed.
func (m *Manifest) SetScript(name, command string) error {
	scripts, err := m.root.Object("scripts")
	if err != nil {
		return err
	}
	if err := scripts.Set(name, command); err != nil {
		return err
	}
	return m.root.Set("scripts", scripts)
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path, so a failed write leaves the original intact.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".expressgen-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}
