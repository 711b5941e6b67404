package manifest

import "fmt"

// Fixed values every generated backend manifest carries.
const (
	EntryPoint  = "src/app.js"
	ModuleType  = "module"
	StartScript = "node ."
	DevScript   = "nodemon ."
)

// ApplyBackend sets the entry point, module mode, and start/dev scripts.
// Other fields are left untouched.
func (m *Manifest) ApplyBackend() error {
	if err := m.Set("main", EntryPoint); err != nil {
		return err
	}
	if err := m.Set("type", ModuleType); err != nil {
		return err
	}
	if err := m.SetScript("start", StartScript); err != nil {
		return err
	}
	return m.SetScript("dev", DevScript)
}

// SetProxy points the development server proxy at the backend port.
func (m *Manifest) SetProxy(port int) error {
	return m.Set("proxy", ProxyURL(port))
}

// ProxyURL returns the backend URL a client dev server proxies to.
func ProxyURL(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// Patch loads the manifest at path, applies fn, and stores it back.
func Patch(path string, fn func(*Manifest) error) (*Manifest, error) {
	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := fn(m); err != nil {
		return nil, fmt.Errorf("patching %s: %w", path, err)
	}
	if err := m.Store(path); err != nil {
		return nil, err
	}
	return m, nil
}
