package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const npmInitOutput = `{
  "name": "demo",
  "version": "1.0.0",
  "description": "",
  "main": "index.js",
  "scripts": {
    "test": "echo \"Error: no test specified\" && exit 1"
  },
  "keywords": [],
  "author": "",
  "license": "ISC"
}
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestApplyBackendFixedValues(t *testing.T) {
	path := writeManifest(t, npmInitOutput)

	m, err := Patch(path, (*Manifest).ApplyBackend)
	require.NoError(t, err)

	reloaded, err := Load(path)
	require.NoError(t, err)
	for _, mm := range []*Manifest{m, reloaded} {
		assert.Equal(t, "src/app.js", mm.Get("main"))
		assert.Equal(t, "module", mm.Get("type"))
		assert.Equal(t, "node .", mm.Script("start"))
		assert.Equal(t, "nodemon .", mm.Script("dev"))
	}
}

func TestRoundTripPreservesOrderAndUnknownFields(t *testing.T) {
	path := writeManifest(t, npmInitOutput)

	_, err := Patch(path, (*Manifest).ApplyBackend)
	require.NoError(t, err)

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"name", "version", "description", "main", "scripts", "keywords", "author", "license", "type"},
		m.Keys())
	assert.Equal(t, "ISC", m.Get("license"))
	assert.Equal(t, `echo "Error: no test specified" && exit 1`, m.Script("test"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "&& exit 1", "scripts must not be HTML-escaped")
	assert.True(t, strings.HasSuffix(string(data), "}\n"))
	assert.Contains(t, string(data), "\n  \"scripts\": {\n    \"test\"")
}

func TestApplyBackendWithoutScripts(t *testing.T) {
	m, err := Parse([]byte(`{"name": "demo"}`))
	require.NoError(t, err)
	require.NoError(t, m.ApplyBackend())

	assert.Equal(t, "node .", m.Script("start"))
	assert.Equal(t, "nodemon .", m.Script("dev"))
}

func TestSetProxy(t *testing.T) {
	m := New("client")
	assert.False(t, m.Has("proxy"))

	require.NoError(t, m.SetProxy(8080))
	assert.Equal(t, "http://localhost:8080", m.Get("proxy"))
}

func TestNewMatchesNpmInitShape(t *testing.T) {
	m := New("demo")
	assert.Equal(t, "demo", m.Name())
	assert.Equal(t, "1.0.0", m.Version())
	assert.Equal(t, []string{"name", "version", "description", "main", "scripts", "keywords", "author", "license"}, m.Keys())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(`[1, 2]`))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"name": `))
	assert.Error(t, err)

	m, err := Parse([]byte(`{"scripts": "oops"}`))
	require.NoError(t, err)
	assert.Error(t, m.SetScript("dev", "nodemon ."))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading manifest")
}

func TestValidate(t *testing.T) {
	m := New("demo")
	require.NoError(t, m.ApplyBackend())

	warnings, err := m.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	bad := New("Demo")
	require.NoError(t, bad.ApplyBackend())
	require.NoError(t, bad.Set("version", "one"))

	warnings, err = bad.Validate()
	require.NoError(t, err)
	joined := strings.Join(warnings, "\n")
	assert.Contains(t, joined, "/name")
	assert.Contains(t, joined, "not valid semver")
}

func TestStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, New("demo").Store(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}
