//go:build integration

package integration_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/expressgen-labs/expressgen/internal/answers"
	"github.com/expressgen-labs/expressgen/internal/project"
	"github.com/expressgen-labs/expressgen/internal/toolchain"
	"github.com/expressgen-labs/expressgen/internal/toolchain/toolchaintest"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // EXPRESSGEN_HOME: config.yaml lives here
	ParentDir string // where projects are created
}

// setupTestEnv creates isolated temp directories and points EXPRESSGEN_HOME
// at one of them. The env var is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		ParentDir: t.TempDir(),
	}
	t.Setenv("EXPRESSGEN_HOME", env.HomeDir)
	return env
}

// createProject runs the full scaffold for v with a recording fake runner.
func createProject(t *testing.T, env *testEnv, v answers.Values, opts project.Options) (*project.Result, *toolchaintest.Runner) {
	t.Helper()

	a, err := answers.Resolve(v)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	fake := &toolchaintest.Runner{}
	opts.ParentDir = env.ParentDir
	if opts.Port == 0 {
		opts.Port = 8080
	}
	if opts.DBURI == "" {
		opts.DBURI = "mongodb://localhost:27017/{{name}}"
	}
	opts.Logger = zaptest.NewLogger(t)

	ini := project.New(toolchain.NewNode(fake, "", "", opts.Logger), opts)
	result, err := ini.Run(context.Background(), a)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return result, fake
}

// requireNode skips the test unless a real Node toolchain is available.
func requireNode(t *testing.T) {
	t.Helper()
	for _, bin := range []string{"node", "npm"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not on PATH", bin)
		}
	}
}

// listFiles returns every regular file under root, relative and slash-separated.
func listFiles(t *testing.T, root string) []string {
	t.Helper()
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("walking %s: %v", root, err)
	}
	return files
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
