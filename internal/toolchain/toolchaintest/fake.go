// Package toolchaintest provides a recording fake for toolchain.Runner.
package toolchaintest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/expressgen-labs/expressgen/internal/toolchain"
)

// Call records one Run invocation.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line, e.g. "npm install express".
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner records calls and simulates the side effects of the npm commands
// the scaffolder relies on: `npm init -y` writes a package.json and
// `npx ... create-react-app <name>` writes <name>/package.json.
type Runner struct {
	mu    sync.Mutex
	calls []Call

	// Fail maps a command line prefix to the exit code it should return.
	Fail map[string]int
	// Stdout is returned for every successful call.
	Stdout string
}

// Run implements toolchain.Runner.
func (r *Runner) Run(_ context.Context, dir, name string, args ...string) (*toolchain.Output, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()

	line := call.String()
	for prefix, code := range r.Fail {
		if strings.HasPrefix(line, prefix) {
			return &toolchain.Output{ExitCode: code, Stderr: "npm ERR! simulated failure"}, nil
		}
	}

	if err := simulate(dir, args); err != nil {
		return nil, err
	}
	return &toolchain.Output{Stdout: r.Stdout}, nil
}

// Calls returns a copy of the recorded calls in invocation order.
func (r *Runner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Lines returns the recorded calls rendered as command lines.
func (r *Runner) Lines() []string {
	var lines []string
	for _, c := range r.Calls() {
		lines = append(lines, c.String())
	}
	return lines
}

func simulate(dir string, args []string) error {
	switch {
	case len(args) >= 2 && args[0] == "init" && args[1] == "-y":
		return writePackageJSON(dir, filepath.Base(dir))
	case len(args) >= 2 && args[len(args)-2] == "create-react-app":
		name := args[len(args)-1]
		if err := os.MkdirAll(filepath.Join(dir, name), 0755); err != nil {
			return err
		}
		return writePackageJSON(filepath.Join(dir, name), name)
	}
	return nil
}

func writePackageJSON(dir, name string) error {
	content := `{
  "name": "` + name + `",
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
	return os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644)
}
