package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Output captures the result of an external command.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes an external command in dir.
//
// A process that runs and exits non-zero is not an error: the exit code is
// reported in Output. The error return is for failures to start the process
// (binary not found, ctx canceled, io failure).
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (*Output, error)
}

// ExecRunner is the os/exec implementation of Runner.
type ExecRunner struct {
	// Stdout and Stderr receive a live copy of the process output when set.
	Stdout io.Writer
	Stderr io.Writer
	// Env holds extra KEY=VALUE entries layered over the current environment.
	Env []string
}

// Run executes name with args inside dir.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (*Output, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	env := os.Environ()
	for _, kv := range r.Env {
		k, v, _ := strings.Cut(kv, "=")
		env = setEnv(env, k, v)
	}
	cmd.Env = env

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = teeTo(&stdoutBuf, r.Stdout)
	cmd.Stderr = teeTo(&stderrBuf, r.Stderr)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && ctx.Err() == nil {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}

	return output, nil
}

func teeTo(buf *bytes.Buffer, w io.Writer) io.Writer {
	if w == nil {
		return buf
	}
	return io.MultiWriter(buf, w)
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
