package toolchain

import (
	"fmt"
	"strings"
)

// stderrTailLines bounds how much process stderr is kept in a CommandError.
const stderrTailLines = 15

// CommandError reports an external command that exited non-zero.
type CommandError struct {
	Dir      string
	Command  string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += ":\n" + e.Stderr
	}
	return msg
}

func newCommandError(dir, name string, args []string, out *Output) *CommandError {
	return &CommandError{
		Dir:      dir,
		Command:  strings.Join(append([]string{name}, args...), " "),
		ExitCode: out.ExitCode,
		Stderr:   tail(out.Stderr, stderrTailLines),
	}
}

// tail returns the last n non-empty lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, l)
		}
	}
	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return strings.Join(kept, "\n")
}
