package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the oldest Node.js release with stable ES module
// support, which generated projects need for "type": "module".
const MinNodeVersion = ">= 14.13.0"

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

// SatisfiesNode reports whether version satisfies MinNodeVersion.
func SatisfiesNode(version string) (bool, error) {
	v, err := ParseVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", MinNodeVersion, err)
	}
	return c.Check(v), nil
}

// NodeVersion runs `node --version` and returns the trimmed output.
func NodeVersion(ctx context.Context, r Runner) (string, error) {
	out, err := r.Run(ctx, "", "node", "--version")
	if err != nil {
		return "", err
	}
	if out.ExitCode != 0 {
		return "", newCommandError("", "node", []string{"--version"}, out)
	}
	return strings.TrimSpace(out.Stdout), nil
}
