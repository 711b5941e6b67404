package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/expressgen-labs/expressgen/internal/manifest"
	"github.com/expressgen-labs/expressgen/internal/toolchain"
)

var checkManifest string

// lookPath is replaced in tests.
var lookPath = exec.LookPath

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the Node toolchain is ready",
	Long: `Verify that node, npm, and npx are on PATH and that Node satisfies ` + toolchain.MinNodeVersion + `.
Generated projects use ES modules ("type": "module"), which older Node releases lack.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := settings()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		var problems int
		if checkManifest != "" {
			problems += runManifestCheck(out, checkManifest)
		} else {
			problems += runToolchainCheck(cmd.Context(), out, &toolchain.ExecRunner{}, s.NpmBin, s.NpxBin)
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

// runToolchainCheck reports missing binaries and an outdated node. The
// version check needs node, so it is skipped when node is missing.
func runToolchainCheck(ctx context.Context, out io.Writer, r toolchain.Runner, npmBin, npxBin string) int {
	fmt.Fprintln(out, "Toolchain check:")
	problems := 0
	nodeFound := checkBinary(out, "node")
	if !nodeFound {
		problems++
	}
	for _, name := range []string{npmBin, npxBin} {
		if !checkBinary(out, name) {
			problems++
		}
	}
	if !nodeFound {
		return problems
	}

	version, err := toolchain.NodeVersion(ctx, r)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] node version: %v\n", err)
		return problems + 1
	}
	ok, err := toolchain.SatisfiesNode(version)
	switch {
	case err != nil:
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		problems++
	case !ok:
		fmt.Fprintf(out, "  [FAIL] node %s does not satisfy %s\n", version, toolchain.MinNodeVersion)
		problems++
	default:
		fmt.Fprintf(out, "  [ OK ] node %s satisfies %s\n", version, toolchain.MinNodeVersion)
	}
	return problems
}

func checkBinary(out io.Writer, name string) bool {
	path, err := lookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
	return true
}

func runManifestCheck(out io.Writer, path string) int {
	fmt.Fprintf(out, "Manifest validation: %s\n", path)

	m, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	issues, err := m.Validate()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	if len(issues) == 0 {
		fmt.Fprintf(out, "  [ OK ] Valid manifest: %s (v%s)\n", m.Name(), m.Version())
		return 0
	}

	fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(out, "    - %s\n", issue)
	}
	return len(issues)
}
