package toolchain

import (
	"context"

	"go.uber.org/zap"
)

// Node wraps the npm and npx binaries behind a Runner.
type Node struct {
	Runner Runner
	NpmBin string
	NpxBin string
	Logger *zap.Logger
}

// NewNode returns a Node using the given binaries. Empty names fall back to
// "npm" and "npx"; a nil logger is replaced by a no-op logger.
func NewNode(r Runner, npmBin, npxBin string, logger *zap.Logger) *Node {
	if npmBin == "" {
		npmBin = "npm"
	}
	if npxBin == "" {
		npxBin = "npx"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Node{Runner: r, NpmBin: npmBin, NpxBin: npxBin, Logger: logger}
}

// Init runs `npm init -y` in dir.
func (n *Node) Init(ctx context.Context, dir string) error {
	return n.run(ctx, dir, n.NpmBin, "init", "-y")
}

// Install runs `npm install <pkgs...>` in dir. dev adds --save-dev.
func (n *Node) Install(ctx context.Context, dir string, dev bool, pkgs ...string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := []string{"install"}
	if dev {
		args = append(args, "--save-dev")
	}
	args = append(args, pkgs...)
	return n.run(ctx, dir, n.NpmBin, args...)
}

// CreateReactApp runs `npx create-react-app <name>` in dir.
func (n *Node) CreateReactApp(ctx context.Context, dir, name string) error {
	return n.run(ctx, dir, n.NpxBin, "--yes", "create-react-app", name)
}

func (n *Node) run(ctx context.Context, dir, name string, args ...string) error {
	n.Logger.Debug("running command",
		zap.String("dir", dir),
		zap.String("cmd", name),
		zap.Strings("args", args),
	)

	out, err := n.Runner.Run(ctx, dir, name, args...)
	if err != nil {
		return err
	}
	if out.ExitCode != 0 {
		return newCommandError(dir, name, args, out)
	}
	n.Logger.Debug("command finished", zap.String("cmd", name), zap.Int("stdout_bytes", len(out.Stdout)))
	return nil
}
