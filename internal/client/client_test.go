package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/expressgen-labs/expressgen/internal/manifest"
	"github.com/expressgen-labs/expressgen/internal/toolchain"
	"github.com/expressgen-labs/expressgen/internal/toolchain/toolchaintest"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	fake := &toolchaintest.Runner{}
	s := &Scaffolder{
		Node:   toolchain.NewNode(fake, "", "", nil),
		Port:   8080,
		Logger: zaptest.NewLogger(t),
	}

	result, err := s.Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "client"), result.Path)
	assert.Equal(t, "http://localhost:8080", result.Proxy)

	assert.Equal(t, []string{
		"npx --yes create-react-app client",
		"npm install axios react-router-dom",
	}, fake.Lines())

	calls := fake.Calls()
	assert.Equal(t, root, calls[0].Dir)
	assert.Equal(t, filepath.Join(root, "client"), calls[1].Dir)

	m, err := manifest.Load(manifest.PathIn(result.Path))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", m.Get("proxy"))
	assert.Equal(t, "client", m.Name())
}

func TestRunCustomDir(t *testing.T) {
	root := t.TempDir()
	fake := &toolchaintest.Runner{}
	s := &Scaffolder{Node: toolchain.NewNode(fake, "", "", nil), Dir: "web", Port: 3001}

	result, err := s.Run(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "web"), result.Path)
	assert.Equal(t, "http://localhost:3001", result.Proxy)
}

func TestRunCreateFails(t *testing.T) {
	root := t.TempDir()
	fake := &toolchaintest.Runner{Fail: map[string]int{"npx": 1}}
	s := &Scaffolder{Node: toolchain.NewNode(fake, "", "", nil), Port: 8080}

	_, err := s.Run(context.Background(), root)
	require.Error(t, err)

	var cmdErr *toolchain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Len(t, fake.Calls(), 1, "install must not run after a failed create")
	assert.NoFileExists(t, filepath.Join(root, "client", "package.json"))
}

func TestRunInstallFails(t *testing.T) {
	root := t.TempDir()
	fake := &toolchaintest.Runner{Fail: map[string]int{"npm install": 2}}
	s := &Scaffolder{Node: toolchain.NewNode(fake, "", "", nil), Port: 8080}

	_, err := s.Run(context.Background(), root)
	require.Error(t, err)

	m, err := manifest.Load(filepath.Join(root, "client", "package.json"))
	require.NoError(t, err)
	assert.False(t, m.Has("proxy"))
}
