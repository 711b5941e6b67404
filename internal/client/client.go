// Package client scaffolds the optional React front end of a generated
// project and points its development proxy at the backend.
package client

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/expressgen-labs/expressgen/internal/manifest"
	"github.com/expressgen-labs/expressgen/internal/toolchain"
)

// DefaultDir is the client directory created inside the project root.
const DefaultDir = "client"

// Packages are installed into the client after create-react-app.
var Packages = []string{"axios", "react-router-dom"}

// Scaffolder creates the React client.
type Scaffolder struct {
	Node   *toolchain.Node
	Dir    string // directory name under the project root
	Port   int    // backend port the proxy targets
	Logger *zap.Logger
}

// Result describes a generated client.
type Result struct {
	Path  string
	Proxy string
}

// Run creates <root>/<Dir> with create-react-app, installs Packages into
// it, and sets its manifest proxy. Steps run in order and stop at the
// first failure; nothing is rolled back.
func (s *Scaffolder) Run(ctx context.Context, root string) (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dir := s.Dir
	if dir == "" {
		dir = DefaultDir
	}
	clientPath := filepath.Join(root, dir)

	logger.Info("creating React client", zap.String("dir", dir))
	if err := s.Node.CreateReactApp(ctx, root, dir); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	logger.Info("installing client packages", zap.Strings("packages", Packages))
	if err := s.Node.Install(ctx, clientPath, false, Packages...); err != nil {
		return nil, fmt.Errorf("installing client packages: %w", err)
	}

	m, err := manifest.Patch(manifest.PathIn(clientPath), func(m *manifest.Manifest) error {
		return m.SetProxy(s.Port)
	})
	if err != nil {
		return nil, err
	}

	proxy := m.Get("proxy")
	logger.Info("client proxy set", zap.String("proxy", proxy))
	return &Result{Path: clientPath, Proxy: proxy}, nil
}
