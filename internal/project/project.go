package project

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/expressgen-labs/expressgen/internal/answers"
	"github.com/expressgen-labs/expressgen/internal/client"
	"github.com/expressgen-labs/expressgen/internal/manifest"
	"github.com/expressgen-labs/expressgen/internal/scaffold"
	"github.com/expressgen-labs/expressgen/internal/toolchain"
)

// Backend dependencies installed into every project.
var (
	Dependencies    = []string{"express", "dotenv", "mongoose"}
	DevDependencies = []string{"nodemon"}
	// ViewDependencies are installed in the component batch when views are on.
	ViewDependencies = []string{"express-handlebars"}
)

// Options configures an Initializer.
type Options struct {
	ParentDir   string
	Port        int
	DBURI       string
	ClientDir   string
	SkipInstall bool
	DryRun      bool
	Logger      *zap.Logger
}

// Initializer creates projects.
type Initializer struct {
	node *toolchain.Node
	opts Options
	log  *zap.Logger
}

// Result reports what a run did, or would do for a dry run.
type Result struct {
	Root     string
	Answers  answers.Answers
	Plan     []string
	Commands []string
	Files    []string
	Warnings []string
	Client   *client.Result
	DryRun   bool
}

// New returns an Initializer that runs package-manager commands via node.
func New(node *toolchain.Node, opts Options) *Initializer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ParentDir == "" {
		opts.ParentDir = "."
	}
	if opts.ClientDir == "" {
		opts.ClientDir = client.DefaultDir
	}
	return &Initializer{node: node, opts: opts, log: logger}
}

// Root returns the directory a project named name is created in.
func (i *Initializer) Root(name string) string {
	return filepath.Join(i.opts.ParentDir, name)
}

// Run scaffolds the project described by a. The project name is validated
// before anything touches the filesystem. Steps run in order; a failing
// step aborts the run and leaves earlier work in place.
func (i *Initializer) Run(ctx context.Context, a answers.Answers) (*Result, error) {
	a.ProjectName = strings.TrimSpace(a.ProjectName)
	if err := answers.ValidateProjectName(a.ProjectName); err != nil {
		return nil, err
	}

	root := i.Root(a.ProjectName)
	plan := scaffold.Plan(a)
	result := &Result{
		Root:     root,
		Answers:  a,
		Plan:     scaffold.Paths(plan),
		Commands: i.Commands(a),
		DryRun:   i.opts.DryRun,
	}
	if i.opts.DryRun {
		return result, nil
	}

	log := i.log.With(zap.String("project", a.ProjectName))

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", root, err)
	}
	log.Info("project directory ready", zap.String("root", root))

	if err := i.initManifest(ctx, root, a.ProjectName); err != nil {
		return nil, err
	}

	m, err := manifest.Patch(manifest.PathIn(root), func(m *manifest.Manifest) error {
		return m.ApplyBackend()
	})
	if err != nil {
		return nil, err
	}
	log.Info("package.json patched",
		zap.String("main", manifest.EntryPoint),
		zap.String("type", manifest.ModuleType),
	)

	warnings, err := m.Validate()
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn("manifest check", zap.String("issue", w))
	}
	result.Warnings = append(result.Warnings, warnings...)

	if err := i.componentBatch(ctx, root, a, plan); err != nil {
		return nil, err
	}

	gen, err := scaffold.Generate(root, a, scaffold.Options{
		Port:   i.opts.Port,
		DBURI:  i.opts.DBURI,
		Logger: log,
	})
	if gen != nil {
		result.Files = gen.Files
	}
	if err != nil {
		return result, err
	}

	switch {
	case a.ReactProject && i.opts.SkipInstall:
		w := "React client skipped: package installs are disabled"
		log.Warn(w)
		result.Warnings = append(result.Warnings, w)
	case a.ReactProject:
		s := &client.Scaffolder{Node: i.node, Dir: i.opts.ClientDir, Port: i.opts.Port, Logger: log}
		cr, err := s.Run(ctx, root)
		if err != nil {
			return result, err
		}
		result.Client = cr
	}

	log.Info("project created", zap.Int("files", len(result.Files)))
	return result, nil
}

// initManifest produces the package.json that the backend patch applies to.
func (i *Initializer) initManifest(ctx context.Context, root, name string) error {
	if i.opts.SkipInstall {
		path := manifest.PathIn(root)
		if _, err := os.Stat(path); err == nil {
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		return manifest.New(name).Store(path)
	}

	if err := i.node.Init(ctx, root); err != nil {
		return err
	}
	i.log.Info("installing dependencies", zap.Strings("packages", Dependencies))
	if err := i.node.Install(ctx, root, false, Dependencies...); err != nil {
		return err
	}
	return i.node.Install(ctx, root, true, DevDependencies...)
}

// componentBatch creates every directory the plan writes into and, with
// views on, installs the view engine. Members run concurrently; the first
// failure cancels the rest.
func (i *Initializer) componentBatch(ctx context.Context, root string, a answers.Answers, plan []scaffold.Artifact) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, dir := range scaffold.Dirs(plan) {
		path := filepath.Join(root, filepath.FromSlash(dir))
		g.Go(func() error {
			if err := os.MkdirAll(path, 0755); err != nil {
				return fmt.Errorf("creating directory %s: %w", path, err)
			}
			return nil
		})
	}

	if a.Views && !i.opts.SkipInstall {
		g.Go(func() error {
			return i.node.Install(gctx, root, false, ViewDependencies...)
		})
	}

	return g.Wait()
}

// Commands returns the package-manager command lines a run for a would
// execute, in order.
func (i *Initializer) Commands(a answers.Answers) []string {
	if i.opts.SkipInstall {
		return nil
	}
	npm, npx := i.node.NpmBin, i.node.NpxBin
	cmds := []string{
		npm + " init -y",
		npm + " install " + strings.Join(Dependencies, " "),
		npm + " install --save-dev " + strings.Join(DevDependencies, " "),
	}
	if a.Views {
		cmds = append(cmds, npm+" install "+strings.Join(ViewDependencies, " "))
	}
	if a.ReactProject {
		cmds = append(cmds,
			npx+" --yes create-react-app "+i.opts.ClientDir,
			npm+" install "+strings.Join(client.Packages, " "),
		)
	}
	return cmds
}
