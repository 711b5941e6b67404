package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/expressgen-labs/expressgen/internal/answers"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Options carries the configuration values templates need.
type Options struct {
	Port int
	// DBURI is written to .env; "{{name}}" is replaced by the project name.
	DBURI  string
	Logger *zap.Logger
}

// Data holds all template variables available to scaffold templates.
type Data struct {
	answers.Answers
	Port    int
	Routers []Entity // entities that get a router mounted in app.js
	Entity  Entity   // set for per-entity artifacts
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Root  string
	Files []string
}

// NewData builds template data for a.
func NewData(a answers.Answers, port int) Data {
	d := Data{Answers: a, Port: port}
	if a.Routers {
		d.Routers = Entities(a)
	}
	return d
}

// Generate renders every artifact in Plan(a) and writes it under root,
// overwriting existing files. Missing parent directories are created. The
// first failure stops generation; files already written stay on disk.
func Generate(root string, a answers.Answers, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	data := NewData(a, opts.Port)
	result := &Result{Root: root}

	for _, art := range Plan(a) {
		content, err := Render(art, data, opts)
		if err != nil {
			return result, err
		}

		outPath := filepath.Join(root, filepath.FromSlash(art.Path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", art.Path, err)
		}
		if err := os.WriteFile(outPath, content, 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", art.Path, err)
		}

		logger.Info("created file", zap.String("path", art.Path))
		result.Files = append(result.Files, art.Path)
	}

	return result, nil
}

// Render produces the content of one artifact.
func Render(art Artifact, data Data, opts Options) ([]byte, error) {
	if art.Kind == Env {
		return renderEnv(data.ProjectName, opts)
	}

	raw, err := fs.ReadFile(scaffoldFS, templatesDir+"/"+art.Source)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", art.Source, err)
	}
	if art.Kind == Verbatim {
		return raw, nil
	}

	tmpl, err := template.New(art.Source).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", art.Source, err)
	}

	if art.Entity != nil {
		data.Entity = *art.Entity
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s for %s: %w", art.Source, art.Path, err)
	}
	return buf.Bytes(), nil
}

func renderEnv(projectName string, opts Options) ([]byte, error) {
	env := map[string]string{
		"PORT":   strconv.Itoa(opts.Port),
		"DB_URI": strings.ReplaceAll(opts.DBURI, "{{name}}", projectName),
	}
	content, err := godotenv.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding .env: %w", err)
	}
	return []byte(content + "\n"), nil
}
