package scaffold

import (
	"path"
	"sort"

	"github.com/expressgen-labs/expressgen/internal/answers"
)

// Kind says how an artifact's content is produced.
type Kind int

const (
	// Template artifacts are rendered with text/template.
	Template Kind = iota
	// Verbatim artifacts are copied as-is. Handlebars views use {{ }}
	// syntax that conflicts with Go's text/template.
	Verbatim
	// Env is the .env file, encoded with godotenv.
	Env
)

// Artifact is one file the scaffold will write.
type Artifact struct {
	Path   string // slash-separated, relative to the project root
	Source string // embedded file under scaffolds/express; empty for Env
	Kind   Kind
	Entity *Entity
}

// Plan returns the artifacts for a, in write order. The result depends
// only on the toggles in a.
func Plan(a answers.Answers) []Artifact {
	entities := Entities(a)

	plan := []Artifact{
		{Path: "src/app.js", Source: "app.js.tmpl", Kind: Template},
		{Path: ".env", Kind: Env},
		{Path: ".gitignore", Source: "gitignore", Kind: Verbatim},
		{Path: "public/index.html", Source: "index.html.tmpl", Kind: Template},
	}

	for i := range entities {
		e := &entities[i]
		if a.Controllers {
			plan = append(plan, Artifact{Path: "src/controllers/" + e.Name + ".controller.js", Source: "controller.js.tmpl", Kind: Template, Entity: e})
		}
		if a.Routers {
			plan = append(plan, Artifact{Path: "src/routers/" + e.Name + ".router.js", Source: "router.js.tmpl", Kind: Template, Entity: e})
		}
		if a.Models {
			plan = append(plan, Artifact{Path: "src/models/" + e.Name + ".model.js", Source: "model.js.tmpl", Kind: Template, Entity: e})
		}
	}

	if a.Views {
		plan = append(plan,
			Artifact{Path: "src/views/index.hbs", Source: "views/index.hbs", Kind: Verbatim},
			Artifact{Path: "src/views/layouts/main.hbs", Source: "views/layouts/main.hbs", Kind: Verbatim},
		)
	}

	return plan
}

// Dirs returns the distinct directories plan writes into, sorted, excluding
// the project root itself.
func Dirs(plan []Artifact) []string {
	seen := map[string]bool{}
	for _, art := range plan {
		for dir := path.Dir(art.Path); dir != "."; dir = path.Dir(dir) {
			seen[dir] = true
		}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Paths returns the artifact paths of plan, in order.
func Paths(plan []Artifact) []string {
	out := make([]string, len(plan))
	for i, art := range plan {
		out[i] = art.Path
	}
	return out
}
