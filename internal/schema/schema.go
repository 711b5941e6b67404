package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Embedded schema names.
const (
	Answers = "answers.schema.json"
	Package = "package.schema.json"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	compiled  = map[string]*jsonschema.Schema{}
	compileMu sync.Mutex
	printer   = message.NewPrinter(language.English)
)

// Result contains the outcome of a schema validation.
type Result struct {
	Valid  bool
	Issues []Issue
}

// Issue represents a single validation error from the schema.
type Issue struct {
	Path    string // Instance location (e.g., "/scripts/dev")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// String renders the issue as "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// get compiles the named embedded schema once and returns it.
func get(name string) (*jsonschema.Schema, error) {
	compileMu.Lock()
	defer compileMu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	raw, err := schemaFS.ReadFile("schemas/" + name)
	if err != nil {
		return nil, fmt.Errorf("schema %q not found: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	compiled[name] = s
	return s, nil
}

// ValidateJSON validates raw JSON bytes against the named schema.
// The error return is for parse or schema compilation failures.
// Validation issues are returned in the Result.
func ValidateJSON(name string, data []byte) (*Result, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return validate(name, inst)
}

// ValidateYAML validates raw YAML bytes against the named schema.
func ValidateYAML(name string, data []byte) (*Result, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}

	// Round-trip through JSON so numbers arrive as json.Number.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	return ValidateJSON(name, jsonData)
}

func validate(name string, inst any) (*Result, error) {
	s, err := get(name)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	err = s.Validate(inst)
	if err == nil {
		return &Result{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &Result{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []Issue {
	var issues []Issue
	collectIssues(ve, &issues)

	if len(issues) == 0 {
		return []Issue{{
			Message: ve.Error(),
		}}
	}
	return deduplicate(issues)
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]Issue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		msg := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, Issue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, issues)
	}
}

// deduplicate removes duplicate issues (same path + keyword + message).
func deduplicate(issues []Issue) []Issue {
	seen := make(map[string]bool)
	var result []Issue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
