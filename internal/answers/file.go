package answers

import (
	"fmt"
	"os"
	"strings"

	"github.com/expressgen-labs/expressgen/internal/schema"
	"go.yaml.in/yaml/v3"
)

// LoadFile reads answers from a YAML document such as:
//
//	projectName: demo
//	opUsers: true
//	opProducts: false
//
// The document is validated against the embedded answers schema. Missing
// keys take their defaults. A projectName in the file is overridden by a
// non-empty nameOverride.
func LoadFile(path, nameOverride string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Answers{}, fmt.Errorf("reading answers file %s: %w", path, err)
	}

	res, err := schema.ValidateYAML(schema.Answers, data)
	if err != nil {
		return Answers{}, fmt.Errorf("answers file %s: %w", path, err)
	}
	if !res.Valid {
		var msgs []string
		for _, issue := range res.Issues {
			msgs = append(msgs, issue.String())
		}
		return Answers{}, fmt.Errorf("answers file %s is invalid:\n  %s", path, strings.Join(msgs, "\n  "))
	}

	v := Values{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Answers{}, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	if nameOverride != "" {
		v[KeyProjectName] = nameOverride
	}
	return Resolve(v)
}
