package manifest

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/expressgen-labs/expressgen/internal/schema"
)

// Validate checks the managed fields against the package schema and the
// version against semver. Problems are returned as warning strings; the
// error return is for encoding or schema loading failures.
func (m *Manifest) Validate() ([]string, error) {
	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}

	res, err := schema.ValidateJSON(schema.Package, data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", FileName, err)
	}

	var warnings []string
	for _, issue := range res.Issues {
		warnings = append(warnings, fmt.Sprintf("%s: %s", FileName, issue))
	}

	if v := m.Version(); v != "" {
		if _, err := semver.StrictNewVersion(v); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: version %q is not valid semver", FileName, v))
		}
	}

	return warnings, nil
}
