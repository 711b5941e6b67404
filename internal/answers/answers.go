package answers

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// namePattern is the URL-safe subset of npm package names.
var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Question keys, in the order they are asked.
const (
	KeyProjectName          = "projectName"
	KeyUsers                = "opUsers"
	KeyProducts             = "opProducts"
	KeyInstallAutomatically = "opInstallAutomatically"
	KeyRouters              = "opRouters"
	KeyModels               = "opModels"
	KeyControllers          = "opControllers"
	KeyViews                = "opViews"
	KeyReactProject         = "opReactProject"
)

// Answers is the completed, read-only result of the prompt phase.
type Answers struct {
	ProjectName          string
	Users                bool
	Products             bool
	InstallAutomatically bool
	Routers              bool
	Models               bool
	Controllers          bool
	Views                bool
	ReactProject         bool
}

// Values is the raw key → answer mapping built while prompting.
// Text questions store string, yes/no questions store bool.
type Values map[string]any

// Bool returns the boolean stored under key, or false.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// String returns the string stored under key, or "".
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Resolve turns collected values into Answers. Keys missing from v take
// their question's default. When opInstallAutomatically is set, every
// component toggle hidden by it is enabled and the React client stays off.
func Resolve(v Values) (Answers, error) {
	merged := Values{}
	for _, q := range Questions() {
		if val, ok := v[q.Key]; ok {
			merged[q.Key] = val
			continue
		}
		if q.Kind == Confirm {
			merged[q.Key] = q.DefaultBool
		}
	}

	name := strings.TrimSpace(merged.String(KeyProjectName))
	if err := ValidateProjectName(name); err != nil {
		return Answers{}, err
	}

	a := Answers{
		ProjectName:          name,
		Users:                merged.Bool(KeyUsers),
		Products:             merged.Bool(KeyProducts),
		InstallAutomatically: merged.Bool(KeyInstallAutomatically),
		Routers:              merged.Bool(KeyRouters),
		Models:               merged.Bool(KeyModels),
		Controllers:          merged.Bool(KeyControllers),
		Views:                merged.Bool(KeyViews),
		ReactProject:         merged.Bool(KeyReactProject),
	}

	if a.InstallAutomatically {
		a.Routers = true
		a.Models = true
		a.Controllers = true
		a.Views = true
		a.ReactProject = false
	}
	return a, nil
}

// Defaults returns the answers produced by accepting every default.
func Defaults(projectName string) (Answers, error) {
	return Resolve(Values{KeyProjectName: projectName})
}

// ValidateProjectName checks that the trimmed name can be used both as a
// directory name and as an npm package name.
func ValidateProjectName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if len(name) > 214 {
		return fmt.Errorf("project name %q is longer than 214 characters", name)
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return fmt.Errorf("project name %q must not start with '.' or '_'", name)
	}
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			return fmt.Errorf("project name %q must not contain uppercase letters", name)
		case r == '/' || r == '\\':
			return fmt.Errorf("project name %q must not contain path separators", name)
		case unicode.IsSpace(r):
			return fmt.Errorf("project name %q must not contain spaces", name)
		}
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("project name %q may only contain lowercase letters, digits, '.', '_' and '-'", name)
	}
	return nil
}
