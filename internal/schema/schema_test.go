package schema

import (
	"strings"
	"testing"
)

func TestValidateYAML_Answers(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantValid bool
		wantIssue string
	}{
		{
			name:      "full document",
			doc:       "projectName: demo\nopUsers: true\nopProducts: false\nopViews: true\n",
			wantValid: true,
		},
		{
			name:      "empty document",
			doc:       "",
			wantValid: true,
		},
		{
			name:      "toggle with wrong type",
			doc:       "projectName: demo\nopUsers: \"yes please\"\n",
			wantValid: false,
			wantIssue: "/opUsers",
		},
		{
			name:      "unknown key",
			doc:       "projectName: demo\nopDatabase: true\n",
			wantValid: false,
			wantIssue: "opDatabase",
		},
		{
			name:      "empty project name",
			doc:       "projectName: \"\"\n",
			wantValid: false,
			wantIssue: "/projectName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ValidateYAML(Answers, []byte(tt.doc))
			if err != nil {
				t.Fatalf("ValidateYAML() error: %v", err)
			}
			if res.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %v)", res.Valid, tt.wantValid, res.Issues)
			}
			if tt.wantIssue == "" {
				return
			}
			found := false
			for _, issue := range res.Issues {
				if strings.Contains(issue.String(), tt.wantIssue) {
					found = true
				}
			}
			if !found {
				t.Errorf("no issue mentions %q: %v", tt.wantIssue, res.Issues)
			}
		})
	}
}

func TestValidateYAML_Malformed(t *testing.T) {
	if _, err := ValidateYAML(Answers, []byte("projectName: [unclosed")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateJSON_Package(t *testing.T) {
	valid := `{
  "name": "demo",
  "version": "1.0.0",
  "main": "src/app.js",
  "type": "module",
  "scripts": {"start": "node .", "dev": "nodemon ."}
}`
	res, err := ValidateJSON(Package, []byte(valid))
	if err != nil {
		t.Fatalf("ValidateJSON() error: %v", err)
	}
	if !res.Valid {
		t.Fatalf("expected valid, got issues: %v", res.Issues)
	}

	invalid := `{
  "name": "Demo",
  "main": "src/app.js",
  "type": "esm",
  "scripts": {"start": 1},
  "proxy": "localhost:8080"
}`
	res, err = ValidateJSON(Package, []byte(invalid))
	if err != nil {
		t.Fatalf("ValidateJSON() error: %v", err)
	}
	if res.Valid {
		t.Fatal("expected invalid package manifest")
	}
	want := map[string]bool{"/name": false, "/type": false, "/scripts/start": false, "/proxy": false}
	for _, issue := range res.Issues {
		if _, ok := want[issue.Path]; ok {
			want[issue.Path] = true
		}
	}
	for path, seen := range want {
		if !seen {
			t.Errorf("expected an issue at %s, got %v", path, res.Issues)
		}
	}
}

func TestUnknownSchema(t *testing.T) {
	if _, err := ValidateJSON("nope.schema.json", []byte(`{}`)); err == nil {
		t.Fatal("expected error for unknown schema")
	}
}
