package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "expressgen" {
		t.Errorf("CLIName() = %q, want %q", got, "expressgen")
	}
	if got := HomeDir(); got != ".expressgen" {
		t.Errorf("HomeDir() = %q, want %q", got, ".expressgen")
	}
	if got := EnvPrefix(); got != "EXPRESSGEN" {
		t.Errorf("EnvPrefix() = %q, want %q", got, "EXPRESSGEN")
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("port"); got != "EXPRESSGEN_PORT" {
		t.Errorf("EnvVar(\"port\") = %q, want %q", got, "EXPRESSGEN_PORT")
	}
}
