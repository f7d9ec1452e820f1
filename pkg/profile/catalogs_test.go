package profile

import (
	"strings"
	"testing"
)

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	catalogs := map[string][]string{
		"DefaultArgs":                DefaultArgs,
		"HeadlessArgs":               HeadlessArgs,
		"ContainerArgs":              ContainerArgs,
		"DisableSecurityArgs":        DisableSecurityArgs,
		"DeterministicRenderingArgs": DeterministicRenderingArgs,
	}
	for name, catalog := range catalogs {
		for _, arg := range catalog {
			if err := ValidateCLIArg(arg); err != nil {
				t.Errorf("%s contains malformed flag %q: %v", name, arg, err)
			}
		}
	}
}

func TestDefaultArgsIncludeDisabledComponents(t *testing.T) {
	var found string
	for _, arg := range DefaultArgs {
		if strings.HasPrefix(arg, "--disable-features=") {
			found = arg
		}
	}
	if found == "" {
		t.Fatal("DefaultArgs should carry a --disable-features flag")
	}
	for _, component := range []string{"AutomationControlled", "Translate", "CrashReporting"} {
		if !strings.Contains(found, component) {
			t.Errorf("--disable-features should include %s, got %q", component, found)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"Y", true},
		{"1", true},
		{"1000", true},
		{"t", true},
		{"", false},
		{"false", false},
		{"no", false},
		{"0", false},
		{"off", false},
	}
	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			if got := isTruthy(tt.value); got != tt.want {
				t.Errorf("isTruthy(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
