package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// legacyOptionNames maps option keys accepted for backwards compatibility to
// their current names.
var legacyOptionNames = map[string]string{
	"chrome_binary_path":  "executable_path",
	"browser_binary_path": "executable_path",
}

// Apply overlays the given option map onto the profile. Keys use the
// declared option names (snake_case); unknown keys are silently ignored so
// that option maps written for newer versions keep working. Values go
// through YAML coercion, so both plain maps and typed values (Size,
// Position, ...) are accepted. Validators do not run here; call Validate
// after the profile is fully populated.
func (p *Profile) Apply(options map[string]interface{}) error {
	if len(options) == 0 {
		return nil
	}
	normalized := make(map[string]interface{}, len(options))
	for key, value := range options {
		if current, ok := legacyOptionNames[key]; ok {
			key = current
		}
		normalized[key] = value
	}
	raw, err := yaml.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}
	if err := yaml.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("apply options: %w", err)
	}
	return nil
}

// Load constructs a validated Profile from a YAML file of option names to
// values, overlaid onto the defaults.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	var options map[string]interface{}
	if err := yaml.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("parse profile file %s: %w", path, err)
	}
	return New(options)
}

// Options dumps the profile back to a mapping of option names to values,
// suitable for round-tripping through Apply.
func (p *Profile) Options() (map[string]interface{}, error) {
	raw, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode profile: %w", err)
	}
	var options map[string]interface{}
	if err := yaml.Unmarshal(raw, &options); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return options, nil
}
