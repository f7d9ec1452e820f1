package profile

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// IgnoreDefaultArgs controls which entries of the baseline flag catalog are
// suppressed before composition. It is either the literal "suppress all"
// (All=true) or an explicit list of flags removed from the baseline by exact
// string match.
type IgnoreDefaultArgs struct {
	All  bool
	Args []string
}

// UnmarshalYAML accepts either a boolean (true suppresses the whole baseline)
// or a list of flags to remove.
func (i *IgnoreDefaultArgs) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var all bool
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("ignore_default_args: %w", err)
		}
		*i = IgnoreDefaultArgs{All: all}
		return nil
	case yaml.SequenceNode:
		var args []string
		if err := value.Decode(&args); err != nil {
			return fmt.Errorf("ignore_default_args: %w", err)
		}
		*i = IgnoreDefaultArgs{Args: args}
		return nil
	}
	return fmt.Errorf("ignore_default_args: expected true or a list of flags")
}

// MarshalYAML renders the value back in the form it was declared in.
func (i IgnoreDefaultArgs) MarshalYAML() (interface{}, error) {
	if i.All {
		return true, nil
	}
	return i.Args, nil
}

// MarshalJSON mirrors MarshalYAML for JSON dumps.
func (i IgnoreDefaultArgs) MarshalJSON() ([]byte, error) {
	if i.All {
		return json.Marshal(true)
	}
	return json.Marshal(i.Args)
}

// LaunchArgs holds the parameters shared by BrowserType.Launch and
// BrowserType.LaunchPersistentContext when starting a local browser process.
type LaunchArgs struct {
	// Env is extra environment variables set for the browser process.
	Env map[string]string `yaml:"env,omitempty" json:"env,omitempty"`

	// ExecutablePath points at the chromium-based browser binary to use.
	// Empty means the bundled browser for the selected channel.
	ExecutablePath string `yaml:"executable_path,omitempty" json:"executable_path,omitempty"`

	// Headless selects windowless mode. Nil means auto: resolved from the
	// detected display by DetectDisplayConfiguration.
	Headless *bool `yaml:"headless,omitempty" json:"headless,omitempty"`

	// Args are extra CLI flags appended after the baseline catalog.
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`

	// IgnoreDefaultArgs suppresses baseline flags before composition.
	IgnoreDefaultArgs IgnoreDefaultArgs `yaml:"ignore_default_args,omitempty" json:"ignore_default_args,omitempty"`

	// Channel selects the browser build to launch.
	Channel Channel `yaml:"channel" json:"channel"`

	// ChromiumSandbox enables the Chromium sandbox. Recommended everywhere
	// except inside containers, where the kernel support is missing.
	ChromiumSandbox bool `yaml:"chromium_sandbox" json:"chromium_sandbox"`

	// Devtools opens the DevTools panel for every page. Requires a window,
	// so it conflicts with Headless=true.
	Devtools bool `yaml:"devtools" json:"devtools"`

	SlowMo  float64 `yaml:"slow_mo" json:"slow_mo"`
	Timeout float64 `yaml:"timeout" json:"timeout"`

	Proxy         *ProxySettings `yaml:"proxy,omitempty" json:"proxy,omitempty"`
	DownloadsPath string         `yaml:"downloads_path,omitempty" json:"downloads_path,omitempty"`
	TracesDir     string         `yaml:"traces_dir,omitempty" json:"traces_dir,omitempty"`

	HandleSIGHUP  bool `yaml:"handle_sighup" json:"handle_sighup"`
	HandleSIGINT  bool `yaml:"handle_sigint" json:"handle_sigint"`
	HandleSIGTERM bool `yaml:"handle_sigterm" json:"handle_sigterm"`
}

// DefaultLaunchArgs returns the recommended launch parameters.
func DefaultLaunchArgs() LaunchArgs {
	return LaunchArgs{
		IgnoreDefaultArgs: IgnoreDefaultArgs{Args: []string{"--enable-automation", "--disable-extensions"}},
		Channel:           ChannelChromium,
		ChromiumSandbox:   !RunningInContainer(),
		Timeout:           30000,
		HandleSIGHUP:      true,
	}
}

// Validate checks the record's field invariants, including the cross-field
// rule that devtools cannot be opened in headless mode.
func (l *LaunchArgs) Validate() error {
	for _, arg := range l.Args {
		if err := ValidateCLIArg(arg); err != nil {
			return &ValidationError{Field: "args", Value: arg, Reason: err.Error()}
		}
	}
	for _, arg := range l.IgnoreDefaultArgs.Args {
		if err := ValidateCLIArg(arg); err != nil {
			return &ValidationError{Field: "ignore_default_args", Value: arg, Reason: err.Error()}
		}
	}
	if l.SlowMo < 0 {
		return &ValidationError{Field: "slow_mo", Value: l.SlowMo, Reason: "must be non-negative"}
	}
	if l.Timeout < 0 {
		return &ValidationError{Field: "timeout", Value: l.Timeout, Reason: "must be non-negative"}
	}
	if l.Headless != nil && *l.Headless && l.Devtools {
		return &ValidationError{Field: "devtools", Value: true, Reason: "headless=true and devtools=true cannot both be set"}
	}
	return nil
}
