package profile

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Default locations under the user's config root. Both are expanded on
// demand by PrepareUserDataDir, not at construction.
const (
	DefaultUserDataDir  = "~/.config/browserprofile/profiles/default"
	DefaultDownloadsDir = "~/.config/browserprofile/downloads"
)

const (
	defaultWindowWidth  = 1280
	defaultWindowHeight = 1100
)

// Profile is the unifying launch configuration for a controlled browser
// session. It is a flat union of the connect, launch, context, and
// persistent-context parameters plus automation-specific extensions; call
// sites never use it polymorphically but request one of the four narrower
// projections (ConnectArgs, LaunchArgs, LaunchPersistentContextArgs,
// NewContextArgs) computed by field-subset copy.
//
// A Profile is built once per automation session: populate it (Default plus
// Apply), migrate legacy fields, validate, then treat it as read-only apart
// from the two explicit mutators PrepareUserDataDir and
// DetectDisplayConfiguration. It is not safe for concurrent mutation.
type Profile struct {
	// Connect parameters
	Headers map[string]string `yaml:"headers,omitempty"`
	SlowMo  float64           `yaml:"slow_mo"`
	Timeout float64           `yaml:"timeout"`

	// Launch parameters
	Env               map[string]string `yaml:"env,omitempty"`
	ExecutablePath    string            `yaml:"executable_path,omitempty"`
	Headless          *bool             `yaml:"headless,omitempty"`
	Args              []string          `yaml:"args,omitempty"`
	IgnoreDefaultArgs IgnoreDefaultArgs `yaml:"ignore_default_args,omitempty"`
	Channel           Channel           `yaml:"channel"`
	ChromiumSandbox   bool              `yaml:"chromium_sandbox"`
	Devtools          bool              `yaml:"devtools"`
	Proxy             *ProxySettings    `yaml:"proxy,omitempty"`
	DownloadsPath     string            `yaml:"downloads_path,omitempty"`
	TracesDir         string            `yaml:"traces_dir,omitempty"`
	HandleSIGHUP      bool              `yaml:"handle_sighup"`
	HandleSIGINT      bool              `yaml:"handle_sigint"`
	HandleSIGTERM     bool              `yaml:"handle_sigterm"`

	// Context parameters
	AcceptDownloads    bool                `yaml:"accept_downloads"`
	Offline            bool                `yaml:"offline"`
	StrictSelectors    bool                `yaml:"strict_selectors"`
	Permissions        []string            `yaml:"permissions"`
	BypassCSP          bool                `yaml:"bypass_csp"`
	ClientCertificates []ClientCertificate `yaml:"client_certificates,omitempty"`
	ExtraHTTPHeaders   map[string]string   `yaml:"extra_http_headers,omitempty"`
	HTTPCredentials    *Credentials        `yaml:"http_credentials,omitempty"`
	IgnoreHTTPSErrors  bool                `yaml:"ignore_https_errors"`
	JavaScriptEnabled  bool                `yaml:"java_script_enabled"`
	BaseURL            string              `yaml:"base_url,omitempty"`
	ServiceWorkers     ServiceWorkers      `yaml:"service_workers"`
	UserAgent          string              `yaml:"user_agent,omitempty"`
	Screen             *Size               `yaml:"screen,omitempty"`
	Viewport           *Size               `yaml:"viewport,omitempty"`
	NoViewport         *bool               `yaml:"no_viewport,omitempty"`
	DeviceScaleFactor  *float64            `yaml:"device_scale_factor,omitempty"`
	IsMobile           bool                `yaml:"is_mobile"`
	HasTouch           bool                `yaml:"has_touch"`
	Locale             string              `yaml:"locale,omitempty"`
	Geolocation        *Geolocation        `yaml:"geolocation,omitempty"`
	TimezoneID         string              `yaml:"timezone_id,omitempty"`
	ColorScheme        ColorScheme         `yaml:"color_scheme"`
	Contrast           Contrast            `yaml:"contrast"`
	ReducedMotion      ReducedMotion       `yaml:"reduced_motion"`
	ForcedColors       ForcedColors        `yaml:"forced_colors"`

	// Recording options
	RecordHarContent     HarContent `yaml:"record_har_content"`
	RecordHarMode        HarMode    `yaml:"record_har_mode"`
	RecordHarOmitContent bool       `yaml:"record_har_omit_content"`
	RecordHarPath        string     `yaml:"record_har_path,omitempty"`
	RecordHarURLFilter   string     `yaml:"record_har_url_filter,omitempty"`
	RecordVideoDir       string     `yaml:"record_video_dir,omitempty"`
	RecordVideoSize      *Size      `yaml:"record_video_size,omitempty"`

	// Persistent-context parameter
	UserDataDir string `yaml:"user_data_dir,omitempty"`

	// New-context parameter
	StorageState string `yaml:"storage_state,omitempty"`

	// Automation extensions beyond the native launcher parameters
	DisableSecurity        bool     `yaml:"disable_security"`
	DeterministicRendering bool     `yaml:"deterministic_rendering"`
	AllowedDomains         []string `yaml:"allowed_domains,omitempty"`
	KeepAlive              *bool    `yaml:"keep_alive,omitempty"`

	// WindowSize and WindowPosition apply only when headless=false.
	WindowSize     *Size     `yaml:"window_size,omitempty"`
	WindowPosition *Position `yaml:"window_position,omitempty"`

	// Deprecated: set WindowSize instead. Folded into WindowSize by
	// MigrateLegacyWindowSize.
	WindowWidth int `yaml:"window_width,omitempty"`
	// Deprecated: set WindowSize instead.
	WindowHeight int `yaml:"window_height,omitempty"`

	// Page load/wait timings, in seconds.
	MinimumWaitPageLoadTime        float64 `yaml:"minimum_wait_page_load_time"`
	WaitForNetworkIdlePageLoadTime float64 `yaml:"wait_for_network_idle_page_load_time"`
	MaximumWaitPageLoadTime        float64 `yaml:"maximum_wait_page_load_time"`
	WaitBetweenActions             float64 `yaml:"wait_between_actions"`

	// DOM/selector behavior
	IncludeDynamicAttributes bool `yaml:"include_dynamic_attributes"`
	HighlightElements        bool `yaml:"highlight_elements"`
	ViewportExpansion        int  `yaml:"viewport_expansion"`

	// ProfileDirectory is the named profile inside the user data dir,
	// e.g. "Default" or "Profile 1".
	ProfileDirectory string `yaml:"profile_directory"`

	// Output paths
	SaveRecordingPath string `yaml:"save_recording_path,omitempty"`
	SaveDownloadsPath string `yaml:"save_downloads_path,omitempty"`
	SaveHarPath       string `yaml:"save_har_path,omitempty"`
	TracePath         string `yaml:"trace_path,omitempty"`
	CookiesFile       string `yaml:"cookies_file,omitempty"`
	DownloadsDir      string `yaml:"downloads_dir"`
}

// Default returns a Profile populated with the current recommended
// automation settings. Headless, viewport, and window geometry are left
// unset for DetectDisplayConfiguration to resolve.
func Default() *Profile {
	ctx := DefaultContextArgs()
	launch := DefaultLaunchArgs()
	connect := DefaultConnectArgs()
	return &Profile{
		Headers: connect.Headers,
		SlowMo:  connect.SlowMo,
		Timeout: connect.Timeout,

		IgnoreDefaultArgs: launch.IgnoreDefaultArgs,
		Channel:           launch.Channel,
		ChromiumSandbox:   launch.ChromiumSandbox,
		HandleSIGHUP:      launch.HandleSIGHUP,

		AcceptDownloads:   ctx.AcceptDownloads,
		Permissions:       ctx.Permissions,
		JavaScriptEnabled: ctx.JavaScriptEnabled,
		ServiceWorkers:    ctx.ServiceWorkers,
		ColorScheme:       ctx.ColorScheme,
		Contrast:          ctx.Contrast,
		ReducedMotion:     ctx.ReducedMotion,
		ForcedColors:      ctx.ForcedColors,
		RecordHarContent:  ctx.RecordHarContent,
		RecordHarMode:     ctx.RecordHarMode,

		UserDataDir:    DefaultUserDataDir,
		WindowPosition: &Position{X: 0, Y: 0},

		MinimumWaitPageLoadTime:        0.25,
		WaitForNetworkIdlePageLoadTime: 0.5,
		MaximumWaitPageLoadTime:        5.0,
		WaitBetweenActions:             0.5,

		IncludeDynamicAttributes: true,
		HighlightElements:        true,
		ViewportExpansion:        500,

		ProfileDirectory: "Default",
		DownloadsDir:     DefaultDownloadsDir,
	}
}

// New constructs a Profile from defaults overlaid with the given options,
// then migrates legacy fields and validates. Unknown option keys are
// silently ignored. Construction is all-or-nothing: any validation failure
// returns a nil profile.
func New(options map[string]interface{}) (*Profile, error) {
	p := Default()
	if err := p.Apply(options); err != nil {
		return nil, err
	}
	p.MigrateLegacyWindowSize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MigrateLegacyWindowSize folds the deprecated window_width/window_height
// fields into WindowSize. Existing WindowSize values win over the legacy
// fields; a dimension missing from both falls back to 1280x1100. Safe to run
// repeatedly.
func (p *Profile) MigrateLegacyWindowSize() {
	if p.WindowWidth <= 0 && p.WindowHeight <= 0 {
		return
	}
	size := p.WindowSize
	if size == nil {
		size = &Size{}
	}
	if size.Width <= 0 {
		size.Width = p.WindowWidth
		if size.Width <= 0 {
			size.Width = defaultWindowWidth
		}
	}
	if size.Height <= 0 {
		size.Height = p.WindowHeight
		if size.Height <= 0 {
			size.Height = defaultWindowHeight
		}
	}
	p.WindowSize = size
}

// Validate runs the field-level validators and the cross-field invariants.
// It returns the first violation found as a *ValidationError.
func (p *Profile) Validate() error {
	for _, arg := range p.Args {
		if err := ValidateCLIArg(arg); err != nil {
			return &ValidationError{Field: "args", Value: arg, Reason: err.Error()}
		}
	}
	for _, arg := range p.IgnoreDefaultArgs.Args {
		if err := ValidateCLIArg(arg); err != nil {
			return &ValidationError{Field: "ignore_default_args", Value: arg, Reason: err.Error()}
		}
	}
	if p.BaseURL != "" {
		if err := ValidateURL(p.BaseURL); err != nil {
			return &ValidationError{Field: "base_url", Value: p.BaseURL, Reason: err.Error()}
		}
	}
	if p.DeviceScaleFactor != nil {
		if err := ValidateFloatRange(*p.DeviceScaleFactor, 0, math.Inf(1)); err != nil {
			return &ValidationError{Field: "device_scale_factor", Value: *p.DeviceScaleFactor, Reason: err.Error()}
		}
	}
	nonNegative := []struct {
		field string
		value float64
	}{
		{"slow_mo", p.SlowMo},
		{"timeout", p.Timeout},
		{"minimum_wait_page_load_time", p.MinimumWaitPageLoadTime},
		{"wait_for_network_idle_page_load_time", p.WaitForNetworkIdlePageLoadTime},
		{"maximum_wait_page_load_time", p.MaximumWaitPageLoadTime},
		{"wait_between_actions", p.WaitBetweenActions},
	}
	for _, check := range nonNegative {
		if check.value < 0 {
			return &ValidationError{Field: check.field, Value: check.value, Reason: "must be non-negative"}
		}
	}
	if p.Headless != nil && *p.Headless && p.Devtools {
		return &ValidationError{Field: "devtools", Value: true, Reason: "headless=true and devtools=true cannot both be set"}
	}
	return nil
}

// String renders a short description for logs.
func (p *Profile) String() string {
	dir := p.UserDataDir
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dir = strings.Replace(dir, home, "~", 1)
	}
	headless := "auto"
	if p.Headless != nil {
		headless = fmt.Sprintf("%t", *p.Headless)
	}
	return fmt.Sprintf("Profile(user_data_dir=%s, headless=%s)", dir, headless)
}

// ConnectArgs projects the fields BrowserType.Connect and ConnectOverCDP
// accept. The connect record declares no flag list, so no composition runs.
func (p *Profile) ConnectArgs() ConnectArgs {
	return ConnectArgs{
		Headers: p.Headers,
		SlowMo:  p.SlowMo,
		Timeout: p.Timeout,
	}
}

// LaunchArgs projects the fields BrowserType.Launch accepts, with Args
// replaced by the fully composed flag list.
func (p *Profile) LaunchArgs() LaunchArgs {
	return LaunchArgs{
		Env:               p.Env,
		ExecutablePath:    p.ExecutablePath,
		Headless:          p.Headless,
		Args:              p.BrowserArgs(),
		IgnoreDefaultArgs: p.IgnoreDefaultArgs,
		Channel:           p.Channel,
		ChromiumSandbox:   p.ChromiumSandbox,
		Devtools:          p.Devtools,
		SlowMo:            p.SlowMo,
		Timeout:           p.Timeout,
		Proxy:             p.Proxy,
		DownloadsPath:     p.DownloadsPath,
		TracesDir:         p.TracesDir,
		HandleSIGHUP:      p.HandleSIGHUP,
		HandleSIGINT:      p.HandleSIGINT,
		HandleSIGTERM:     p.HandleSIGTERM,
	}
}

// contextArgs copies the context field subset.
func (p *Profile) contextArgs() ContextArgs {
	return ContextArgs{
		AcceptDownloads:      p.AcceptDownloads,
		Offline:              p.Offline,
		StrictSelectors:      p.StrictSelectors,
		Proxy:                p.Proxy,
		Permissions:          p.Permissions,
		BypassCSP:            p.BypassCSP,
		ClientCertificates:   p.ClientCertificates,
		ExtraHTTPHeaders:     p.ExtraHTTPHeaders,
		HTTPCredentials:      p.HTTPCredentials,
		IgnoreHTTPSErrors:    p.IgnoreHTTPSErrors,
		JavaScriptEnabled:    p.JavaScriptEnabled,
		BaseURL:              p.BaseURL,
		ServiceWorkers:       p.ServiceWorkers,
		UserAgent:            p.UserAgent,
		Screen:               p.Screen,
		Viewport:             p.Viewport,
		NoViewport:           p.NoViewport,
		DeviceScaleFactor:    p.DeviceScaleFactor,
		IsMobile:             p.IsMobile,
		HasTouch:             p.HasTouch,
		Locale:               p.Locale,
		Geolocation:          p.Geolocation,
		TimezoneID:           p.TimezoneID,
		ColorScheme:          p.ColorScheme,
		Contrast:             p.Contrast,
		ReducedMotion:        p.ReducedMotion,
		ForcedColors:         p.ForcedColors,
		RecordHarContent:     p.RecordHarContent,
		RecordHarMode:        p.RecordHarMode,
		RecordHarOmitContent: p.RecordHarOmitContent,
		RecordHarPath:        p.RecordHarPath,
		RecordHarURLFilter:   p.RecordHarURLFilter,
		RecordVideoDir:       p.RecordVideoDir,
		RecordVideoSize:      p.RecordVideoSize,
	}
}

// NewContextArgs projects the fields Browser.NewContext accepts.
func (p *Profile) NewContextArgs() NewContextArgs {
	return NewContextArgs{
		ContextArgs:  p.contextArgs(),
		StorageState: p.StorageState,
	}
}

// LaunchPersistentContextArgs projects the fields
// BrowserType.LaunchPersistentContext accepts, with the composed flag list.
func (p *Profile) LaunchPersistentContextArgs() LaunchPersistentContextArgs {
	return LaunchPersistentContextArgs{
		Launch:      p.LaunchArgs(),
		Context:     p.contextArgs(),
		UserDataDir: p.UserDataDir,
	}
}
