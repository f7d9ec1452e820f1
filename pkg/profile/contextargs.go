package profile

import "math"

// ContextArgs holds the browsing-context parameters shared by
// Browser.NewContext and BrowserType.LaunchPersistentContext.
type ContextArgs struct {
	AcceptDownloads bool `yaml:"accept_downloads" json:"accept_downloads"`
	Offline         bool `yaml:"offline" json:"offline"`
	StrictSelectors bool `yaml:"strict_selectors" json:"strict_selectors"`

	// Security options
	Proxy              *ProxySettings      `yaml:"proxy,omitempty" json:"proxy,omitempty"`
	Permissions        []string            `yaml:"permissions" json:"permissions"`
	BypassCSP          bool                `yaml:"bypass_csp" json:"bypass_csp"`
	ClientCertificates []ClientCertificate `yaml:"client_certificates,omitempty" json:"client_certificates,omitempty"`
	ExtraHTTPHeaders   map[string]string   `yaml:"extra_http_headers,omitempty" json:"extra_http_headers,omitempty"`
	HTTPCredentials    *Credentials        `yaml:"http_credentials,omitempty" json:"http_credentials,omitempty"`
	IgnoreHTTPSErrors  bool                `yaml:"ignore_https_errors" json:"ignore_https_errors"`
	JavaScriptEnabled  bool                `yaml:"java_script_enabled" json:"java_script_enabled"`
	BaseURL            string              `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	ServiceWorkers     ServiceWorkers      `yaml:"service_workers" json:"service_workers"`

	// Viewport options. Viewport and NoViewport=true are mutually exclusive:
	// viewport content-sizing is meaningless when the window itself defines
	// the content size.
	UserAgent         string        `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`
	Screen            *Size         `yaml:"screen,omitempty" json:"screen,omitempty"`
	Viewport          *Size         `yaml:"viewport,omitempty" json:"viewport,omitempty"`
	NoViewport        *bool         `yaml:"no_viewport,omitempty" json:"no_viewport,omitempty"`
	DeviceScaleFactor *float64      `yaml:"device_scale_factor,omitempty" json:"device_scale_factor,omitempty"`
	IsMobile          bool          `yaml:"is_mobile" json:"is_mobile"`
	HasTouch          bool          `yaml:"has_touch" json:"has_touch"`
	Locale            string        `yaml:"locale,omitempty" json:"locale,omitempty"`
	Geolocation       *Geolocation  `yaml:"geolocation,omitempty" json:"geolocation,omitempty"`
	TimezoneID        string        `yaml:"timezone_id,omitempty" json:"timezone_id,omitempty"`
	ColorScheme       ColorScheme   `yaml:"color_scheme" json:"color_scheme"`
	Contrast          Contrast      `yaml:"contrast" json:"contrast"`
	ReducedMotion     ReducedMotion `yaml:"reduced_motion" json:"reduced_motion"`
	ForcedColors      ForcedColors  `yaml:"forced_colors" json:"forced_colors"`

	// Recording options
	RecordHarContent     HarContent `yaml:"record_har_content" json:"record_har_content"`
	RecordHarMode        HarMode    `yaml:"record_har_mode" json:"record_har_mode"`
	RecordHarOmitContent bool       `yaml:"record_har_omit_content" json:"record_har_omit_content"`
	RecordHarPath        string     `yaml:"record_har_path,omitempty" json:"record_har_path,omitempty"`
	RecordHarURLFilter   string     `yaml:"record_har_url_filter,omitempty" json:"record_har_url_filter,omitempty"`
	RecordVideoDir       string     `yaml:"record_video_dir,omitempty" json:"record_video_dir,omitempty"`
	RecordVideoSize      *Size      `yaml:"record_video_size,omitempty" json:"record_video_size,omitempty"`
}

// DefaultContextArgs returns the recommended context parameters. Clipboard
// permissions are granted for copy/paste automations and notifications to
// reduce fingerprinting prompts.
func DefaultContextArgs() ContextArgs {
	return ContextArgs{
		AcceptDownloads:   true,
		Permissions:       []string{"clipboard-read", "clipboard-write", "notifications"},
		JavaScriptEnabled: true,
		ServiceWorkers:    ServiceWorkersAllow,
		ColorScheme:       ColorSchemeLight,
		Contrast:          ContrastNoPreference,
		ReducedMotion:     ReducedMotionNoPreference,
		ForcedColors:      ForcedColorsNone,
		RecordHarContent:  HarContentEmbed,
		RecordHarMode:     HarModeFull,
	}
}

// Validate checks the record's field invariants.
func (c *ContextArgs) Validate() error {
	if c.BaseURL != "" {
		if err := ValidateURL(c.BaseURL); err != nil {
			return &ValidationError{Field: "base_url", Value: c.BaseURL, Reason: err.Error()}
		}
	}
	if c.DeviceScaleFactor != nil {
		if err := ValidateFloatRange(*c.DeviceScaleFactor, 0, math.Inf(1)); err != nil {
			return &ValidationError{Field: "device_scale_factor", Value: *c.DeviceScaleFactor, Reason: err.Error()}
		}
	}
	return nil
}

// NewContextArgs holds the arguments for Browser.NewContext. It extends
// ContextArgs with a storage state, which persistent contexts do not support.
type NewContextArgs struct {
	ContextArgs `yaml:",inline"`

	// StorageState is the path to a storage-state JSON file (cookies and
	// origin storage) restored into the new context.
	StorageState string `yaml:"storage_state,omitempty" json:"storage_state,omitempty"`
}
