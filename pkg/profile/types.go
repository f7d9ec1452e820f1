package profile

// Size represents a width/height pair in CSS pixels, used for screens,
// viewports, windows, and video recordings.
type Size struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// Position represents an x/y offset from the top-left corner of the screen.
type Position struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Geolocation is the emulated geographic position for a browsing context.
type Geolocation struct {
	Latitude  float64  `yaml:"latitude" json:"latitude"`
	Longitude float64  `yaml:"longitude" json:"longitude"`
	Accuracy  *float64 `yaml:"accuracy,omitempty" json:"accuracy,omitempty"`
}

// ProxySettings configures the proxy the browser connects through.
type ProxySettings struct {
	Server   string `yaml:"server" json:"server"`
	Bypass   string `yaml:"bypass,omitempty" json:"bypass,omitempty"`
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	Password string `yaml:"password,omitempty" json:"password,omitempty"`
}

// Credentials holds HTTP basic-auth credentials for a browsing context.
type Credentials struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	Origin   string `yaml:"origin,omitempty" json:"origin,omitempty"`
}

// ClientCertificate identifies a TLS client certificate to present to a
// specific origin.
type ClientCertificate struct {
	Origin     string `yaml:"origin" json:"origin"`
	CertPath   string `yaml:"cert_path,omitempty" json:"cert_path,omitempty"`
	KeyPath    string `yaml:"key_path,omitempty" json:"key_path,omitempty"`
	PfxPath    string `yaml:"pfx_path,omitempty" json:"pfx_path,omitempty"`
	Passphrase string `yaml:"passphrase,omitempty" json:"passphrase,omitempty"`
}

// ColorScheme is the emulated prefers-color-scheme media value.
type ColorScheme string

const (
	ColorSchemeLight        ColorScheme = "light"
	ColorSchemeDark         ColorScheme = "dark"
	ColorSchemeNoPreference ColorScheme = "no-preference"
)

// Contrast is the emulated prefers-contrast media value.
type Contrast string

const (
	ContrastNoPreference Contrast = "no-preference"
	ContrastMore         Contrast = "more"
)

// ReducedMotion is the emulated prefers-reduced-motion media value.
type ReducedMotion string

const (
	ReducedMotionReduce       ReducedMotion = "reduce"
	ReducedMotionNoPreference ReducedMotion = "no-preference"
)

// ForcedColors is the emulated forced-colors media value.
type ForcedColors string

const (
	ForcedColorsActive ForcedColors = "active"
	ForcedColorsNone   ForcedColors = "none"
)

// ServiceWorkers controls whether pages may register service workers.
type ServiceWorkers string

const (
	ServiceWorkersAllow ServiceWorkers = "allow"
	ServiceWorkersBlock ServiceWorkers = "block"
)

// HarContent controls how response bodies are persisted in HAR recordings.
type HarContent string

const (
	HarContentOmit   HarContent = "omit"
	HarContentEmbed  HarContent = "embed"
	HarContentAttach HarContent = "attach"
)

// HarMode selects between full and minimal HAR recordings.
type HarMode string

const (
	HarModeFull    HarMode = "full"
	HarModeMinimal HarMode = "minimal"
)

// Channel identifies which browser build to launch.
type Channel string

const (
	ChannelChromium     Channel = "chromium"
	ChannelChrome       Channel = "chrome"
	ChannelChromeBeta   Channel = "chrome-beta"
	ChannelChromeDev    Channel = "chrome-dev"
	ChannelChromeCanary Channel = "chrome-canary"
	ChannelMSEdge       Channel = "msedge"
	ChannelMSEdgeBeta   Channel = "msedge-beta"
	ChannelMSEdgeDev    Channel = "msedge-dev"
	ChannelMSEdgeCanary Channel = "msedge-canary"
)

// Bool returns a pointer to b, for filling tri-state option fields.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for filling optional float fields.
func Float(f float64) *float64 { return &f }
