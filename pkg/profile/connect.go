package profile

// ConnectArgs holds the parameters shared by BrowserType.Connect and
// BrowserType.ConnectOverCDP when attaching to a remote browser.
type ConnectArgs struct {
	// Headers are additional HTTP headers sent with the connect request.
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// SlowMo slows down every remote operation by this many milliseconds.
	SlowMo float64 `yaml:"slow_mo" json:"slow_mo"`

	// Timeout is the connection timeout in milliseconds.
	Timeout float64 `yaml:"timeout" json:"timeout"`
}

// DefaultConnectArgs returns the recommended connect parameters.
func DefaultConnectArgs() ConnectArgs {
	return ConnectArgs{
		SlowMo:  0,
		Timeout: 30000,
	}
}

// Validate checks the record's field invariants.
func (c *ConnectArgs) Validate() error {
	if c.SlowMo < 0 {
		return &ValidationError{Field: "slow_mo", Value: c.SlowMo, Reason: "must be non-negative"}
	}
	if c.Timeout < 0 {
		return &ValidationError{Field: "timeout", Value: c.Timeout, Reason: "must be non-negative"}
	}
	return nil
}
