package profile

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError reports a configuration field that failed validation.
// Construction of a record is all-or-nothing: the first violation aborts it.
type ValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid value %v: %s", e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid value for %s: %v: %s", e.Field, e.Value, e.Reason)
}

// ValidateURL checks that rawURL parses to a URL with a non-empty host. If
// schemes are given, the parsed scheme (when present) must be one of them.
func ValidateURL(rawURL string, schemes ...string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("malformed URL %q: %w", rawURL, err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("invalid URL format: %q", rawURL)
	}
	if len(schemes) > 0 && parsed.Scheme != "" {
		scheme := strings.ToLower(parsed.Scheme)
		for _, allowed := range schemes {
			if scheme == strings.ToLower(allowed) {
				return nil
			}
		}
		return fmt.Errorf("URL %q has invalid scheme %q (expected one of %v)", rawURL, parsed.Scheme, schemes)
	}
	return nil
}

// ValidateFloatRange checks that value lies within [min, max] inclusive.
func ValidateFloatRange(value, min, max float64) error {
	if value < min || value > max {
		return fmt.Errorf("value %v outside of range %v-%v", value, min, max)
	}
	return nil
}

// ValidateCLIArg checks that arg is shaped like a browser CLI flag.
func ValidateCLIArg(arg string) error {
	if !strings.HasPrefix(arg, "--") {
		return fmt.Errorf("invalid CLI argument %q (should start with --, e.g. --some-key=value)", arg)
	}
	return nil
}
