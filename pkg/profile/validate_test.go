package profile

import (
	"math"
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		schemes []string
		wantErr bool
	}{
		{name: "valid https URL", url: "https://example.com"},
		{name: "valid URL with path", url: "https://example.com/some/path"},
		{name: "plain text is not a URL", url: "not a url", wantErr: true},
		{name: "empty string", url: "", wantErr: true},
		{name: "path only", url: "/just/a/path", wantErr: true},
		{name: "scheme in allow-list", url: "https://example.com", schemes: []string{"https"}},
		{name: "scheme outside allow-list", url: "ftp://x.com", schemes: []string{"https"}, wantErr: true},
		{name: "allow-list is case-insensitive", url: "HTTPS://example.com", schemes: []string{"https"}},
		{name: "ws allowed for cdp endpoints", url: "ws://localhost:9242", schemes: []string{"ws", "wss"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url, tt.schemes...)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateURL(%q, %v) = nil, want error", tt.url, tt.schemes)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateURL(%q, %v) = %v, want nil", tt.url, tt.schemes, err)
			}
		})
	}
}

func TestValidateFloatRange(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min, max float64
		wantErr  bool
	}{
		{name: "inside range", value: 1.5, min: 0, max: 2},
		{name: "at lower bound", value: 0, min: 0, max: 2},
		{name: "at upper bound", value: 2, min: 0, max: 2},
		{name: "below range", value: -0.1, min: 0, max: 2, wantErr: true},
		{name: "above range", value: 2.1, min: 0, max: 2, wantErr: true},
		{name: "unbounded above", value: 1e12, min: 0, max: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFloatRange(tt.value, tt.min, tt.max)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateFloatRange(%v, %v, %v) = nil, want error", tt.value, tt.min, tt.max)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateFloatRange(%v, %v, %v) = %v, want nil", tt.value, tt.min, tt.max, err)
			}
		})
	}
}

func TestValidateCLIArg(t *testing.T) {
	tests := []struct {
		arg     string
		wantErr bool
	}{
		{arg: "--headless=new"},
		{arg: "--no-first-run"},
		{arg: "-single-dash", wantErr: true},
		{arg: "no-dashes", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			err := ValidateCLIArg(tt.arg)
			if tt.wantErr && err == nil {
				t.Errorf("ValidateCLIArg(%q) = nil, want error", tt.arg)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateCLIArg(%q) = %v, want nil", tt.arg, err)
			}
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "device_scale_factor", Value: -1.0, Reason: "must be non-negative"}
	msg := err.Error()
	if !strings.Contains(msg, "device_scale_factor") {
		t.Errorf("message should name the field, got %q", msg)
	}
	if !strings.Contains(msg, "-1") {
		t.Errorf("message should include the offending value, got %q", msg)
	}
}
