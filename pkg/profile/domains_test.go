package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsURLAllowedEmptyListPermitsEverything(t *testing.T) {
	p := Default()
	assert.True(t, p.IsURLAllowed("https://anything.example.com/path"))
	assert.True(t, p.IsURLAllowed("http://localhost:8080"))
}

func TestIsURLAllowedExactHost(t *testing.T) {
	p := Default()
	p.AllowedDomains = []string{"example.com"}

	assert.True(t, p.IsURLAllowed("https://example.com"))
	assert.True(t, p.IsURLAllowed("https://EXAMPLE.com/page"))
	assert.False(t, p.IsURLAllowed("https://sub.example.com"))
	assert.False(t, p.IsURLAllowed("https://example.org"))
}

func TestIsURLAllowedSubdomainGlob(t *testing.T) {
	p := Default()
	p.AllowedDomains = []string{"*.example.com"}

	assert.True(t, p.IsURLAllowed("https://docs.example.com"))
	// The bare domain counts as matching its own wildcard.
	assert.True(t, p.IsURLAllowed("https://example.com"))
	// "." is a separator, so a single "*" does not span two levels.
	assert.False(t, p.IsURLAllowed("https://a.b.example.com"))
	assert.False(t, p.IsURLAllowed("https://notexample.com"))
}

func TestIsURLAllowedSchemeQualified(t *testing.T) {
	p := Default()
	p.AllowedDomains = []string{"https://*.example.com"}

	assert.True(t, p.IsURLAllowed("https://docs.example.com"))
	assert.False(t, p.IsURLAllowed("http://docs.example.com"))
}

func TestIsURLAllowedIgnoresPort(t *testing.T) {
	p := Default()
	p.AllowedDomains = []string{"localhost"}

	assert.True(t, p.IsURLAllowed("http://localhost:9242/json/version"))
}

func TestIsURLAllowedRejectsUnparseable(t *testing.T) {
	p := Default()
	p.AllowedDomains = []string{"example.com"}

	assert.False(t, p.IsURLAllowed("not a url"))
	assert.False(t, p.IsURLAllowed(""))
}

func TestIsURLAllowedSkipsMalformedPattern(t *testing.T) {
	p := Default()
	p.AllowedDomains = []string{"[bad", "example.com"}

	assert.True(t, p.IsURLAllowed("https://example.com"))
	assert.False(t, p.IsURLAllowed("https://other.com"))
}
