package profile

import (
	"net/url"
	"strings"

	"github.com/gobwas/glob"
)

// IsURLAllowed reports whether the URL's host matches the profile's domain
// allow-list. An empty list permits everything. Patterns are globs matched
// against the lowercased host with "." as a separator, so "*.example.com"
// matches one subdomain level and also the bare domain. A pattern may be
// qualified with a scheme glob, e.g. "https://*.example.com".
func (p *Profile) IsURLAllowed(rawURL string) bool {
	if len(p.AllowedDomains) == 0 {
		return true
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	scheme := strings.ToLower(parsed.Scheme)

	for _, raw := range p.AllowedDomains {
		pattern := strings.ToLower(strings.TrimSpace(raw))
		if pattern == "" {
			continue
		}
		if i := strings.Index(pattern, "://"); i >= 0 {
			schemeGlob, err := glob.Compile(pattern[:i])
			if err != nil || !schemeGlob.Match(scheme) {
				continue
			}
			pattern = pattern[i+3:]
		}
		hostGlob, err := glob.Compile(pattern, '.')
		if err != nil {
			pkgLogger().Warnf("ignoring malformed allowed_domains pattern %q: %v", raw, err)
			continue
		}
		if hostGlob.Match(host) {
			return true
		}
		if bare, ok := strings.CutPrefix(pattern, "*."); ok && bare == host {
			return true
		}
	}
	return false
}
