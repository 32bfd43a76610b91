package app

import (
	"net/url"
	"strings"
)

// originHost returns the host[:port] part of an Origin header value. Values
// that do not parse as URLs are matched as given.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// originAllowed reports whether host matches an allowed_origins pattern.
// "sevafoundation.org" matches that host exactly; "*.sevafoundation.org"
// matches the bare domain and any subdomain.
func originAllowed(pattern, host string) bool {
	host = strings.ToLower(host)
	pattern = strings.ToLower(pattern)
	if pattern == host {
		return true
	}
	if domain, ok := strings.CutPrefix(pattern, "*."); ok {
		return host == domain || strings.HasSuffix(host, "."+domain)
	}
	return false
}
