// Package security validates untrusted input before hueseed acts on it.
package security

import (
	"fmt"
	"net/netip"
	"net/url"
	"strings"
)

// ValidateHTTPURL checks that urlStr is an HTTPS URL with a public host.
// Loopback, private and link-local addresses are refused so a seed image URL
// cannot be used to probe the local network.
func ValidateHTTPURL(urlStr string) error {
	parsed, err := parseHTTPURL(urlStr)
	if err != nil {
		return err
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("only HTTPS URLs are allowed (got %s)", parsed.Scheme)
	}

	host := strings.ToLower(parsed.Hostname())
	if IsLocalOrPrivateHost(host) {
		return fmt.Errorf("URL cannot point to local or private hosts: %s", host)
	}
	return nil
}

// ValidateHTTPURLAllowPrivate checks that urlStr is an HTTP(S) URL with a
// host, without restricting where that host lives.
func ValidateHTTPURLAllowPrivate(urlStr string) error {
	parsed, err := parseHTTPURL(urlStr)
	if err != nil {
		return err
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return nil
	}
	return fmt.Errorf("only HTTP(S) URLs are allowed (got %s)", parsed.Scheme)
}

func parseHTTPURL(urlStr string) (*url.URL, error) {
	if urlStr == "" {
		return nil, fmt.Errorf("empty URL")
	}
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("URL must have a hostname")
	}
	return parsed, nil
}

// IsLocalOrPrivateHost reports whether host is localhost or a loopback,
// private, link-local or unspecified IP address. Other hostnames are not
// resolved.
func IsLocalOrPrivateHost(host string) bool {
	host = strings.Trim(strings.ToLower(host), "[]")
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsLoopback() ||
		addr.IsPrivate() ||
		addr.IsLinkLocalUnicast() ||
		addr.IsLinkLocalMulticast() ||
		addr.IsUnspecified()
}
