package service

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// hostOf extracts the lower-cased host of raw. Bare hosts such as
// "example.com" are accepted. ok is false when raw is empty or unparsable.
func hostOf(raw string) (host string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	host = strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
	if host == "" {
		return "", false
	}
	return host, true
}

// isExactHost reports whether host must be compared verbatim: IP literals,
// localhost and other single-label names have no registrable domain.
func isExactHost(host string) bool {
	return net.ParseIP(host) != nil || !strings.Contains(host, ".")
}

// registrableDomain returns the eTLD+1 of host ("accounts.example.co.uk" →
// "example.co.uk"), or host itself when it has none.
func registrableDomain(host string) string {
	if isExactHost(host) {
		return host
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}

// domainLabel returns the registrable domain without its public suffix
// ("example.co.uk" → "example").
func domainLabel(host string) string {
	domain := registrableDomain(host)
	if isExactHost(domain) {
		return domain
	}
	suffix, _ := publicsuffix.PublicSuffix(domain)
	return strings.TrimSuffix(domain, "."+suffix)
}

// domainMatcher decides whether a cached credential belongs to a queried
// domain.
type domainMatcher struct {
	host       string
	registered string
	label      string
}

func newDomainMatcher(query string) (domainMatcher, bool) {
	host, ok := hostOf(query)
	if !ok {
		return domainMatcher{}, false
	}
	return domainMatcher{
		host:       host,
		registered: registrableDomain(host),
		label:      domainLabel(host),
	}, true
}

// match compares registrable domains when the credential URL is usable and
// otherwise falls back to a case-insensitive title search for the queried
// host or its label.
func (m domainMatcher) match(credURL, title string) bool {
	if host, ok := hostOf(credURL); ok {
		if isExactHost(host) || isExactHost(m.host) {
			return host == m.host
		}
		return registrableDomain(host) == m.registered
	}

	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return false
	}
	return strings.Contains(title, m.host) || (m.label != "" && strings.Contains(title, m.label))
}
