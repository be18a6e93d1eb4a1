package frontier

import (
	"net/url"
	"strings"
)

// NormalizeLink turns a raw href into an absolute URL, or reports that
// the link is not crawlable.
//
// Rules:
//   - empty string or fragment-only ("#...") -> rejected
//   - root-relative ("/wiki/Foo") -> scheme://host of the base page plus
//     the path, without dot-segment resolution
//   - scheme-prefixed ("http...") -> passed through verbatim
//   - everything else (protocol-relative, mailto:, javascript:,
//     relative-without-slash) -> rejected
//
// baseURL is the URL of the page the href was found on; it is only
// needed for root-relative links.
func NormalizeLink(href, baseURL string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") {
		return "", false
	}

	// Protocol-relative links also start with a slash; they are rejected,
	// not resolved.
	if strings.HasPrefix(href, "//") {
		return "", false
	}

	if strings.HasPrefix(href, "/") {
		base, err := url.Parse(baseURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return "", false
		}
		return base.Scheme + "://" + base.Host + href, true
	}

	if strings.HasPrefix(href, "http") {
		return href, true
	}

	return "", false
}

// InScope reports whether a URL belongs to the crawl target site: its
// host must contain the scope substring. Malformed URLs whose host
// cannot be parsed are out of scope.
func InScope(rawURL, scopeHost string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.Contains(u.Host, scopeHost)
}
