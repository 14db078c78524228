package sprite

import (
	"net/url"
	"sort"
	"strings"
)

// Hostname returns the lower-cased host component of rawURL, without any
// port. It returns "" when the URL cannot be parsed or has no host; that is
// a recoverable condition for callers, never an error.
func Hostname(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// StripWWW removes one leading "www." prefix from host, if present.
func StripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}

// lookupKeys returns the candidate keys for host, exact form first. A host
// carrying a "www." prefix also offers its stripped form; a bare host also
// offers its "www."-prefixed form, so an icon filed under either spelling is
// found from either spelling.
func lookupKeys(host string) []string {
	if host == "" {
		return nil
	}
	if stripped := StripWWW(host); stripped != host {
		return []string{host, stripped}
	}
	return []string{host, "www." + host}
}

// HostnameSet derives the deduplicated, sorted set of canonical hostnames
// from a list of site URLs. Unresolvable URLs contribute nothing.
func HostnameSet(urls []string) []string {
	seen := make(map[string]bool)
	var hosts []string
	for _, u := range urls {
		h := Hostname(u)
		if h == "" || seen[h] {
			continue
		}
		seen[h] = true
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}
