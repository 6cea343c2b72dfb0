package harvest

import (
	"net/url"
	"strings"
)

// IsValidURL reports whether candidate parses as an absolute URL with an
// http or https scheme. It performs no I/O; callers use it to fail fast
// before any network request.
func IsValidURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ResolveURL converts candidate into an absolute URL against base.
//
// Already-absolute http(s) URLs are returned unchanged. Root-relative
// candidates (leading "/") combine with base's scheme and host. Anything
// else resolves per standard relative-reference rules. On any parse failure
// the candidate is returned unchanged: a broken link in the output is
// preferable to a dropped or failed extraction.
func ResolveURL(candidate, base string) string {
	if strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://") {
		return candidate
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return candidate
	}

	if strings.HasPrefix(candidate, "/") {
		return baseURL.Scheme + "://" + baseURL.Host + candidate
	}

	ref, err := url.Parse(candidate)
	if err != nil {
		return candidate
	}
	return baseURL.ResolveReference(ref).String()
}
