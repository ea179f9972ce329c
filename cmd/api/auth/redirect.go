package auth

import (
	"net/url"
	"strings"
)

// SafeCallbackURL returns target when it is a same-site relative path,
// otherwise fallback. Absolute URLs, scheme-relative "//host" and
// backslash tricks are rejected.
func SafeCallbackURL(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") {
		return fallback
	}
	if strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return fallback
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return fallback
	}
	return target
}
