// Package render turns gift records into links, QR images and tag scripts.
package render

import (
	"net/url"
	"strings"
)

// AbsoluteURL joins an origin and a path with exactly one slash between them.
func AbsoluteURL(base, path string) string {
	base = strings.TrimRight(base, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// LandingPath is the public page of a gift.
func LandingPath(slug string) string {
	return "/g/" + url.PathEscape(slug)
}

func PublicURL(base, slug string) string {
	return AbsoluteURL(base, LandingPath(slug))
}

// TokenQuery renders "?token=..." for a non-empty admin token and "" otherwise.
func TokenQuery(token string) string {
	if token == "" {
		return ""
	}
	return "?" + url.Values{"token": {token}}.Encode()
}
