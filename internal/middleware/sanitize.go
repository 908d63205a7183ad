package middleware

import (
	"strings"
	"unicode"
)

const (
	maxLoggedRoute  = 180
	maxLoggedMethod = 10
)

// clip drops control characters from request-supplied text before it reaches
// log fields, span names or metric labels, and caps it at limit runes.
func clip(value string, limit int) string {
	var b strings.Builder
	b.Grow(len(value))
	n := 0
	for _, r := range value {
		if unicode.IsControl(r) {
			continue
		}
		if n == limit {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

// SanitizeRoute prepares a request path or chi route pattern for logs and
// the route metric label. An empty path is reported as "/".
func SanitizeRoute(route string) string {
	if route == "" {
		return "/"
	}
	return clip(route, maxLoggedRoute)
}

// SanitizeMethod prepares the request method for logs and metric labels.
func SanitizeMethod(method string) string {
	return clip(method, maxLoggedMethod)
}
