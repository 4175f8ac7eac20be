package clusterurl

import (
	"regexp"
	"strings"
)

// RedactedPlaceholder replaces credentials in redacted URLs.
const RedactedPlaceholder = "REDACTED"

// credentialsPattern matches "<scheme>://<user>:<pass>@" up to the last '@'
// before any whitespace. Either side of the colon may be empty, and the
// password may contain '/', '?' or '#'. An '@' later in the path or query
// therefore over-redacts, which never exposes a password.
var credentialsPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9+.\-]*://)\S*:\S*@`)

// Redact hides the user:password part of rawURL behind RedactedPlaceholder.
// URLs without a colon-separated userinfo are returned unchanged.
func Redact(rawURL string) string {
	return RedactWith(rawURL, RedactedPlaceholder)
}

// RedactWith is Redact with a custom placeholder. An empty placeholder falls
// back to RedactedPlaceholder.
func RedactWith(rawURL, placeholder string) string {
	if placeholder == "" {
		placeholder = RedactedPlaceholder
	}
	loc := credentialsPattern.FindStringSubmatchIndex(rawURL)
	if loc == nil {
		return rawURL
	}
	var b strings.Builder
	b.WriteString(rawURL[:loc[3]])
	b.WriteString(placeholder)
	b.WriteString(rawURL[loc[1]-1:])
	return b.String()
}
