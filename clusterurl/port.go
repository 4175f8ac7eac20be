package clusterurl

import "strconv"

// Source identifies which candidate a URL came from.
type Source string

const (
	// SourcePrimary is the first-priority candidate (BONSAI_URL).
	SourcePrimary Source = "primary"
	// SourceFallback is the second-priority candidate (ELASTICSEARCH_URL).
	SourceFallback Source = "fallback"
	// SourceNone means neither candidate held a value.
	SourceNone Source = "none"
)

// PortAction describes what port correction did to a URL.
type PortAction string

const (
	// PortAppended means the URL had no port and the standard one was added.
	PortAppended PortAction = "appended"
	// PortOverridden means a non-standard port was replaced.
	PortOverridden PortAction = "overridden"
	// PortUnchanged means the URL already carried the standard port.
	PortUnchanged PortAction = "unchanged"
	// PortPassthrough means the URL was left alone: it came from the fallback
	// source, failed to parse, used another scheme, or had an ambiguous port.
	PortPassthrough PortAction = "passthrough"
)

// CanonicalPort returns the standard port for scheme.
func CanonicalPort(scheme string) (int, bool) {
	switch scheme {
	case "http":
		return 80, true
	case "https":
		return 443, true
	}
	return 0, false
}

// CorrectPort pins a primary-source URL to its scheme's standard port.
// URLs from any other source are returned untouched.
func CorrectPort(rawURL string, src Source) string {
	if src != SourcePrimary {
		return rawURL
	}
	out, _ := correctPort(rawURL)
	return out
}

// portChange is the outcome of correctPort.
type portChange struct {
	action    PortAction
	requested string
	canonical int
}

func correctPort(rawURL string) (string, portChange) {
	pass := portChange{action: PortPassthrough}

	u, err := Parse(rawURL)
	if err != nil {
		return rawURL, pass
	}
	canonical, ok := CanonicalPort(u.Scheme)
	if !ok {
		return rawURL, pass
	}
	if u.ambiguousPort() {
		pass.requested = u.Port
		return rawURL, pass
	}

	change := portChange{requested: u.Port, canonical: canonical}
	if u.Port != "" {
		if n, err := strconv.Atoi(u.Port); err == nil && n == canonical {
			change.action = PortUnchanged
			return rawURL, change
		}
		change.action = PortOverridden
	} else {
		change.action = PortAppended
	}

	u.HasPort = true
	u.Port = strconv.Itoa(canonical)
	return u.String(), change
}
