package clusterurl

import "strings"

// Resolution is the outcome of choosing between the primary and fallback URLs.
type Resolution struct {
	// URL is the value to hand to the search client. It may be empty, in
	// which case the client's own default applies.
	URL string `json:"url"`
	// Redacted is URL with credentials hidden. It is only set when the
	// primary source was used.
	Redacted      string     `json:"redacted,omitempty"`
	Source        Source     `json:"source"`
	PrimaryUsed   bool       `json:"primaryUsed"`
	PortAction    PortAction `json:"portAction"`
	RequestedPort string     `json:"requestedPort,omitempty"`
	CanonicalPort int        `json:"canonicalPort,omitempty"`
}

// Options tunes ResolveWith.
type Options struct {
	// Placeholder replaces credentials in Resolution.Redacted.
	// Defaults to RedactedPlaceholder.
	Placeholder string
}

// Resolve picks the URL to use. A present, valid primary wins and is
// port-corrected; anything else yields the fallback verbatim.
func Resolve(primary, fallback string) Resolution {
	return ResolveWith(primary, fallback, Options{})
}

// ResolveWith is Resolve with options.
func ResolveWith(primary, fallback string, opts Options) Resolution {
	if strings.TrimSpace(primary) != "" && IsValid(primary) {
		corrected, change := correctPort(primary)
		return Resolution{
			URL:           corrected,
			Redacted:      RedactWith(corrected, opts.Placeholder),
			Source:        SourcePrimary,
			PrimaryUsed:   true,
			PortAction:    change.action,
			RequestedPort: change.requested,
			CanonicalPort: change.canonical,
		}
	}

	src := SourceFallback
	if strings.TrimSpace(fallback) == "" {
		src = SourceNone
	}
	return Resolution{
		URL:        fallback,
		Source:     src,
		PortAction: PortPassthrough,
	}
}
