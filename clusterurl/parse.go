package clusterurl

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingScheme indicates the URL has no "<scheme>://" prefix.
	ErrMissingScheme = errors.New("missing scheme")
	// ErrInvalidCharacter indicates the URL contains a character that is never legal in a URI.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInvalidHost indicates the authority has no usable host.
	ErrInvalidHost = errors.New("invalid host")
	// ErrInvalidPort indicates the port contains something other than digits.
	ErrInvalidPort = errors.New("invalid port")
)

// URL is a cluster URL split into the pieces port correction cares about.
// String reassembles the pieces exactly as they appeared in the input.
type URL struct {
	Scheme      string
	Userinfo    string
	HasUserinfo bool
	Host        string
	// Port is everything after the first colon following the host. It may be
	// empty ("host:") or hold several colon-separated groups ("host:80:443").
	Port    string
	HasPort bool
	// Rest is the path, query and fragment, kept verbatim.
	Rest string
}

// String reassembles the URL.
func (u *URL) String() string {
	var b strings.Builder
	b.WriteString(u.Scheme)
	b.WriteString("://")
	if u.HasUserinfo {
		b.WriteString(u.Userinfo)
		b.WriteByte('@')
	}
	b.WriteString(u.Host)
	if u.HasPort {
		b.WriteByte(':')
		b.WriteString(u.Port)
	}
	b.WriteString(u.Rest)
	return b.String()
}

// IsHTTP reports whether the scheme is exactly "http" or "https".
func (u *URL) IsHTTP() bool {
	return u.Scheme == "http" || u.Scheme == "https"
}

// ambiguousPort reports whether more than one port group is present.
func (u *URL) ambiguousPort() bool {
	return strings.Contains(u.Port, ":")
}

// Parse splits rawURL into scheme, userinfo, host, port and rest.
//
// Parsing is lenient. Empty usernames or passwords, a bare trailing colon and
// repeated port groups are all accepted so that port correction can decide
// what to do with them. Parse fails on a missing scheme, characters that are
// never legal in a URI, an empty host, or a non-numeric port.
func Parse(rawURL string) (*URL, error) {
	if i := strings.IndexFunc(rawURL, isIllegal); i >= 0 {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, rawURL[i], i)
	}

	idx := strings.Index(rawURL, "://")
	if idx <= 0 || !validScheme(rawURL[:idx]) {
		return nil, ErrMissingScheme
	}

	u := &URL{Scheme: rawURL[:idx]}
	authority := rawURL[idx+3:]
	if end := strings.IndexAny(authority, "/?#"); end >= 0 {
		u.Rest = authority[end:]
		authority = authority[:end]
	}

	hostport := authority
	if at := strings.LastIndex(authority, "@"); at >= 0 {
		u.Userinfo = authority[:at]
		u.HasUserinfo = true
		hostport = authority[at+1:]
	}

	if err := u.splitHostPort(hostport); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *URL) splitHostPort(hostport string) error {
	var after string
	if strings.HasPrefix(hostport, "[") {
		end := strings.Index(hostport, "]")
		if end < 0 {
			return fmt.Errorf("%w: unterminated IPv6 literal", ErrInvalidHost)
		}
		u.Host = hostport[:end+1]
		after = hostport[end+1:]
		if after != "" && after[0] != ':' {
			return fmt.Errorf("%w: unexpected %q after IPv6 literal", ErrInvalidHost, after)
		}
	} else if c := strings.Index(hostport, ":"); c >= 0 {
		u.Host = hostport[:c]
		after = hostport[c:]
	} else {
		u.Host = hostport
	}

	if u.Host == "" || u.Host == "[]" {
		return fmt.Errorf("%w: empty host", ErrInvalidHost)
	}

	if after == "" {
		return nil
	}
	u.HasPort = true
	u.Port = after[1:]
	for _, group := range strings.Split(u.Port, ":") {
		if !isDigits(group) {
			return fmt.Errorf("%w: %q", ErrInvalidPort, u.Port)
		}
	}
	return nil
}

// IsValid reports whether s parses and uses the http or https scheme.
// Scheme matching is case-sensitive.
func IsValid(s string) bool {
	u, err := Parse(s)
	if err != nil {
		return false
	}
	return u.IsHTTP()
}

func validScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}

// isDigits reports whether s is empty or all ASCII digits.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIllegal(r rune) bool {
	if r < 0x20 || r == 0x7f || r == ' ' {
		return true
	}
	return strings.ContainsRune("\\\"<>`{}|^", r)
}
