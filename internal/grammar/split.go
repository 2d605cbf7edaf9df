package grammar

import (
	"errors"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/grammar/rfc3986"
)

// Components holds the raw text of URI reference components as found in the input.
// Presence flags distinguish an empty component from an absent one.
type Components struct {
	Scheme       string
	HasAuthority bool
	Userinfo     string
	HasUserinfo  bool
	Host         string
	Port         string
	HasPort      bool
	Path         string
	Query        string
	HasQuery     bool
	Fragment     string
	HasFragment  bool
}

// SchemeEnd returns the length of the scheme prefix of s without the ":" separator,
// or 0 if s does not start with "scheme:".
func SchemeEnd(s string) int {
	if len(s) == 0 || !IsAlpha(s[0]) {
		return 0
	}
	for i := 1; i < len(s); i++ {
		switch c := s[i]; {
		case c == ':':
			return i
		case !IsSchemeChar(c):
			return 0
		}
	}
	return 0
}

// IsScheme reports whether s is a scheme token: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme(s string) bool { return isRule(rfc3986.Rules().Scheme, s) }

// Split decomposes s into raw components following RFC 3986 Appendix B.
// The authority is split by [SplitAuthority].
// Everything else is left to component normalization.
func Split(s string) (Components, error) {
	var (
		c    Components
		rest = s
		pos  int
	)
	if n := SchemeEnd(rest); n > 0 {
		c.Scheme = rest[:n]
		rest = rest[n+1:]
		pos = n + 1
	}
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		c.Fragment, c.HasFragment = rest[i+1:], true
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		c.Query, c.HasQuery = rest[i+1:], true
		rest = rest[:i]
	}
	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		auth := rest
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			auth, rest = rest[:i], rest[i:]
		} else {
			rest = ""
		}
		ac, err := SplitAuthority(auth)
		if err != nil {
			var se *SyntaxError
			if errors.As(err, &se) {
				se.Input, se.Index = s, se.Index+pos+2
			}
			return Components{}, errtrace.Wrap(err)
		}
		c.HasAuthority = true
		c.Userinfo, c.HasUserinfo = ac.Userinfo, ac.HasUserinfo
		c.Host = ac.Host
		c.Port, c.HasPort = ac.Port, ac.HasPort
	}
	c.Path = rest
	return c, nil
}

// SplitAuthority decomposes an authority string "userinfo@host:port".
// A well-formed authority is split by the authority rule. Anything else is split
// at the delimiters, leaving the component checks to normalization.
func SplitAuthority(auth string) (Components, error) {
	c := Components{HasAuthority: true}
	if parseAuthority(auth, &c) {
		return c, nil
	}
	if err := scanAuthority(auth, &c); err != nil {
		return Components{}, errtrace.Wrap(err)
	}
	return c, nil
}

func parseAuthority(auth string, c *Components) bool {
	if auth == "" {
		return true
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := rfc3986.Rules().Authority([]byte(auth), ns); err != nil {
		return false
	}
	n := ns.Best()
	if n.Len() != len(auth) {
		return false
	}
	if ui, ok := n.GetNode("userinfo"); ok {
		c.Userinfo, c.HasUserinfo = ui.String(), true
	}
	c.Host = MustGetNode(n, "host").String()
	if port, ok := n.GetNode("port"); ok {
		c.Port, c.HasPort = port.String(), true
	}
	return true
}

// scanAuthority splits a malformed authority at its last "@" and the port ":".
// Only an unterminated IP literal and a non-digit port are reported here.
func scanAuthority(auth string, c *Components) error {
	var offset int
	if i := strings.LastIndexByte(auth, '@'); i >= 0 {
		c.Userinfo, c.HasUserinfo = auth[:i], true
		offset = i + 1
	}
	hostport := auth[offset:]

	hostEnd := len(hostport)
	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			return errtrace.Wrap(newSyntaxErr(auth, offset, "unterminated IP literal", ErrInvalidHost))
		}
		hostEnd = end + 1
		if hostEnd < len(hostport) && hostport[hostEnd] != ':' {
			return errtrace.Wrap(newSyntaxErr(auth, offset+hostEnd, "unexpected character after IP literal", ErrInvalidHost))
		}
	} else if i := strings.LastIndexByte(hostport, ':'); i >= 0 {
		hostEnd = i
	}

	c.Host = hostport[:hostEnd]
	if hostEnd < len(hostport) {
		c.Port, c.HasPort = hostport[hostEnd+1:], true
		if n := matchLen(rfc3986.Rules().Port, c.Port); n != len(c.Port) {
			return errtrace.Wrap(newSyntaxErr(auth, offset+hostEnd+1+max(n, 0), "non-digit in port", ErrInvalidPort))
		}
	}
	return nil
}
