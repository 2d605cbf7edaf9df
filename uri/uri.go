package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// URI is a parsed URI reference: either an absolute URI or a relative reference.
//
// All components are kept in normal form: scheme and host lowercased,
// percent-encoding normalized, dot-segments removed from hierarchical paths
// of absolute URIs. The zero value is an empty relative reference.
type URI struct {
	scheme   string
	userinfo Opt[string]
	host     Opt[string] // present host means present authority
	port     Opt[int]
	path     string
	query    Opt[string]
	fragment Opt[string]

	spec   Specialization
	inInit bool
}

// Parse parses s into a URI reference.
//
// Text with a scheme produces an absolute URI governed by the specialization
// registered for that scheme, text without a scheme produces a relative reference.
func Parse(s string) (*URI, error) {
	var u URI
	if err := u.parse(s); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &u, nil
}

// ParseRef parses s and resolves it against base, see [URI.Resolve].
func ParseRef(s string, base *URI) (*URI, error) {
	u, err := Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if err := u.Resolve(base); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(s string) *URI { return util.Must2(Parse(s)) }

func (u *URI) parse(s string) error {
	c, err := grammar.Split(s)
	if err != nil {
		return errtrace.Wrap(err)
	}

	cand := URI{inInit: u.inInit}
	if err := cand.setComponents(&c); err != nil {
		return errtrace.Wrap(err)
	}
	if err := cand.finish(); err != nil {
		return errtrace.Wrap(err)
	}
	*u = cand
	return nil
}

func (u *URI) setComponents(c *grammar.Components) error {
	u.scheme = util.LCase(c.Scheme)
	if c.HasAuthority {
		host, err := normalizeHost(c.Host)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.host = Some(host)
		if c.HasUserinfo {
			ui, err := normalizeUserinfo(c.Userinfo)
			if err != nil {
				return errtrace.Wrap(err)
			}
			u.userinfo = Some(ui)
		}
		// "host:" is the same as "host" (RFC 3986 Section 6.2.3)
		if c.HasPort && c.Port != "" {
			port, err := grammar.ParsePort(c.Port)
			if err != nil {
				return errtrace.Wrap(err)
			}
			u.port = Some(port)
		}
	}

	path, err := normalizePath(c.Path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	u.path = path
	if c.HasQuery {
		q, err := normalizeQuery(c.Query)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.query = Some(q)
	}
	if c.HasFragment {
		f, err := normalizeFragment(c.Fragment)
		if err != nil {
			return errtrace.Wrap(err)
		}
		u.fragment = Some(f)
	}
	return nil
}

// Clone returns an independent copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	return &u2
}

// IsRelative reports whether u is a relative reference, i.e. has no scheme.
func (u *URI) IsRelative() bool { return u == nil || u.scheme == "" }

// Kind returns the tag of the specialization that governs u.
func (u *URI) Kind() Kind { return u.specialization().Kind() }

// Specialization returns the specialization that governs u.
func (u *URI) Specialization() Specialization { return u.specialization() }

func (u *URI) specialization() Specialization {
	switch {
	case u == nil || u.scheme == "":
		return relativeSpec{}
	case u.spec == nil:
		return genericSpec{}
	default:
		return u.spec
	}
}

// DefaultPort returns the default port of the URI scheme, if the governing
// specialization declares one.
func (u *URI) DefaultPort() (int, bool) {
	if dp, ok := u.specialization().(DefaultPorter); ok {
		return dp.DefaultPort(), true
	}
	return 0, false
}

// Scheme returns the lowercase scheme or an empty string for relative references.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// HasAuthority reports whether the authority component is present.
func (u *URI) HasAuthority() bool { return u != nil && u.host.Ok }

// UserInfo returns the userinfo in its escaped form.
func (u *URI) UserInfo() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.userinfo.Get()
}

// Host returns the lowercase host. IP literals are returned in brackets.
// An empty host with true flag means an empty authority, e.g. "file:///etc".
func (u *URI) Host() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.host.Get()
}

// Port returns the port. If the port is not set, but the URI has an authority,
// the default port of the scheme is returned when known.
func (u *URI) Port() (int, bool) {
	if u == nil || !u.host.Ok {
		return 0, false
	}
	if u.port.Ok {
		return u.port.Val, true
	}
	return u.DefaultPort()
}

// Path returns the path in its escaped form. The path is always present, but may be empty.
func (u *URI) Path() string {
	if u == nil {
		return ""
	}
	return u.path
}

// Query returns the query in its escaped form.
func (u *URI) Query() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.query.Get()
}

// Fragment returns the fragment in its escaped form.
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.fragment.Get()
}

// Authority returns the serialized authority "userinfo@host:port".
// The port is omitted when it equals the default port.
func (u *URI) Authority() (string, bool) {
	if u == nil || !u.host.Ok {
		return "", false
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.renderAuthority(sb) //nolint:errcheck
	return sb.String(), true
}

// RenderTo writes the canonical string form of the URI to w.
func (u *URI) RenderTo(w io.Writer) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteStringIf(u.scheme != "", u.scheme, ":")
	if u.host.Ok {
		cw.WriteString("//").Call(u.renderAuthority)
	}
	cw.WriteString(u.path)
	cw.WriteStringIf(u.query.Ok, "?", u.query.Val)
	cw.WriteStringIf(u.fragment.Ok, "#", u.fragment.Val)
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderAuthority(w io.Writer) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteStringIf(u.userinfo.Ok, u.userinfo.Val, "@")
	cw.WriteString(u.host.Val)
	if u.port.Ok {
		if dp, ok := u.DefaultPort(); !ok || dp != u.port.Val {
			cw.WriteString(":", strconv.Itoa(u.port.Val))
		}
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the canonical string form of the URI.
func (u *URI) Render() string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb) //nolint:errcheck
	return sb.String()
}

// String returns the canonical string form of the URI.
func (u *URI) String() string { return u.Render() }

// Format implements [fmt.Formatter] for custom formatting of the URI.
// Verb %+s appends the kind tag: "http://example.com/ (http)".
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			fmt.Fprintf(f, "%s (%s)", u.String(), u.Kind())
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// LogValue implements [log/slog.LogValuer].
func (u *URI) LogValue() slog.Value {
	if u == nil {
		return slog.Value{}
	}
	return slog.GroupValue(
		slog.String("kind", string(u.Kind())),
		slog.String("uri", u.String()),
	)
}

// Equal reports whether u equals val after normalization.
// val may be a URI, a *URI or a string. Strings that fail to parse are never equal.
// A relative reference is never equal to an absolute URI.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	case string:
		var err error
		if other, err = Parse(v); err != nil {
			return false
		}
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}
	return u.IsRelative() == other.IsRelative() && u.String() == other.String()
}

// Equal compares two URI references given as *URI, URI or string.
// String arguments are parsed first, parse errors are returned.
func Equal(a, b any) (bool, error) {
	ua, err := toURI(a)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	ub, err := toURI(b)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	return ua.Equal(ub), nil
}

func toURI(v any) (*URI, error) {
	switch v := v.(type) {
	case *URI:
		return v, nil
	case URI:
		return &v, nil
	case string:
		return errtrace.Wrap2(Parse(v))
	case fmt.Stringer:
		return errtrace.Wrap2(Parse(v.String()))
	default:
		return nil, errtrace.Wrap(wrapErr(ErrInvalidOperation, "cannot compare %T as URI", v))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	return errtrace.Wrap(u.parse(string(text)))
}
