package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// update applies fn to a copy of u, normalizes and re-dispatches the copy
// and stores it into u only if every step succeeds.
func (u *URI) update(fn func(c *URI) error) error {
	c := *u
	if err := fn(&c); err != nil {
		return errtrace.Wrap(err)
	}
	if err := c.finish(); err != nil {
		return errtrace.Wrap(err)
	}
	*u = c
	return nil
}

// ensureAuthority adds an empty-host authority if there is none.
func (u *URI) ensureAuthority() {
	if u.host.Ok {
		return
	}
	u.host = Some("")
	if u.path != "" && !strings.HasPrefix(u.path, "/") {
		u.path = "/" + u.path
	}
}

// SetScheme replaces the scheme and re-dispatches the URI.
// It fails with [ErrInvalidOperation] on relative references, use [URI.Resolve] for them.
func (u *URI) SetScheme(s string) (prev string, err error) {
	prev = u.scheme
	if u.scheme == "" {
		return prev, errtrace.Wrap(wrapErr(ErrInvalidOperation, "cannot set scheme of a relative reference"))
	}
	if !grammar.IsScheme(s) {
		return prev, errtrace.Wrap(wrapErr(ErrInvalidScheme, "malformed scheme %q", s))
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.scheme = util.LCase(s)
		return nil
	}))
}

// SetUserInfo sets the userinfo. Characters outside the userinfo set are escaped.
// An empty-host authority is added if the URI has none.
func (u *URI) SetUserInfo(s string) (prev Opt[string], err error) {
	prev = u.userinfo
	ui, err := normalizeUserinfo(s)
	if err != nil {
		return prev, errtrace.Wrap(err)
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.ensureAuthority()
		c.userinfo = Some(ui)
		return nil
	}))
}

// RemoveUserInfo removes the userinfo.
func (u *URI) RemoveUserInfo() (prev Opt[string], err error) {
	prev = u.userinfo
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.userinfo = None[string]()
		return nil
	}))
}

// SetHost sets the host. An empty string sets an empty host, which keeps the authority present.
// A bare IPv6 address is enclosed in brackets.
func (u *URI) SetHost(s string) (prev Opt[string], err error) {
	prev = u.host
	h, err := normalizeHost(s)
	if err != nil {
		return prev, errtrace.Wrap(err)
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.ensureAuthority()
		c.host = Some(h)
		return nil
	}))
}

// RemoveHost removes the whole authority.
// It fails with [ErrInvalidOperation] if userinfo or port is set.
func (u *URI) RemoveHost() (prev Opt[string], err error) {
	prev = u.host
	if u.userinfo.Ok || u.port.Ok {
		return prev, errtrace.Wrap(wrapErr(ErrInvalidOperation, "cannot remove host while userinfo or port is set"))
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.host = None[string]()
		return nil
	}))
}

// SetPort sets the port. The port is in range 0..65535.
// A port equal to the scheme default port is kept but not serialized.
func (u *URI) SetPort(port int) (prev Opt[int], err error) {
	prev = u.port
	if port < 0 || port > 65535 {
		return prev, errtrace.Wrap(wrapErr(ErrInvalidPort, "port %d out of range", port))
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.ensureAuthority()
		c.port = Some(port)
		return nil
	}))
}

// SetPortString is like [URI.SetPort] but takes the decimal port text.
func (u *URI) SetPortString(s string) (prev Opt[int], err error) {
	port, err := grammar.ParsePort(s)
	if err != nil {
		return u.port, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(u.SetPort(port))
}

// RemovePort removes the port.
func (u *URI) RemovePort() (prev Opt[int], err error) {
	prev = u.port
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.port = None[int]()
		return nil
	}))
}

// SetPath sets the path. Characters outside the path set are escaped.
// It fails with [ErrInvalidPath] if the URI has an authority
// and the path is neither empty nor starts with "/".
func (u *URI) SetPath(s string) (prev string, err error) {
	prev = u.path
	p, err := normalizePath(s)
	if err != nil {
		return prev, errtrace.Wrap(err)
	}
	if u.host.Ok && p != "" && p[0] != '/' {
		return prev, errtrace.Wrap(wrapErr(ErrInvalidPath, "path %q must start with \"/\" when authority is present", s))
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.path = p
		return nil
	}))
}

// SetQuery sets the query. An empty string leaves an empty query, i.e. a trailing "?".
func (u *URI) SetQuery(s string) (prev Opt[string], err error) {
	prev = u.query
	q, err := normalizeQuery(s)
	if err != nil {
		return prev, errtrace.Wrap(err)
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.query = Some(q)
		return nil
	}))
}

// RemoveQuery removes the query.
func (u *URI) RemoveQuery() (prev Opt[string], err error) {
	prev = u.query
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.query = None[string]()
		return nil
	}))
}

// SetFragment sets the fragment. An empty string leaves an empty fragment, i.e. a trailing "#".
func (u *URI) SetFragment(s string) (prev Opt[string], err error) {
	prev = u.fragment
	f, err := normalizeFragment(s)
	if err != nil {
		return prev, errtrace.Wrap(err)
	}
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.fragment = Some(f)
		return nil
	}))
}

// RemoveFragment removes the fragment.
func (u *URI) RemoveFragment() (prev Opt[string], err error) {
	prev = u.fragment
	return prev, errtrace.Wrap(u.update(func(c *URI) error {
		c.fragment = None[string]()
		return nil
	}))
}

// SetString reparses u from s. On failure u is left unchanged.
func (u *URI) SetString(s string) (prev string, err error) {
	prev = u.String()
	return prev, errtrace.Wrap(u.parse(s))
}
