package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// Resolve transforms the relative reference u into the target URI
// following RFC 3986 Section 5.2.2. It is a no-op if u is already absolute.
// It fails with [ErrInvalidBase] if base is relative.
// The result is dispatched to the specialization of the base scheme,
// an error from it leaves u unchanged.
func (u *URI) Resolve(base *URI) error {
	if !u.IsRelative() {
		return nil
	}
	if base.IsRelative() {
		return errtrace.Wrap(wrapErr(ErrInvalidBase, "cannot resolve against relative reference %q", base.String()))
	}

	t := URI{
		scheme:   base.scheme,
		fragment: u.fragment,
		inInit:   u.inInit,
	}
	switch {
	case u.host.Ok:
		t.userinfo, t.host, t.port = u.userinfo, u.host, u.port
		t.path = grammar.RemoveDotSegments(u.path)
		t.query = u.query
	case u.path == "":
		t.userinfo, t.host, t.port = base.userinfo, base.host, base.port
		t.path = base.path
		t.query = u.query
		if !t.query.Ok {
			t.query = base.query
		}
	default:
		t.userinfo, t.host, t.port = base.userinfo, base.host, base.port
		if u.path[0] == '/' {
			t.path = grammar.RemoveDotSegments(u.path)
		} else {
			t.path = grammar.RemoveDotSegments(grammar.MergePaths(base.path, base.host.Ok, u.path))
		}
		t.query = u.query
	}

	if err := t.finish(); err != nil {
		return errtrace.Wrap(err)
	}
	*u = t
	return nil
}

// Relativize transforms the absolute URI u into a relative reference that
// resolves back to u against base. It is a no-op if u is already relative.
// It fails with [ErrInvalidBase] if base is relative.
//
// u is left unchanged if it has a different scheme or authority than base,
// or if one of the paths is not hierarchical.
func (u *URI) Relativize(base *URI) error {
	if u.IsRelative() {
		return nil
	}
	if base.IsRelative() {
		return errtrace.Wrap(wrapErr(ErrInvalidBase, "cannot relativize against relative reference %q", base.String()))
	}
	if u.scheme != base.scheme || !u.sameAuthority(base) {
		return nil
	}

	path, ok := relativePath(u.path, base.path, u.query.Ok, base.query.Ok)
	// never produce a network-path reference
	if !ok || strings.HasPrefix(path, "//") {
		return nil
	}

	r := URI{
		path:     path,
		query:    u.query,
		fragment: u.fragment,
	}
	r.normalizeStructure()
	*u = r
	return nil
}

func (u *URI) sameAuthority(other *URI) bool {
	if u.host.Ok != other.host.Ok {
		return false
	}
	if !u.host.Ok {
		return true
	}
	p1, ok1 := u.Port()
	p2, ok2 := other.Port()
	return u.host.Val == other.host.Val &&
		optEq(u.userinfo, other.userinfo) &&
		ok1 == ok2 && p1 == p2
}

func relativePath(target, base string, hasQuery, baseHasQuery bool) (string, bool) {
	if target == base && (hasQuery || !baseHasQuery) {
		// the empty reference inherits the base path
		return "", true
	}
	if !strings.HasPrefix(target, "/") || !strings.HasPrefix(base, "/") {
		return "", false
	}
	if target == base {
		// the empty reference would inherit the base query, use the last segment instead
		if seg := target[strings.LastIndexByte(target, '/')+1:]; seg != "" {
			return seg, true
		}
		return "./", true
	}

	baseDirs := strings.Split(base, "/")
	baseDirs = baseDirs[:len(baseDirs)-1]
	segs := strings.Split(target, "/")

	var i int
	for i < len(baseDirs) && i < len(segs)-1 && baseDirs[i] == segs[i] {
		i++
	}

	path := strings.Repeat("../", len(baseDirs)-i) + strings.Join(segs[i:], "/")
	switch {
	case path == "":
		path = "./"
	case path[0] == '/':
		// an empty segment right after the common directories
		path = "./" + path
	}
	return path, true
}
