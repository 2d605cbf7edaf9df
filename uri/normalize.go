package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func normalizeHost(s string) (string, error) {
	// bare IPv6 address given to a setter
	if strings.IndexByte(s, ':') >= 0 && grammar.IsIPv6(s) {
		s = "[" + s + "]"
	}
	h, err := grammar.NormalizeHost(s)
	if err != nil {
		return "", errtrace.Wrap(wrapErr(ErrInvalidHost, err))
	}
	return h, nil
}

func normalizeUserinfo(s string) (string, error) {
	ui, err := grammar.NormalizeEscapes(s, grammar.IsUserinfoChar)
	if err != nil {
		return "", errtrace.Wrap(wrapErr(ErrInvalidUserinfo, err))
	}
	return ui, nil
}

func normalizePath(s string) (string, error) {
	p, err := grammar.NormalizeEscapes(s, grammar.IsPathChar)
	if err != nil {
		return "", errtrace.Wrap(wrapErr(ErrInvalidPath, err))
	}
	return p, nil
}

func normalizeQuery(s string) (string, error) {
	q, err := grammar.NormalizeEscapes(s, grammar.IsQueryChar)
	if err != nil {
		return "", errtrace.Wrap(wrapErr(ErrInvalidQuery, err))
	}
	return q, nil
}

func normalizeFragment(s string) (string, error) {
	f, err := grammar.NormalizeEscapes(s, grammar.IsQueryChar)
	if err != nil {
		return "", errtrace.Wrap(wrapErr(ErrInvalidFragment, err))
	}
	return f, nil
}

// normalizeStructure restores the structural invariants that component
// normalization alone cannot guarantee.
func (u *URI) normalizeStructure() {
	if u.scheme != "" && strings.HasPrefix(u.path, "/") {
		u.path = grammar.RemoveDotSegments(u.path)
	}
	if !u.host.Ok && strings.HasPrefix(u.path, "//") {
		// "//" would be read back as an authority marker
		u.path = "/%2F" + u.path[2:]
	}
	if u.scheme == "" && !u.host.Ok && strings.IndexByte(grammar.FirstSegment(u.path), ':') >= 0 {
		// "a:b" would be read back as a scheme
		u.path = "./" + u.path
	}
}

// finish normalizes u and dispatches it to the specialization registered for its scheme.
// While a specialization initializes u, only the structural normalization runs.
func (u *URI) finish() error {
	u.normalizeStructure()
	if u.inInit {
		return nil
	}
	return errtrace.Wrap(u.dispatch())
}

func (u *URI) dispatch() error {
	u.spec = nil
	if u.scheme == "" {
		return nil
	}
	spec, ok := Lookup(u.scheme)
	if !ok {
		return nil
	}

	u.spec = spec
	u.inInit = true
	err := spec.Init(u)
	u.inInit = false
	if err != nil {
		return errtrace.Wrap(err)
	}
	// Init may replace u entirely
	u.spec = spec
	u.normalizeStructure()
	return nil
}
