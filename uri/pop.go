package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// popSpec governs pop URIs (RFC 2384): pop://user;AUTH=type@host:port
type popSpec struct{}

func (popSpec) Kind() Kind { return "pop" }

func (popSpec) DefaultPort() int { return 110 }

func (popSpec) Init(u *URI) error {
	if err := checkServerHost(u); err != nil {
		return errtrace.Wrap(err)
	}
	if u.path != "" {
		return errtrace.Wrap(wrapErr(ErrInvalidPath, "pop URI cannot have path %q", u.path))
	}
	ui, ok := u.userinfo.Get()
	if !ok {
		return nil
	}

	user, auth, err := splitPOPUserinfo(ui)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if auth == "" || auth == "*" {
		u.userinfo = Some(user)
	} else {
		u.userinfo = Some(user + ";AUTH=" + auth)
	}
	return nil
}

func splitPOPUserinfo(ui string) (user, auth string, err error) {
	user, rest, found := strings.Cut(ui, ";")
	if user == "" {
		return "", "", errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "empty pop user in %q", ui))
	}
	if !found {
		return user, "", nil
	}

	key, auth, _ := strings.Cut(rest, "=")
	if !util.EqFold(key, "auth") || auth == "" || strings.ContainsAny(auth, ";:") {
		return "", "", errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "malformed pop auth %q", rest))
	}
	return user, auth, nil
}

// POP gives access to the pop specific parts of a URI.
type POP struct {
	u *URI
}

// POP returns the pop view of u. It reports false if u is not governed by the pop rules.
func (u *URI) POP() (POP, bool) {
	if _, ok := u.specialization().(popSpec); !ok {
		return POP{}, false
	}
	return POP{u}, true
}

// User returns the unescaped user name.
func (p POP) User() (string, bool) {
	ui, ok := p.u.userinfo.Get()
	if !ok {
		return "", false
	}
	user, _, _ := strings.Cut(ui, ";")
	user, _ = grammar.Unescape(user)
	return user, true
}

// Auth returns the authentication mechanism.
// It is "*" when the URI has no explicit mechanism, which means any one.
func (p POP) Auth() string {
	ui, _ := p.u.userinfo.Get()
	if _, auth, ok := strings.Cut(ui, ";AUTH="); ok {
		return auth
	}
	return "*"
}

// SetUser sets the user name, keeping the authentication mechanism.
func (p POP) SetUser(user string) error {
	return errtrace.Wrap(p.set(user, p.Auth()))
}

// SetAuth sets the authentication mechanism. "*" removes the explicit mechanism.
func (p POP) SetAuth(auth string) error {
	user, ok := p.User()
	if !ok {
		return errtrace.Wrap(wrapErr(ErrInvalidOperation, "pop auth requires a user"))
	}
	return errtrace.Wrap(p.set(user, auth))
}

func (p POP) set(user, auth string) error {
	if user == "" {
		return errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "empty pop user"))
	}
	ui := grammar.EscapeAll(user, func(c byte) bool { return c == ';' || grammar.NotUserinfoChar(c) })
	if auth != "" && auth != "*" {
		ui += ";AUTH=" + grammar.EscapeAll(auth, func(c byte) bool { return c == ';' || c == ':' || grammar.NotUserinfoChar(c) })
	}
	_, err := p.u.SetUserInfo(ui)
	return errtrace.Wrap(err)
}
