package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// checkServerHost requires a non-empty host that is an IP address or a domain name.
func checkServerHost(u *URI) error {
	h, ok := u.host.Get()
	switch {
	case !ok:
		return errtrace.Wrap(wrapErr(ErrInvalidHost, "%s URI requires an authority", u.scheme))
	case h == "":
		return errtrace.Wrap(wrapErr(ErrInvalidHost, "%s URI requires a host", u.scheme))
	case grammar.IsIPLiteral(h) || grammar.IsIPv4(h):
		return nil
	}

	name, err := grammar.Unescape(h)
	if err != nil {
		return errtrace.Wrap(wrapErr(ErrInvalidHost, err))
	}
	if _, ok := dns.IsDomainName(name); !ok || strings.ContainsAny(name, " \t") {
		return errtrace.Wrap(wrapErr(ErrInvalidHost, "%q is not a domain name", name))
	}
	return nil
}

// rootPath turns an empty path into "/".
func rootPath(u *URI) {
	if u.path == "" {
		u.path = "/"
	}
}

// checkLogin validates the "user:password@host:port" authority form.
func checkLogin(u *URI) error {
	if err := checkServerHost(u); err != nil {
		return errtrace.Wrap(err)
	}
	if ui, ok := u.userinfo.Get(); ok {
		if user, _, _ := strings.Cut(ui, ":"); user == "" {
			return errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "empty user name in %q", ui))
		}
	}
	return nil
}

// Login gives access to the user name and password of URIs with a [LoginScheme] specialization.
type Login struct {
	u *URI
}

// Login returns the login view of u. It reports false if the scheme does not use logins.
func (u *URI) Login() (Login, bool) {
	if _, ok := u.specialization().(LoginScheme); !ok {
		return Login{}, false
	}
	return Login{u}, true
}

func (l Login) parts() (user, passwd string, hasUser, hasPasswd bool) {
	ui, ok := l.u.userinfo.Get()
	if !ok {
		return "", "", false, false
	}
	user, passwd, hasPasswd = strings.Cut(ui, ":")
	return user, passwd, true, hasPasswd
}

// User returns the unescaped user name.
func (l Login) User() (string, bool) {
	user, _, ok, _ := l.parts()
	if !ok {
		return "", false
	}
	user, _ = grammar.Unescape(user)
	return user, true
}

// Password returns the unescaped password.
func (l Login) Password() (string, bool) {
	_, passwd, _, ok := l.parts()
	if !ok {
		return "", false
	}
	passwd, _ = grammar.Unescape(passwd)
	return passwd, true
}

// Set replaces the userinfo with the user name and an optional password.
// Both are taken unescaped.
func (l Login) Set(user string, passwd Opt[string]) error {
	if user == "" {
		return errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "empty user name"))
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(escapeLoginPart(user))
	if passwd.Ok {
		sb.WriteByte(':')
		sb.WriteString(escapeLoginPart(passwd.Val))
	}
	_, err := l.u.SetUserInfo(sb.String())
	return errtrace.Wrap(err)
}

func escapeLoginPart(s string) string {
	return grammar.EscapeAll(s, func(c byte) bool { return c == ':' || grammar.NotUserinfoChar(c) })
}
