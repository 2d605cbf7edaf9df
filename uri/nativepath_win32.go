package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// win32PathConverter maps file:///C:/a/b to C:\a\b and file://server/share/a to \\server\share\a.
type win32PathConverter struct{}

func (win32PathConverter) ToNative(u *URI) (string, error) {
	p, err := unescapeNativePath(u.Path(), `/\`)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if h, _ := u.Host(); h != "" {
		host, err := grammar.Unescape(h)
		if err != nil {
			return "", errtrace.Wrap(wrapErr(ErrInvalidHost, err))
		}
		return `\\` + host + toBackslashes(p), nil
	}

	// "/C:/dir", "/C|/dir" or bare "/C:"
	if len(p) < 3 || p[0] != '/' || !grammar.IsAlpha(p[1]) || p[2] != ':' && p[2] != '|' || len(p) > 3 && p[3] != '/' {
		return "", errtrace.Wrap(wrapErr(ErrInvalidPath, "win32 path %q has no drive letter", p))
	}
	rest := p[3:]
	if rest == "" {
		rest = "/"
	}
	return p[1:2] + ":" + toBackslashes(rest), nil
}

func (win32PathConverter) FromNative(path string) (*URI, error) {
	p := strings.ReplaceAll(path, `\`, "/")
	switch {
	case strings.HasPrefix(p, "//"):
		host, rest, _ := strings.Cut(p[2:], "/")
		if host == "" {
			return nil, errtrace.Wrap(wrapErr(ErrInvalidPath, "win32 UNC path %q has no server", path))
		}
		host = grammar.EscapeAll(host, func(c byte) bool { return !grammar.IsRegNameChar(c) })
		return errtrace.Wrap2(Parse("file://" + host + "/" + grammar.EscapeAll(rest, grammar.NotPathChar)))
	case len(p) >= 2 && grammar.IsAlpha(p[0]) && p[1] == ':' && (len(p) == 2 || p[2] == '/'):
		rest := p[2:]
		if rest == "" {
			rest = "/"
		}
		return errtrace.Wrap2(Parse("file:///" + p[:2] + grammar.EscapeAll(rest, grammar.NotPathChar)))
	default:
		return nil, errtrace.Wrap(wrapErr(ErrInvalidPath, "win32 path %q is not absolute", path))
	}
}

func toBackslashes(p string) string { return strings.ReplaceAll(p, "/", `\`) }
