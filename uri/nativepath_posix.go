package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// posixPathConverter maps file:///a/b to /a/b. Remote hosts have no POSIX form.
type posixPathConverter struct{}

func (posixPathConverter) ToNative(u *URI) (string, error) {
	if h, _ := u.Host(); h != "" {
		return "", errtrace.Wrap(wrapErr(ErrInvalidHost, "unix path cannot address host %q", h))
	}
	p, err := unescapeNativePath(u.Path(), "/")
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if strings.IndexByte(p, 0) >= 0 {
		return "", errtrace.Wrap(wrapErr(ErrInvalidPath, "unix path cannot contain NUL"))
	}
	return p, nil
}

func (posixPathConverter) FromNative(path string) (*URI, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, errtrace.Wrap(wrapErr(ErrInvalidPath, "unix path %q is not absolute", path))
	}
	return errtrace.Wrap2(Parse("file://" + grammar.EscapeAll(path, grammar.NotPathChar)))
}
