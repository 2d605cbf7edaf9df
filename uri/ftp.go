package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/util"
)

// ftpSpec governs ftp URIs (RFC 1738 Section 3.2).
type ftpSpec struct{}

func (ftpSpec) Kind() Kind { return "ftp" }

func (ftpSpec) DefaultPort() int { return 21 }

func (ftpSpec) LoginScheme() {}

func (ftpSpec) Init(u *URI) error {
	if err := checkLogin(u); err != nil {
		return errtrace.Wrap(err)
	}
	rootPath(u)

	dir, code, ok := cutTypecode(u.path)
	if !ok {
		return nil
	}
	code = util.LCase(code)
	if !isTypecode(code) {
		return errtrace.Wrap(wrapErr(ErrInvalidPath, "invalid ftp typecode %q", code))
	}
	u.path = dir + ";type=" + code
	return nil
}

func isTypecode(s string) bool { return s == "a" || s == "i" || s == "d" }

// cutTypecode splits the ";type=X" suffix of the last path segment.
func cutTypecode(path string) (rest, code string, found bool) {
	last := path[strings.LastIndexByte(path, '/')+1:]
	name, param, ok := util.CutLast(last, ";")
	if !ok || len(param) < 5 || !util.EqFold(param[:5], "type=") {
		return path, "", false
	}
	return path[:len(path)-len(last)] + name, param[5:], true
}

// FTP gives access to the ftp specific parts of a URI.
type FTP struct {
	u *URI
}

// FTP returns the ftp view of u. It reports false if u is not governed by the ftp rules.
func (u *URI) FTP() (FTP, bool) {
	if _, ok := u.specialization().(ftpSpec); !ok {
		return FTP{}, false
	}
	return FTP{u}, true
}

// Typecode returns the transfer type: "a" for ASCII, "i" for image, "d" for directory listing.
func (f FTP) Typecode() (string, bool) {
	_, code, ok := cutTypecode(f.u.path)
	return code, ok
}

// SetTypecode sets the transfer type, see [FTP.Typecode].
func (f FTP) SetTypecode(code string) error {
	code = util.LCase(code)
	if !isTypecode(code) {
		return errtrace.Wrap(wrapErr(ErrInvalidPath, "invalid ftp typecode %q", code))
	}
	dir, _, _ := cutTypecode(f.u.path)
	_, err := f.u.SetPath(dir + ";type=" + code)
	return errtrace.Wrap(err)
}

// RemoveTypecode removes the transfer type.
func (f FTP) RemoveTypecode() error {
	dir, _, ok := cutTypecode(f.u.path)
	if !ok {
		return nil
	}
	_, err := f.u.SetPath(dir)
	return errtrace.Wrap(err)
}
