package uri

import (
	"fmt"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/syncutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// fileSpec governs file URIs (RFC 8089).
type fileSpec struct{}

func (fileSpec) Kind() Kind { return "file" }

func (fileSpec) Init(u *URI) error {
	// file:/path is the short form of file:///path
	u.ensureAuthority()
	if u.userinfo.Ok {
		return errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "file URI cannot have userinfo"))
	}
	if u.port.Ok {
		return errtrace.Wrap(wrapErr(ErrInvalidPort, "file URI cannot have a port"))
	}
	if u.host.Val == "localhost" {
		u.host = Some("")
	}
	rootPath(u)
	return nil
}

// PathConverter converts between file URIs and the native paths of one platform.
type PathConverter interface {
	// ToNative returns the native path of the file URI u.
	ToNative(u *URI) (string, error)
	// FromNative returns the file URI of the absolute native path.
	FromNative(path string) (*URI, error)
}

var pathConverters syncutil.RWMap[string, PathConverter]

func init() {
	pathConverters.Set("unix", posixPathConverter{})
	pathConverters.Set("win32", win32PathConverter{})
}

// RegisterPathConverter binds the converter to the platform name, replacing the previous binding.
// Platform names are case-insensitive.
func RegisterPathConverter(platform string, conv PathConverter) error {
	if platform == "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty platform name"))
	}
	if conv == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil path converter"))
	}
	platform = util.LCase(platform)
	pathConverters.Set(platform, conv)
	pkgLog().Debug("path converter registered", "platform", platform)
	return nil
}

func lookupPathConverter(platform string) (PathConverter, error) {
	conv, ok := pathConverters.Get(util.LCase(platform))
	if !ok {
		return nil, errtrace.Wrap(wrapErr(ErrUnsupportedPlatform, "no path converter for %q", platform))
	}
	return conv, nil
}

// unescapeNativePath decodes the path of a file URI.
// Escapes of the separators in seps are rejected, they would change the path segments.
func unescapeNativePath(p, seps string) (string, error) {
	for i := 0; i < len(seps); i++ {
		if esc := fmt.Sprintf("%%%02X", seps[i]); strings.Contains(p, esc) {
			return "", errtrace.Wrap(wrapErr(ErrInvalidPath, "path %q contains escaped separator %s", p, esc))
		}
	}
	s, err := grammar.Unescape(p)
	if err != nil {
		return "", errtrace.Wrap(wrapErr(ErrInvalidPath, err))
	}
	return s, nil
}

// FromNativePath builds a file URI from the absolute native path of the platform, e.g. "unix" or "win32".
// It fails with [ErrUnsupportedPlatform] if no converter is registered for the platform.
func FromNativePath(path, platform string) (*URI, error) {
	conv, err := lookupPathConverter(platform)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	u, err := conv.FromNative(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// File gives access to the file specific parts of a URI.
type File struct {
	u *URI
}

// File returns the file view of u. It reports false if u is not governed by the file rules.
func (u *URI) File() (File, bool) {
	if _, ok := u.specialization().(fileSpec); !ok {
		return File{}, false
	}
	return File{u}, true
}

// NativePath returns the native path of the file on the platform, e.g. "unix" or "win32".
// It fails with [ErrUnsupportedPlatform] if no converter is registered for the platform.
func (f File) NativePath(platform string) (string, error) {
	conv, err := lookupPathConverter(platform)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(conv.ToNative(f.u))
}
