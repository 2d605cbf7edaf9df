package uri

import (
	"log/slog"
	"strings"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/log"
	"github.com/ghettovoice/gouri/internal/syncutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Kind tags the specialization that governs a URI.
// Registered specializations use the scheme name as their kind.
type Kind string

const (
	KindRelative Kind = "relative"
	KindGeneric  Kind = "generic"
)

func (k Kind) String() string { return string(k) }

// Specialization is a scheme-specific rule set.
//
// Init is called after the generic normalization, every time the URI is constructed
// or mutated. It may validate and further normalize u, including through the u setters.
// A returned error aborts the construction or the mutation, leaving the original value untouched.
type Specialization interface {
	Kind() Kind
	Init(u *URI) error
}

// DefaultPorter is implemented by specializations of schemes with a default port.
type DefaultPorter interface {
	DefaultPort() int
}

// LoginScheme is implemented by specializations of schemes using
// the "user:password@host:port" authority form.
type LoginScheme interface {
	LoginScheme()
}

type relativeSpec struct{}

func (relativeSpec) Kind() Kind { return KindRelative }

func (relativeSpec) Init(*URI) error { return nil }

type genericSpec struct{}

func (genericSpec) Kind() Kind { return KindGeneric }

func (genericSpec) Init(*URI) error { return nil }

var (
	specs  syncutil.RWMap[string, Specialization]
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(log.Noop)

	for name, spec := range map[string]Specialization{
		"http":   httpSpec{kind: "http", port: 80},
		"https":  httpSpec{kind: "https", port: 443},
		"rtsp":   httpSpec{kind: "rtsp", port: 554},
		"rtspu":  httpSpec{kind: "rtspu", port: 554},
		"ftp":    ftpSpec{},
		"telnet": telnetSpec{},
		"pop":    popSpec{},
		"urn":    urnSpec{},
		"file":   fileSpec{},
		"data":   dataSpec{},
	} {
		specs.Set(name, spec)
	}
}

// SetLogger sets the logger used by the package. A nil logger disables logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	logger.Store(l)
}

func pkgLog() *slog.Logger { return logger.Load() }

// Register binds the specialization to the scheme name, replacing the previous binding.
// URIs parsed after the call are governed by spec, already constructed URIs are
// re-dispatched on their next mutation.
func Register(scheme string, spec Specialization) error {
	if !grammar.IsScheme(scheme) {
		return errtrace.Wrap(wrapErr(ErrInvalidScheme, "malformed scheme %q", scheme))
	}
	if spec == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil specialization"))
	}

	scheme = util.LCase(scheme)
	if old, ok := specs.Set(scheme, spec); ok {
		pkgLog().Debug("scheme specialization replaced", "scheme", scheme, "old", old.Kind(), "new", spec.Kind())
	} else {
		pkgLog().Debug("scheme specialization registered", "scheme", scheme, "kind", spec.Kind())
	}
	return nil
}

// Unregister removes the specialization bound to the scheme name.
// URIs of that scheme become generic.
func Unregister(scheme string) bool {
	scheme = util.LCase(scheme)
	if _, ok := specs.Del(scheme); ok {
		pkgLog().Debug("scheme specialization unregistered", "scheme", scheme)
		return true
	}
	return false
}

// Lookup returns the specialization bound to the scheme name.
func Lookup(scheme string) (Specialization, bool) {
	return specs.Get(util.LCase(scheme))
}

// Registered returns the sorted names of the schemes with a specialization.
func Registered() []string {
	return syncutil.SortedKeys(&specs, strings.Compare)
}
