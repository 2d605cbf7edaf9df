package uri

import (
	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Error kinds. Returned errors wrap one or more of them, test with [errors.Is].
const (
	// ErrSyntax is matched by errors caused by malformed generic syntax.
	// Such errors are of type [*SyntaxError].
	ErrSyntax = grammar.ErrSyntax
	// ErrMalformedEncoding is matched when a "%" is not followed by two hex digits.
	ErrMalformedEncoding = grammar.ErrMalformedEncoding
	ErrInvalidHost       = grammar.ErrInvalidHost
	ErrInvalidPort       = grammar.ErrInvalidPort

	ErrInvalidScheme   errorutil.Error = "invalid scheme"
	ErrInvalidPath     errorutil.Error = "invalid path"
	ErrInvalidUserinfo errorutil.Error = "invalid userinfo"
	ErrInvalidQuery    errorutil.Error = "invalid query"
	ErrInvalidFragment errorutil.Error = "invalid fragment"
	// ErrInvalidOperation is returned by mutations that cannot produce a well-formed URI,
	// e.g. removing the host while a port is set.
	ErrInvalidOperation errorutil.Error = "invalid operation"
	// ErrInvalidBase is returned by resolution and relativization against a relative base.
	ErrInvalidBase errorutil.Error = "invalid base URI"
	// ErrUnsupportedPlatform is returned for unknown native path flavours.
	ErrUnsupportedPlatform errorutil.Error = "unsupported platform"
)

// SyntaxError describes a grammar violation with the offending input and offset.
type SyntaxError = grammar.SyntaxError

func wrapErr(sentinel error, args ...any) error {
	return errorutil.NewWrapperError(sentinel, args...) //errtrace:skip
}
