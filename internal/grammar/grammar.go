// Package grammar implements the RFC 3986 generic syntax:
// character classes, the percent-encoding codec, component splitting
// and the host, port and path rules shared by all schemes.
package grammar

//go:generate go tool abnf generate -p rfc3986 -o rfc3986/rfc3986.go rfc3986/rfc3986.abnf
//go:generate go tool errtrace -w .

import (
	"fmt"
	"strconv"

	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrSyntax            Error = "syntax error"
	ErrMalformedEncoding Error = "malformed percent-encoding"
	ErrInvalidHost       Error = "invalid host"
	ErrInvalidPort       Error = "invalid port"
	ErrNodeNotFound      Error = "node not found"
)

// MustGetNode returns the descendant of n with the key k.
func MustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// SyntaxError describes a grammar violation in the input.
// It matches [ErrSyntax] with [errors.Is] and unwraps to the underlying cause.
type SyntaxError struct {
	// Input is the text passed to the parser.
	Input string
	// Index is the byte offset in Input of the offending character, or -1 if undefined.
	Index int
	// Msg is a short description of the violation.
	Msg string
	// Err is an optional underlying cause.
	Err error
}

func (e *SyntaxError) Error() string {
	var at string
	if e.Index >= 0 {
		at = " at offset " + strconv.Itoa(e.Index)
	}
	msg := fmt.Sprintf("%s in %q%s: %s", ErrSyntax, e.Input, at, e.Msg)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax } //nolint:errorlint

func (e *SyntaxError) Unwrap() error { return e.Err }

func newSyntaxErr(input string, idx int, msg string, cause error) *SyntaxError {
	return &SyntaxError{Input: input, Index: idx, Msg: msg, Err: cause}
}
