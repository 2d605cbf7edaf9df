package grammar

import (
	"strings"

	"braces.dev/errtrace"
)

const upperhex = "0123456789ABCDEF"

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// isEscape reports whether s[i:] starts with "%" HEXDIG HEXDIG.
func isEscape(s string, i int) bool {
	return s[i] == '%' && i+2 < len(s) && IsHexDigit(s[i+1]) && IsHexDigit(s[i+2])
}

func writeEscaped(sb *strings.Builder, c byte) {
	sb.WriteByte('%')
	sb.WriteByte(upperhex[c>>4])
	sb.WriteByte(upperhex[c&15])
}

func malformedEscapeErr(s string, i int) error {
	end := min(i+3, len(s))
	return errtrace.Wrap(newSyntaxErr(s, i, "bad escape "+quoteSnippet(s[i:end]), ErrMalformedEncoding))
}

func quoteSnippet(s string) string { return `"` + s + `"` }

// Escape replaces each byte matched by shouldEscape with its "%" HEXDIG HEXDIG form.
// Valid escapes already present in s are kept as they are, so Escape never double-encodes.
// A nil shouldEscape escapes everything except unreserved characters.
func Escape(s string, shouldEscape func(c byte) bool) string {
	if shouldEscape == nil {
		shouldEscape = func(c byte) bool { return !IsUnreserved(c) }
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch {
		case isEscape(s, i):
			sb.WriteString(s[i : i+3])
			i += 2
		case shouldEscape(s[i]):
			writeEscaped(&sb, s[i])
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// EscapeAll escapes every byte matched by shouldEscape including "%".
// It is meant for raw data, where a "%" is never the start of an escape.
func EscapeAll(s string, shouldEscape func(c byte) bool) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '%' || shouldEscape(c) {
			writeEscaped(&sb, c)
		} else {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Unescape decodes every "%" HEXDIG HEXDIG escape of s.
// It fails with [ErrMalformedEncoding] if a "%" is not followed by two hex digits.
func Unescape(s string) (string, error) {
	i := strings.IndexByte(s, '%')
	if i < 0 {
		return s, nil
	}

	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:i])
	for ; i < len(s); i++ {
		if s[i] != '%' {
			sb.WriteByte(s[i])
			continue
		}
		if !isEscape(s, i) {
			return "", malformedEscapeErr(s, i)
		}
		sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
		i += 2
	}
	return sb.String(), nil
}

// NormalizeEscapes brings s to the RFC 3986 Section 6.2.2 normal form for a component
// whose literal characters are defined by allowed:
//   - escapes of unreserved characters are decoded;
//   - other escapes are kept with uppercase hex digits;
//   - literal bytes not in allowed are escaped.
//
// It fails with [ErrMalformedEncoding] if a "%" is not followed by two hex digits.
func NormalizeEscapes(s string, allowed func(c byte) bool) (string, error) {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '%':
			if !isEscape(s, i) {
				return "", malformedEscapeErr(s, i)
			}
			if d := unhex(s[i+1])<<4 | unhex(s[i+2]); IsUnreserved(d) {
				sb.WriteByte(d)
			} else {
				writeEscaped(&sb, d)
			}
			i += 2
		case allowed(c):
			sb.WriteByte(c)
		default:
			writeEscaped(&sb, c)
		}
	}
	return sb.String(), nil
}

// LowerOutsideEscapes lowercases ASCII letters of s except the hex digits of escapes.
func LowerOutsideEscapes(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if isEscape(s, i) {
			i += 2
			continue
		}
		if 'A' <= b[i] && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
