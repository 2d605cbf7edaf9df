package grammar

import (
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/ghettovoice/gouri/internal/grammar/rfc3986"
)

type rule = func(in []byte, ns *abnf.Nodes) error

// matchLen returns the length of the longest prefix of s matched by r, or -1 if nothing matches.
func matchLen(r rule, s string) int {
	ns := abnf.NewNodes()
	defer ns.Free()

	if err := r([]byte(s), ns); err != nil {
		return -1
	}
	return ns.Best().Len()
}

func isRule(r rule, s string) bool {
	return len(s) > 0 && matchLen(r, s) == len(s)
}

// IsIPv4 checks the IPv4address rule: four dec-octets without leading zeros.
func IsIPv4(s string) bool { return isRule(rfc3986.Rules().IPv4address, s) }

// IsIPv6 checks the IPv6address rule. Zone identifiers are not part of it.
func IsIPv6(s string) bool { return isRule(rfc3986.Rules().IPv6address, s) }

// IsIPLiteral checks the IP-literal rule: "[" ( IPv6address / IPvFuture ) "]".
func IsIPLiteral(s string) bool { return isRule(rfc3986.Rules().IPLiteral, s) }

// NormalizeHost validates host against the host rule and returns its normal form:
// letters lowercased, escapes normalized, IP literals kept in brackets.
// An empty host is valid.
func NormalizeHost(host string) (string, error) {
	if host == "" {
		return "", nil
	}

	if host[0] == '[' {
		if !IsIPLiteral(host) {
			return "", errtrace.Wrap(newSyntaxErr(host, max(matchLen(rfc3986.Rules().IPLiteral, host), 0), "malformed IP literal", ErrInvalidHost))
		}
		return strings.ToLower(host), nil
	}
	if n := matchLen(rfc3986.Rules().Host, host); n != len(host) {
		return "", errtrace.Wrap(newSyntaxErr(host, max(n, 0), "illegal character in host", ErrInvalidHost))
	}

	host, err := NormalizeEscapes(host, IsRegNameChar)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return LowerOutsideEscapes(host), nil
}

// ParsePort parses a port number: 1*DIGIT in range 0..65535.
func ParsePort(s string) (int, error) {
	if s == "" {
		return 0, errtrace.Wrap(newSyntaxErr(s, -1, "empty port", ErrInvalidPort))
	}
	if n := matchLen(rfc3986.Rules().Port, s); n != len(s) {
		return 0, errtrace.Wrap(newSyntaxErr(s, max(n, 0), "non-digit in port", ErrInvalidPort))
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(newSyntaxErr(s, 0, "port out of range", ErrInvalidPort))
	}
	return int(n), nil
}
