package grammar

// Character classes of RFC 3986 Section 2 and Appendix A.
const (
	clsAlpha uint8 = 1 << iota
	clsDigit
	clsUnreserved
	clsSubDelim
	clsHex
)

var charTable [256]uint8

func init() {
	for c := 'a'; c <= 'z'; c++ {
		charTable[c] |= clsAlpha | clsUnreserved
		charTable[c-'a'+'A'] |= clsAlpha | clsUnreserved
	}
	for c := '0'; c <= '9'; c++ {
		charTable[c] |= clsDigit | clsUnreserved | clsHex
	}
	for c := 'a'; c <= 'f'; c++ {
		charTable[c] |= clsHex
		charTable[c-'a'+'A'] |= clsHex
	}
	for _, c := range []byte("-._~") {
		charTable[c] |= clsUnreserved
	}
	for _, c := range []byte("!$&'()*+,;=") {
		charTable[c] |= clsSubDelim
	}
}

func IsAlpha(c byte) bool { return charTable[c]&clsAlpha != 0 }

func IsDigit(c byte) bool { return charTable[c]&clsDigit != 0 }

func IsHexDigit(c byte) bool { return charTable[c]&clsHex != 0 }

// IsUnreserved checks the unreserved rule: ALPHA / DIGIT / "-" / "." / "_" / "~".
func IsUnreserved(c byte) bool { return charTable[c]&clsUnreserved != 0 }

// IsSchemeChar checks the characters allowed after the first letter of a scheme.
func IsSchemeChar(c byte) bool {
	return charTable[c]&(clsAlpha|clsDigit) != 0 || c == '+' || c == '-' || c == '.'
}

// IsPChar checks the pchar rule without the pct-encoded alternative.
func IsPChar(c byte) bool {
	return charTable[c]&(clsUnreserved|clsSubDelim) != 0 || c == ':' || c == '@'
}

// IsPathChar checks characters allowed literally in a path.
func IsPathChar(c byte) bool { return IsPChar(c) || c == '/' }

// IsQueryChar checks characters allowed literally in a query or a fragment.
func IsQueryChar(c byte) bool { return IsPChar(c) || c == '/' || c == '?' }

// IsUserinfoChar checks characters allowed literally in a userinfo.
func IsUserinfoChar(c byte) bool {
	return charTable[c]&(clsUnreserved|clsSubDelim) != 0 || c == ':'
}

// IsRegNameChar checks characters allowed literally in a reg-name host.
func IsRegNameChar(c byte) bool { return charTable[c]&(clsUnreserved|clsSubDelim) != 0 }

func NotPathChar(c byte) bool { return !IsPathChar(c) }

func NotUserinfoChar(c byte) bool { return !IsUserinfoChar(c) }
