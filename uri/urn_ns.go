package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/google/uuid"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// normalizeISBN checks an ISBN-10 or ISBN-13 (RFC 3187). Hyphens are kept, the "x" check digit is uppercased.
func normalizeISBN(nss string) (string, error) {
	nss = util.UCase(nss)
	digits := strings.ReplaceAll(nss, "-", "")

	var sum int
	switch len(digits) {
	case 10:
		for i := 0; i < 10; i++ {
			c := digits[i]
			var d int
			switch {
			case grammar.IsDigit(c):
				d = int(c - '0')
			case c == 'X' && i == 9:
				d = 10
			default:
				return "", errtrace.Wrap(errorutil.Errorf("invalid isbn %q", nss))
			}
			sum += (10 - i) * d
		}
		if sum%11 != 0 {
			return "", errtrace.Wrap(errorutil.Errorf("isbn %q checksum mismatch", nss))
		}
	case 13:
		for i := 0; i < 13; i++ {
			c := digits[i]
			if !grammar.IsDigit(c) {
				return "", errtrace.Wrap(errorutil.Errorf("invalid isbn %q", nss))
			}
			if i%2 == 0 {
				sum += int(c - '0')
			} else {
				sum += 3 * int(c-'0')
			}
		}
		if sum%10 != 0 {
			return "", errtrace.Wrap(errorutil.Errorf("isbn %q checksum mismatch", nss))
		}
	default:
		return "", errtrace.Wrap(errorutil.Errorf("invalid isbn %q", nss))
	}
	return nss, nil
}

// normalizeISSN checks an ISSN in the NNNN-NNNC form (RFC 3044). The "x" check digit is uppercased.
func normalizeISSN(nss string) (string, error) {
	nss = util.UCase(nss)
	if len(nss) != 9 || nss[4] != '-' {
		return "", errtrace.Wrap(errorutil.Errorf("invalid issn %q", nss))
	}

	digits := nss[:4] + nss[5:]
	var sum int
	for i := 0; i < 8; i++ {
		c := digits[i]
		var d int
		switch {
		case grammar.IsDigit(c):
			d = int(c - '0')
		case c == 'X' && i == 7:
			d = 10
		default:
			return "", errtrace.Wrap(errorutil.Errorf("invalid issn %q", nss))
		}
		sum += (8 - i) * d
	}
	if sum%11 != 0 {
		return "", errtrace.Wrap(errorutil.Errorf("issn %q checksum mismatch", nss))
	}
	return nss, nil
}

// normalizeOID checks a dotted decimal object identifier (RFC 3061).
func normalizeOID(nss string) (string, error) {
	for _, arc := range strings.Split(nss, ".") {
		if arc == "" || len(arc) > 1 && arc[0] == '0' {
			return "", errtrace.Wrap(errorutil.Errorf("invalid oid %q", nss))
		}
		for i := 0; i < len(arc); i++ {
			if !grammar.IsDigit(arc[i]) {
				return "", errtrace.Wrap(errorutil.Errorf("invalid oid %q", nss))
			}
		}
	}
	return nss, nil
}

// normalizeUUID checks a UUID in the 8-4-4-4-12 text form (RFC 4122) and lowercases it.
func normalizeUUID(nss string) (string, error) {
	if len(nss) != 36 {
		return "", errtrace.Wrap(errorutil.Errorf("invalid uuid %q", nss))
	}
	id, err := uuid.Parse(nss)
	if err != nil {
		return "", errtrace.Wrap(errorutil.NewWrapperError(errorutil.Errorf("invalid uuid %q", nss), err))
	}
	return id.String(), nil
}
