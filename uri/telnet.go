package uri

import "braces.dev/errtrace"

// telnetSpec governs telnet URIs (RFC 4248).
type telnetSpec struct{}

func (telnetSpec) Kind() Kind { return "telnet" }

func (telnetSpec) DefaultPort() int { return 23 }

func (telnetSpec) LoginScheme() {}

func (telnetSpec) Init(u *URI) error {
	if err := checkLogin(u); err != nil {
		return errtrace.Wrap(err)
	}
	if u.path != "" && u.path != "/" {
		return errtrace.Wrap(wrapErr(ErrInvalidPath, "telnet URI cannot have path %q", u.path))
	}
	u.path = "/"
	return nil
}
