package uri

import "braces.dev/errtrace"

// httpSpec governs http, https, rtsp and rtspu URIs (RFC 9110, RFC 7826).
type httpSpec struct {
	kind Kind
	port int
}

func (s httpSpec) Kind() Kind { return s.kind }

func (s httpSpec) DefaultPort() int { return s.port }

func (httpSpec) Init(u *URI) error {
	if err := checkServerHost(u); err != nil {
		return errtrace.Wrap(err)
	}
	if u.userinfo.Ok {
		return errtrace.Wrap(wrapErr(ErrInvalidUserinfo, "%s URI cannot have userinfo", u.scheme))
	}
	rootPath(u)
	return nil
}
