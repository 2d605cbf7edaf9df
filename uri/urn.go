package uri

import (
	"strings"

	"braces.dev/errtrace"
	"github.com/google/uuid"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/syncutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// urnSpec governs urn URIs (RFC 8141): urn:<NID>:<NSS>
type urnSpec struct{}

func (urnSpec) Kind() Kind { return "urn" }

func (urnSpec) Init(u *URI) error {
	if u.host.Ok {
		return errtrace.Wrap(wrapErr(ErrInvalidHost, "urn cannot have an authority"))
	}
	if u.query.Ok {
		return errtrace.Wrap(wrapErr(ErrInvalidQuery, "urn cannot have a query"))
	}

	nid, nss, err := splitURN(u.path)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if ns, ok := LookupURNNamespace(nid); ok {
		if nss, err = ns.NormalizeNSS(nss); err != nil {
			return errtrace.Wrap(wrapErr(ErrInvalidPath, err))
		}
	}
	u.path = nid + ":" + nss
	return nil
}

// splitURN returns the lowercased namespace identifier and the namespace specific string.
func splitURN(path string) (nid, nss string, err error) {
	nid, nss, ok := strings.Cut(path, ":")
	if !ok {
		return "", "", errtrace.Wrap(wrapErr(ErrInvalidPath, "urn %q has no namespace specific string", path))
	}
	if !isURNNID(nid) {
		return "", "", errtrace.Wrap(wrapErr(ErrInvalidPath, "invalid urn namespace identifier %q", nid))
	}
	if nid = util.LCase(nid); nid == "urn" {
		return "", "", errtrace.Wrap(wrapErr(ErrInvalidPath, "urn namespace identifier \"urn\" is reserved"))
	}
	if nss == "" {
		return "", "", errtrace.Wrap(wrapErr(ErrInvalidPath, "urn %q has empty namespace specific string", path))
	}
	return nid, nss, nil
}

// isURNNID checks the NID rule: (alphanum) 0*30(ldh) (alphanum).
// A trailing "-" is accepted, as the older RFC 2141 grammar does.
func isURNNID(s string) bool {
	if len(s) == 0 || len(s) > 32 || !isAlphaNum(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isAlphaNum(s[i]) && s[i] != '-' {
			return false
		}
	}
	return true
}

func isAlphaNum(c byte) bool { return grammar.IsAlpha(c) || grammar.IsDigit(c) }

// URNNamespace normalizes and validates the namespace specific strings of one URN namespace.
// The NSS is given and returned in its escaped form.
type URNNamespace interface {
	NormalizeNSS(nss string) (string, error)
}

// URNNamespaceFunc is a function adapter for [URNNamespace].
type URNNamespaceFunc func(nss string) (string, error)

func (fn URNNamespaceFunc) NormalizeNSS(nss string) (string, error) { return fn(nss) }

var urnNamespaces syncutil.RWMap[string, URNNamespace]

func init() {
	urnNamespaces.Set("isbn", URNNamespaceFunc(normalizeISBN))
	urnNamespaces.Set("issn", URNNamespaceFunc(normalizeISSN))
	urnNamespaces.Set("oid", URNNamespaceFunc(normalizeOID))
	urnNamespaces.Set("uuid", URNNamespaceFunc(normalizeUUID))
}

// RegisterURNNamespace binds the NSS rules to the namespace identifier, replacing the previous binding.
func RegisterURNNamespace(nid string, ns URNNamespace) error {
	if !isURNNID(nid) || util.EqFold(nid, "urn") {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid urn namespace identifier %q", nid))
	}
	if ns == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil urn namespace"))
	}
	nid = util.LCase(nid)
	urnNamespaces.Set(nid, ns)
	pkgLog().Debug("urn namespace registered", "nid", nid)
	return nil
}

// UnregisterURNNamespace removes the rules bound to the namespace identifier.
func UnregisterURNNamespace(nid string) bool {
	_, ok := urnNamespaces.Del(util.LCase(nid))
	return ok
}

// LookupURNNamespace returns the rules bound to the namespace identifier.
func LookupURNNamespace(nid string) (URNNamespace, bool) {
	return urnNamespaces.Get(util.LCase(nid))
}

// URN gives access to the parts of a urn URI.
type URN struct {
	u *URI
}

// URN returns the urn view of u. It reports false if u is not governed by the urn rules.
func (u *URI) URN() (URN, bool) {
	if _, ok := u.specialization().(urnSpec); !ok {
		return URN{}, false
	}
	return URN{u}, true
}

// NID returns the lowercase namespace identifier.
func (n URN) NID() string {
	nid, _, _ := strings.Cut(n.u.path, ":")
	return nid
}

// NSS returns the namespace specific string in its escaped form.
func (n URN) NSS() string {
	_, nss, _ := strings.Cut(n.u.path, ":")
	return nss
}

// SetNID replaces the namespace identifier.
// The NSS is checked against the rules of the new namespace.
func (n URN) SetNID(nid string) error {
	_, err := n.u.SetPath(nid + ":" + n.NSS())
	return errtrace.Wrap(err)
}

// SetNSS replaces the namespace specific string, given in its escaped form.
// Characters not allowed in a path are escaped, existing escapes are kept.
func (n URN) SetNSS(nss string) error {
	_, err := n.u.SetPath(n.NID() + ":" + grammar.Escape(nss, grammar.NotPathChar))
	return errtrace.Wrap(err)
}

// UUID returns the UUID of a urn:uuid URI.
func (n URN) UUID() (uuid.UUID, bool) {
	if n.NID() != "uuid" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(n.NSS())
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// FromUUID returns the urn:uuid URI of id (RFC 4122 Section 3).
func FromUUID(id uuid.UUID) *URI {
	return MustParse("urn:uuid:" + id.String())
}
