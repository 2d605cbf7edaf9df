// Package uri provides parsing, validation, normalization and manipulation of
// Uniform Resource Identifiers according to RFC 3986, together with the rules of
// a set of well-known schemes.
//
// # Overview
//
// A single type, [URI], represents both absolute URIs and relative references.
// Every value is kept in normal form (RFC 3986 Section 6.2.2):
//
//   - scheme and host are lowercased, the path is never case-folded;
//   - escapes of unreserved characters are decoded, other escapes get uppercase hex digits;
//   - characters that are not allowed in a component are percent-encoded;
//   - "." and ".." segments are removed from hierarchical paths of absolute URIs;
//   - a port equal to the scheme default port is not serialized.
//
// Optional components are represented with [Opt], so an empty query ("http://h/?")
// is distinct from an absent one ("http://h/").
//
// # Parsing
//
//	u, err := uri.Parse("HTTP://Example.COM:80/a/./b/../c?q#f")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u) // http://example.com/a/c?q#f
//	port, _ := u.Port() // 80
//
// [ParseRef] parses a reference and resolves it against a base URI in one step.
//
// # Scheme specializations
//
// After the generic rules are applied, the URI is dispatched to the [Specialization]
// registered for its scheme, which may validate and normalize it further.
// Built-in specializations:
//
//   - http, https, rtsp, rtspu: a host is required, userinfo is forbidden, the empty path becomes "/";
//   - ftp, telnet: "user:password@host" logins, see [URI.Login] and [URI.FTP];
//   - pop: "user;AUTH=type@host" mailboxes, see [URI.POP];
//   - urn: "urn:nid:nss" names with the isbn, issn, oid and uuid namespaces, see [URI.URN];
//   - file: local and UNC files, conversion to native paths, see [URI.File] and [FromNativePath];
//   - data: inline data, see [URI.Data] and [NewData].
//
// URIs with other schemes follow the generic rules only. [Register] binds custom
// specializations, [URI.Kind] tells which one governs a URI.
//
// # Mutation
//
// Setters validate the new value, normalize and re-dispatch a copy of the URI, and
// store it only on success: a failed setter never leaves a partially updated URI.
// Each setter returns the previous value.
//
// # Resolution
//
// [URI.Resolve] implements the reference resolution of RFC 3986 Section 5.2,
// [URI.Relativize] is its inverse.
//
// # Thread Safety
//
// URI values are not safe for concurrent modification, use [URI.Clone] to share them.
// The scheme, URN namespace and path converter registries are safe for concurrent use.
package uri
