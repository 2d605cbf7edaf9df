package uri_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/goleak"

	"github.com/ghettovoice/gouri/uri"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		want     string
		wantKind uri.Kind
		wantErr  error
	}{
		{"empty", "", "", uri.KindRelative, nil},
		{"relative path", "../a/./b", "../a/./b", uri.KindRelative, nil},
		{"relative colon in first segment", "1a:b", "./1a:b", uri.KindRelative, nil},
		{"network path", "//Example.com/x", "//example.com/x", uri.KindRelative, nil},
		{"case", "HTTP://EXAMPLE.COM:80/FOO", "http://example.com/FOO", "http", nil},
		{"empty http path", "http://example.com", "http://example.com/", "http", nil},
		{"https default port", "https://EXAMPLE.com:443", "https://example.com/", "https", nil},
		{"explicit port", "http://example.com:8080/a%2fb", "http://example.com:8080/a%2Fb", "http", nil},
		{"empty port", "http://example.com:/", "http://example.com/", "http", nil},
		{"unreserved escape", "http://example.com/%7Efoo", "http://example.com/~foo", "http", nil},
		{"escaped host", "http://ex%41mple.com/", "http://example.com/", "http", nil},
		{"space in path", "http://example.com/a b", "http://example.com/a%20b", "http", nil},
		{"dot segments", "http://a/b/c/./../../g", "http://a/g", "http", nil},
		{"ipv6", "HTTP://[FE80::1]:8080/", "http://[fe80::1]:8080/", "http", nil},
		{"generic", "foo://u@[::1]:99/x?y#z", "foo://u@[::1]:99/x?y#z", uri.KindGeneric, nil},
		{"generic opaque", "FOO:Bar", "foo:Bar", uri.KindGeneric, nil},
		{"generic empty", "foo:", "foo:", uri.KindGeneric, nil},
		{"generic empty authority", "foo:///x", "foo:///x", uri.KindGeneric, nil},
		{"generic rootless dots kept", "foo:a/../b", "foo:a/../b", uri.KindGeneric, nil},
		{"generic absolute dots removed", "foo:/a/../b", "foo:/b", uri.KindGeneric, nil},
		{"empty query and fragment", "foo:x?#", "foo:x?#", uri.KindGeneric, nil},
		{"mailto", "mailto:John.Doe@example.com", "mailto:John.Doe@example.com", uri.KindGeneric, nil},
		{"rtsp", "rtsp://media.example.com:554/twister", "rtsp://media.example.com/twister", "rtsp", nil},
		{"rtspu", "rtspu://media.example.com/x", "rtspu://media.example.com/x", "rtspu", nil},

		{"incomplete escape", "http://example.com/%2", "", "", uri.ErrMalformedEncoding},
		{"incomplete escape in path", "foo:/a%zz", "", "", uri.ErrInvalidPath},
		{"bad escape in query", "foo:x?%g1", "", "", uri.ErrInvalidQuery},
		{"bad escape in fragment", "foo:x#%", "", "", uri.ErrInvalidFragment},
		{"bad escape in userinfo", "foo://%x@h", "", "", uri.ErrInvalidUserinfo},
		{"bad port", "http://host:12x4/", "", "", uri.ErrSyntax},
		{"port out of range", "http://host:70000/", "", "", uri.ErrInvalidPort},
		{"bad host", "foo://ho st/", "", "", uri.ErrInvalidHost},
		{"unterminated ip literal", "http://[::1/", "", "", uri.ErrInvalidHost},
		{"http empty host", "http:///path", "", "", uri.ErrInvalidHost},
		{"http no authority", "http:path", "", "", uri.ErrInvalidHost},
		{"http userinfo", "http://user@host/", "", "", uri.ErrInvalidUserinfo},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u, err := uri.Parse(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("uri.Parse(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if got := u.String(); got != c.want {
				t.Errorf("uri.Parse(%q).String() = %q, want %q", c.input, got, c.want)
			}
			if got := u.Kind(); got != c.wantKind {
				t.Errorf("uri.Parse(%q).Kind() = %q, want %q", c.input, got, c.wantKind)
			}

			// normal form is stable
			u2, err := uri.Parse(u.String())
			if err != nil {
				t.Fatalf("uri.Parse(%q) error = %v, want nil", u.String(), err)
			}
			if got := u2.String(); got != c.want {
				t.Errorf("uri.Parse(%q).String() = %q, want %q", u.String(), got, c.want)
			}
			if !u2.Equal(u) {
				t.Errorf("uri.Parse(%q).Equal(%q) = false, want true", u.String(), c.input)
			}
		})
	}
}

func TestURI_Components(t *testing.T) {
	t.Parallel()

	type opt = uri.Opt[string]
	type comps struct {
		Scheme   string
		UserInfo opt
		Host     opt
		Port     uri.Opt[int]
		Path     string
		Query    opt
		Fragment opt
	}

	get := func(u *uri.URI) comps {
		var c comps
		c.Scheme = u.Scheme()
		c.UserInfo.Val, c.UserInfo.Ok = u.UserInfo()
		c.Host.Val, c.Host.Ok = u.Host()
		c.Port.Val, c.Port.Ok = u.Port()
		c.Path = u.Path()
		c.Query.Val, c.Query.Ok = u.Query()
		c.Fragment.Val, c.Fragment.Ok = u.Fragment()
		return c
	}

	cases := []struct {
		input string
		want  comps
	}{
		{
			"HTTP://EXAMPLE.COM:80/FOO",
			comps{Scheme: "http", Host: uri.Some("example.com"), Port: uri.Some(80), Path: "/FOO"},
		},
		{
			"http://example.com",
			comps{Scheme: "http", Host: uri.Some("example.com"), Port: uri.Some(80), Path: "/"},
		},
		{
			"foo://u:p@h:1/p?q#f",
			comps{
				Scheme:   "foo",
				UserInfo: uri.Some("u:p"),
				Host:     uri.Some("h"),
				Port:     uri.Some(1),
				Path:     "/p",
				Query:    uri.Some("q"),
				Fragment: uri.Some("f"),
			},
		},
		{"foo://h/p", comps{Scheme: "foo", Host: uri.Some("h"), Path: "/p"}},
		{"file:///etc", comps{Scheme: "file", Host: uri.Some(""), Path: "/etc"}},
		{"x:?#", comps{Scheme: "x", Query: uri.Some(""), Fragment: uri.Some("")}},
		{"a/b", comps{Path: "a/b"}},
		{"", comps{}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			got := get(uri.MustParse(c.input))
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("components of %q = %+v, want %+v\ndiff (-got +want):\n%v", c.input, got, c.want, diff)
			}
		})
	}
}

func TestURI_DefaultPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		want   int
		wantOk bool
	}{
		{"http://h/", 80, true},
		{"https://h/", 443, true},
		{"ftp://h/", 21, true},
		{"telnet://h", 23, true},
		{"pop://h", 110, true},
		{"rtsp://h", 554, true},
		{"file:///x", 0, false},
		{"foo://h", 0, false},
		{"a/b", 0, false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			got, ok := uri.MustParse(c.input).DefaultPort()
			if got != c.want || ok != c.wantOk {
				t.Errorf("uri.MustParse(%q).DefaultPort() = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.wantOk)
			}
		})
	}
}

func TestURI_IsRelative(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"a/b", true},
		{"//h/p", true},
		{"?q", true},
		{"foo:", false},
		{"http://h/", false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			if got := uri.MustParse(c.input).IsRelative(); got != c.want {
				t.Errorf("uri.MustParse(%q).IsRelative() = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestURI_Clone(t *testing.T) {
	t.Parallel()

	if got := (*uri.URI)(nil).Clone(); got != nil {
		t.Errorf("(*uri.URI)(nil).Clone() = %v, want nil", got)
	}

	u := uri.MustParse("http://example.com/a?b#c")
	u2 := u.Clone()
	if _, err := u2.SetPath("/x"); err != nil {
		t.Fatalf("u2.SetPath(\"/x\") error = %v, want nil", err)
	}
	if got, want := u.String(), "http://example.com/a?b#c"; got != want {
		t.Errorf("u.String() = %q, want %q", got, want)
	}
	if got, want := u2.String(), "http://example.com/x?b#c"; got != want {
		t.Errorf("u2.String() = %q, want %q", got, want)
	}
	if got, want := u2.Kind(), uri.Kind("http"); got != want {
		t.Errorf("u2.Kind() = %q, want %q", got, want)
	}
}

func TestURI_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		uri  *uri.URI
		val  any
		want bool
	}{
		{"nil ptr to nil", (*uri.URI)(nil), nil, false},
		{"nil ptr to nil ptr", (*uri.URI)(nil), (*uri.URI)(nil), true},
		{"zero ptr to nil ptr", &uri.URI{}, (*uri.URI)(nil), false},
		{"zero ptr to zero ptr", &uri.URI{}, &uri.URI{}, true},
		{"zero ptr to zero val", &uri.URI{}, uri.URI{}, true},
		{"case insensitive", uri.MustParse("http://example.com/a"), "HTTP://EXAMPLE.COM:80/a", true},
		{"path case sensitive", uri.MustParse("http://example.com/a"), "http://example.com/A", false},
		{"escapes", uri.MustParse("http://x/%7e%2f"), "http://x/~%2F", true},
		{"empty query", uri.MustParse("foo:x?"), "foo:x", false},
		{"relative vs absolute", uri.MustParse("foo/bar"), "http://x/foo/bar", false},
		{"invalid string", uri.MustParse("foo:x"), "foo:%", false},
		{"type mismatch", uri.MustParse("foo:x"), 42, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.uri.Equal(c.val); got != c.want {
				t.Errorf("uri.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		a, b    any
		want    bool
		wantErr error
	}{
		{"relative vs absolute", "foo/bar", "http://x/foo/bar", false, nil},
		{"absolute vs relative", uri.MustParse("http://x/foo/bar"), "foo/bar", false, nil},
		{"default port", "http://EXAMPLE.com:80/", "http://example.com", true, nil},
		{"parsed and text", uri.MustParse("foo:a"), "FOO:a", true, nil},
		{"value", *uri.MustParse("foo:a"), uri.MustParse("foo:a"), true, nil},
		{"malformed", "http://x/%2", "http://x/", false, uri.ErrMalformedEncoding},
		{"unsupported type", 42, "foo:a", false, uri.ErrInvalidOperation},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.Equal(c.a, c.b)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.Equal(%v, %v) error = %v, want %v\ndiff (-got +want):\n%v", c.a, c.b, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("uri.Equal(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestURI_Format(t *testing.T) {
	t.Parallel()

	u := uri.MustParse("http://example.com/a")
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "http://example.com/a"},
		{"%+s", "http://example.com/a (http)"},
		{"%q", `"http://example.com/a"`},
	}

	for _, c := range cases {
		t.Run(c.format, func(t *testing.T) {
			t.Parallel()

			if got := fmt.Sprintf(c.format, u); got != c.want {
				t.Errorf("fmt.Sprintf(%q, u) = %q, want %q", c.format, got, c.want)
			}
		})
	}
}

func TestURI_RenderTo(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	u := uri.MustParse("foo://user@h:1/p?q#f")
	n, err := u.RenderTo(&sb)
	if err != nil {
		t.Fatalf("u.RenderTo(sb) error = %v, want nil", err)
	}
	if got, want := sb.String(), "foo://user@h:1/p?q#f"; got != want {
		t.Errorf("sb.String() = %q, want %q", got, want)
	}
	if n != sb.Len() {
		t.Errorf("u.RenderTo(sb) = %d, want %d", n, sb.Len())
	}

	if n, err := (*uri.URI)(nil).RenderTo(&sb); n != 0 || err != nil {
		t.Errorf("(*uri.URI)(nil).RenderTo(sb) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestURI_Authority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input  string
		want   string
		wantOk bool
	}{
		{"foo://u@h:1/p", "u@h:1", true},
		{"http://h:80/p", "h", true},
		{"file:///p", "", true},
		{"foo:p", "", false},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			got, ok := uri.MustParse(c.input).Authority()
			if got != c.want || ok != c.wantOk {
				t.Errorf("uri.MustParse(%q).Authority() = (%q, %v), want (%q, %v)", c.input, got, ok, c.want, c.wantOk)
			}
		})
	}
}

func TestURI_MarshalText(t *testing.T) {
	t.Parallel()

	type doc struct {
		Link *uri.URI `json:"link"`
	}

	in := doc{Link: uri.MustParse("HTTP://Example.com/a b")}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal(in) error = %v, want nil", err)
	}
	if got, want := string(b), `{"link":"http://example.com/a%20b"}`; got != want {
		t.Errorf("json.Marshal(in) = %s, want %s", got, want)
	}

	var out doc
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("json.Unmarshal(%s) error = %v, want nil", b, err)
	}
	if !out.Link.Equal(in.Link) {
		t.Errorf("json.Unmarshal(%s) = %v, want %v", b, out.Link, in.Link)
	}
	if got, want := out.Link.Kind(), uri.Kind("http"); got != want {
		t.Errorf("out.Link.Kind() = %q, want %q", got, want)
	}

	err = json.Unmarshal([]byte(`{"link":"http://x/%"}`), &out)
	if diff := cmp.Diff(err, error(uri.ErrMalformedEncoding), cmpopts.EquateErrors()); diff != "" {
		t.Errorf("json.Unmarshal() error = %v, want %v\ndiff (-got +want):\n%v", err, uri.ErrMalformedEncoding, diff)
	}
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := uri.Parse("http://host:12x4/")
	var se *uri.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("uri.Parse() error = %v, want *uri.SyntaxError", err)
	}
	if se.Index != 14 {
		t.Errorf("se.Index = %d, want 14", se.Index)
	}
	if se.Input != "http://host:12x4/" {
		t.Errorf("se.Input = %q, want %q", se.Input, "http://host:12x4/")
	}
}
