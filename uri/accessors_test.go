package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/uri"
)

type setterCase struct {
	name     string
	input    string
	set      func(u *uri.URI) (any, error)
	wantPrev any
	want     string
	wantKind uri.Kind
	wantErr  error
}

func runSetterCases(t *testing.T, cases []setterCase) {
	t.Helper()

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			u := uri.MustParse(c.input)
			kind := u.Kind()
			prev, err := c.set(u)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("set error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if diff := cmp.Diff(prev, c.wantPrev); diff != "" {
				t.Errorf("set prev = %v, want %v\ndiff (-got +want):\n%v", prev, c.wantPrev, diff)
			}

			want, wantKind := c.want, c.wantKind
			if c.wantErr != nil {
				// failed setters leave the URI untouched
				want, wantKind = uri.MustParse(c.input).String(), kind
			}
			if got := u.String(); got != want {
				t.Errorf("u.String() = %q, want %q", got, want)
			}
			if got := u.Kind(); got != wantKind {
				t.Errorf("u.Kind() = %q, want %q", got, wantKind)
			}
		})
	}
}

func TestURI_SetScheme(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "generic to http",
			input:    "foo://Example.com/x",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("HTTP") },
			wantPrev: "foo",
			want:     "http://example.com/x",
			wantKind: "http",
		},
		{
			name:     "http to generic",
			input:    "http://example.com:80/x",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("foo") },
			wantPrev: "http",
			want:     "foo://example.com:80/x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "generic to file",
			input:    "foo:/x",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("file") },
			wantPrev: "foo",
			want:     "file:///x",
			wantKind: "file",
		},
		{
			name:     "rejected by specialization",
			input:    "foo:bar",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("http") },
			wantPrev: "foo",
			wantErr:  uri.ErrInvalidHost,
		},
		{
			name:     "malformed",
			input:    "foo:bar",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("1x") },
			wantPrev: "foo",
			wantErr:  uri.ErrInvalidScheme,
		},
		{
			name:     "empty",
			input:    "foo:bar",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("") },
			wantPrev: "foo",
			wantErr:  uri.ErrInvalidScheme,
		},
		{
			name:     "relative",
			input:    "a/b",
			set:      func(u *uri.URI) (any, error) { return u.SetScheme("foo") },
			wantPrev: "",
			wantErr:  uri.ErrInvalidOperation,
		},
	})
}

func TestURI_SetUserInfo(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "escaped",
			input:    "ftp://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetUserInfo("a b:c%7e") },
			wantPrev: uri.None[string](),
			want:     "ftp://a%20b:c~@h/",
			wantKind: "ftp",
		},
		{
			name:     "adds authority",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetUserInfo("u") },
			wantPrev: uri.None[string](),
			want:     "foo://u@/x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "empty",
			input:    "foo://u@h",
			set:      func(u *uri.URI) (any, error) { return u.SetUserInfo("") },
			wantPrev: uri.Some("u"),
			want:     "foo://@h",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "remove",
			input:    "foo://u@h",
			set:      func(u *uri.URI) (any, error) { return u.RemoveUserInfo() },
			wantPrev: uri.Some("u"),
			want:     "foo://h",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "malformed escape",
			input:    "foo://h",
			set:      func(u *uri.URI) (any, error) { return u.SetUserInfo("%zz") },
			wantPrev: uri.None[string](),
			wantErr:  uri.ErrInvalidUserinfo,
		},
		{
			name:     "forbidden by http",
			input:    "http://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetUserInfo("u") },
			wantPrev: uri.None[string](),
			wantErr:  uri.ErrInvalidUserinfo,
		},
	})
}

func TestURI_SetHost(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "lowercase",
			input:    "http://h/x",
			set:      func(u *uri.URI) (any, error) { return u.SetHost("Example.COM") },
			wantPrev: uri.Some("h"),
			want:     "http://example.com/x",
			wantKind: "http",
		},
		{
			name:     "bare ipv6",
			input:    "http://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetHost("::1") },
			wantPrev: uri.Some("h"),
			want:     "http://[::1]/",
			wantKind: "http",
		},
		{
			name:     "adds authority to rootless path",
			input:    "foo:bar",
			set:      func(u *uri.URI) (any, error) { return u.SetHost("h") },
			wantPrev: uri.None[string](),
			want:     "foo://h/bar",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "empty host",
			input:    "foo://h/x",
			set:      func(u *uri.URI) (any, error) { return u.SetHost("") },
			wantPrev: uri.Some("h"),
			want:     "foo:///x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "file localhost",
			input:    "file://h/x",
			set:      func(u *uri.URI) (any, error) { return u.SetHost("LOCALHOST") },
			wantPrev: uri.Some("h"),
			want:     "file:///x",
			wantKind: "file",
		},
		{
			name:     "remove",
			input:    "foo://h/x",
			set:      func(u *uri.URI) (any, error) { return u.RemoveHost() },
			wantPrev: uri.Some("h"),
			want:     "foo:/x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "remove with double slash path",
			input:    "foo://h//x",
			set:      func(u *uri.URI) (any, error) { return u.RemoveHost() },
			wantPrev: uri.Some("h"),
			want:     "foo:/%2Fx",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "remove with port",
			input:    "foo://h:1/x",
			set:      func(u *uri.URI) (any, error) { return u.RemoveHost() },
			wantPrev: uri.Some("h"),
			wantErr:  uri.ErrInvalidOperation,
		},
		{
			name:     "remove with userinfo",
			input:    "foo://u@h/x",
			set:      func(u *uri.URI) (any, error) { return u.RemoveHost() },
			wantPrev: uri.Some("h"),
			wantErr:  uri.ErrInvalidOperation,
		},
		{
			name:     "remove required by http",
			input:    "http://h/x",
			set:      func(u *uri.URI) (any, error) { return u.RemoveHost() },
			wantPrev: uri.Some("h"),
			wantErr:  uri.ErrInvalidHost,
		},
		{
			name:     "illegal",
			input:    "foo://h/x",
			set:      func(u *uri.URI) (any, error) { return u.SetHost("a b") },
			wantPrev: uri.Some("h"),
			wantErr:  uri.ErrInvalidHost,
		},
	})
}

func TestURI_SetPort(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "default port is not serialized",
			input:    "http://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetPort(80) },
			wantPrev: uri.None[int](),
			want:     "http://h/",
			wantKind: "http",
		},
		{
			name:     "other port",
			input:    "http://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetPort(8080) },
			wantPrev: uri.None[int](),
			want:     "http://h:8080/",
			wantKind: "http",
		},
		{
			name:     "adds authority",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetPort(1) },
			wantPrev: uri.None[int](),
			want:     "foo://:1/x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "string",
			input:    "foo://h:1",
			set:      func(u *uri.URI) (any, error) { return u.SetPortString("0065535") },
			wantPrev: uri.Some(1),
			want:     "foo://h:65535",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "remove",
			input:    "foo://h:1",
			set:      func(u *uri.URI) (any, error) { return u.RemovePort() },
			wantPrev: uri.Some(1),
			want:     "foo://h",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "negative",
			input:    "foo://h",
			set:      func(u *uri.URI) (any, error) { return u.SetPort(-1) },
			wantPrev: uri.None[int](),
			wantErr:  uri.ErrInvalidPort,
		},
		{
			name:     "too big",
			input:    "foo://h",
			set:      func(u *uri.URI) (any, error) { return u.SetPortString("65536") },
			wantPrev: uri.None[int](),
			wantErr:  uri.ErrInvalidPort,
		},
		{
			name:     "not a number",
			input:    "foo://h",
			set:      func(u *uri.URI) (any, error) { return u.SetPortString("8o") },
			wantPrev: uri.None[int](),
			wantErr:  uri.ErrInvalidPort,
		},
		{
			name:     "forbidden by file",
			input:    "file:///x",
			set:      func(u *uri.URI) (any, error) { return u.SetPort(1) },
			wantPrev: uri.None[int](),
			wantErr:  uri.ErrInvalidPort,
		},
	})

	u := uri.MustParse("http://h/")
	if _, err := u.SetPort(80); err != nil {
		t.Fatalf("u.SetPort(80) error = %v, want nil", err)
	}
	if got, ok := u.Port(); got != 80 || !ok {
		t.Errorf("u.Port() = (%d, %v), want (80, true)", got, ok)
	}
}

func TestURI_SetPath(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "escaped",
			input:    "http://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("/a b/%7e/./c") },
			wantPrev: "/",
			want:     "http://h/a%20b/~/c",
			wantKind: "http",
		},
		{
			name:     "empty becomes root in http",
			input:    "http://h/x",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("") },
			wantPrev: "/x",
			want:     "http://h/",
			wantKind: "http",
		},
		{
			name:     "double slash without authority",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("//x") },
			wantPrev: "x",
			want:     "foo:/%2Fx",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "triple slash without authority",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("///x") },
			wantPrev: "x",
			want:     "foo:/%2F/x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "colon in first relative segment",
			input:    "a",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("b:c/d") },
			wantPrev: "a",
			want:     "./b:c/d",
			wantKind: uri.KindRelative,
		},
		{
			name:     "rootless with authority",
			input:    "http://example.com/a",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("b") },
			wantPrev: "/a",
			wantErr:  uri.ErrInvalidPath,
		},
		{
			name:     "malformed escape",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetPath("%2") },
			wantPrev: "x",
			wantErr:  uri.ErrMalformedEncoding,
		},
	})
}

func TestURI_SetQuery(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "set",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetQuery("a=b c&d=/?") },
			wantPrev: uri.None[string](),
			want:     "foo:x?a=b%20c&d=/?",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "empty",
			input:    "foo:x?y",
			set:      func(u *uri.URI) (any, error) { return u.SetQuery("") },
			wantPrev: uri.Some("y"),
			want:     "foo:x?",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "remove",
			input:    "foo:x?y",
			set:      func(u *uri.URI) (any, error) { return u.RemoveQuery() },
			wantPrev: uri.Some("y"),
			want:     "foo:x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "hash is escaped",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetQuery("#") },
			wantPrev: uri.None[string](),
			want:     "foo:x?%23",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "forbidden by urn",
			input:    "urn:example:a",
			set:      func(u *uri.URI) (any, error) { return u.SetQuery("x") },
			wantPrev: uri.None[string](),
			wantErr:  uri.ErrInvalidQuery,
		},
	})
}

func TestURI_SetFragment(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "set",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetFragment("a b#c") },
			wantPrev: uri.None[string](),
			want:     "foo:x#a%20b%23c",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "empty",
			input:    "foo:x#y",
			set:      func(u *uri.URI) (any, error) { return u.SetFragment("") },
			wantPrev: uri.Some("y"),
			want:     "foo:x#",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "remove",
			input:    "foo:x#y",
			set:      func(u *uri.URI) (any, error) { return u.RemoveFragment() },
			wantPrev: uri.Some("y"),
			want:     "foo:x",
			wantKind: uri.KindGeneric,
		},
		{
			name:     "malformed escape",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetFragment("%") },
			wantPrev: uri.None[string](),
			wantErr:  uri.ErrInvalidFragment,
		},
	})
}

func TestURI_SetString(t *testing.T) {
	t.Parallel()

	runSetterCases(t, []setterCase{
		{
			name:     "reparse",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetString("HTTP://h") },
			wantPrev: "foo:x",
			want:     "http://h/",
			wantKind: "http",
		},
		{
			name:     "to relative",
			input:    "http://h/",
			set:      func(u *uri.URI) (any, error) { return u.SetString("a/b") },
			wantPrev: "http://h/",
			want:     "a/b",
			wantKind: uri.KindRelative,
		},
		{
			name:     "invalid",
			input:    "foo:x",
			set:      func(u *uri.URI) (any, error) { return u.SetString("http://h/%") },
			wantPrev: "foo:x",
			wantErr:  uri.ErrMalformedEncoding,
		},
	})
}
