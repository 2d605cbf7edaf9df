package uri

import (
	"encoding/base64"
	"strings"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// DefaultMediaType is the media type of data URIs that do not declare one.
const DefaultMediaType = "text/plain;charset=US-ASCII"

// dataSpec governs data URIs (RFC 2397): data:[<mediatype>][;base64],<data>
type dataSpec struct{}

func (dataSpec) Kind() Kind { return "data" }

func (dataSpec) Init(u *URI) error {
	if u.host.Ok {
		return errtrace.Wrap(wrapErr(ErrInvalidHost, "data URI cannot have an authority"))
	}

	mt, payload, ok := strings.Cut(u.path, ",")
	if !ok {
		return errtrace.Wrap(wrapErr(ErrInvalidPath, "data URI %q has no \",\" separator", u.path))
	}
	mt, isB64, err := normalizeMediaType(mt)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if isB64 {
		if _, err := decodeDataPayload(payload, true); err != nil {
			return errtrace.Wrap(err)
		}
		mt += ";base64"
	}
	u.path = mt + "," + payload
	return nil
}

// normalizeMediaType lowercases the type, subtype and parameter names of mt
// and strips the trailing base64 flag.
func normalizeMediaType(mt string) (norm string, isB64 bool, err error) {
	params := strings.Split(mt, ";")
	if last := params[len(params)-1]; len(params) > 1 && util.EqFold(last, "base64") {
		isB64 = true
		params = params[:len(params)-1]
	}

	typ := grammar.LowerOutsideEscapes(params[0])
	if typ != "" {
		maj, sub, ok := strings.Cut(typ, "/")
		if !ok || maj == "" || sub == "" || strings.Contains(sub, "/") {
			return "", false, errtrace.Wrap(wrapErr(ErrInvalidPath, "malformed media type %q", params[0]))
		}
	}
	params[0] = typ
	for i := 1; i < len(params); i++ {
		name, val, ok := strings.Cut(params[i], "=")
		if !ok || name == "" {
			return "", false, errtrace.Wrap(wrapErr(ErrInvalidPath, "malformed media type parameter %q", params[i]))
		}
		params[i] = grammar.LowerOutsideEscapes(name) + "=" + val
	}
	return strings.Join(params, ";"), isB64, nil
}

func decodeDataPayload(payload string, isB64 bool) ([]byte, error) {
	raw, err := grammar.Unescape(payload)
	if err != nil {
		return nil, errtrace.Wrap(wrapErr(ErrInvalidPath, err))
	}
	if !isB64 {
		return []byte(raw), nil
	}
	b, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, errtrace.Wrap(wrapErr(ErrInvalidPath, err))
	}
	return b, nil
}

// DataEncoding is the payload encoding of a data URI.
type DataEncoding int

const (
	DataPercent DataEncoding = iota
	DataBase64
)

func (e DataEncoding) String() string {
	if e == DataBase64 {
		return "base64"
	}
	return "percent"
}

// DataEncodingChooser picks the payload encoding for the data given to [Data.SetBytes].
type DataEncodingChooser func(data []byte) DataEncoding

var dataEncChooser atomic.Pointer[DataEncodingChooser]

func init() { SetDataEncodingChooser(ChooseDataEncoding) }

// SetDataEncodingChooser installs the payload encoding chooser.
// With a nil chooser payloads are always percent-encoded.
func SetDataEncodingChooser(fn DataEncodingChooser) {
	if fn == nil {
		dataEncChooser.Store(nil)
		return
	}
	dataEncChooser.Store(&fn)
}

func chooseDataEncoding(data []byte) DataEncoding {
	if fn := dataEncChooser.Load(); fn != nil {
		return (*fn)(data)
	}
	return DataPercent
}

// ChooseDataEncoding is the default chooser: base64 when more than a third of the bytes would be escaped.
func ChooseDataEncoding(data []byte) DataEncoding {
	var n int
	for _, c := range data {
		if c == '%' || grammar.NotPathChar(c) {
			n++
		}
	}
	if n*3 > len(data) {
		return DataBase64
	}
	return DataPercent
}

// NewData builds a data URI with the payload encoded as the current [DataEncodingChooser] decides.
// An empty mediaType means [DefaultMediaType].
func NewData(mediaType string, data []byte) (*URI, error) {
	u, err := Parse("data:,")
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	d, _ := u.Data()
	if mediaType != "" {
		if err := d.SetMediaType(mediaType); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if err := d.SetBytes(data); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return u, nil
}

// Data gives access to the media type and the payload of a data URI.
type Data struct {
	u *URI
}

// Data returns the data view of u. It reports false if u is not governed by the data rules.
func (u *URI) Data() (Data, bool) {
	if _, ok := u.specialization().(dataSpec); !ok {
		return Data{}, false
	}
	return Data{u}, true
}

func (d Data) parts() (mt, payload string, isB64 bool) {
	mt, payload, _ = strings.Cut(d.u.path, ",")
	if base, ok := strings.CutSuffix(mt, ";base64"); ok {
		return base, payload, true
	}
	return mt, payload, false
}

// MediaType returns the unescaped media type, [DefaultMediaType] if none is declared.
// Parameters without a type imply "text/plain".
func (d Data) MediaType() string {
	mt, _, _ := d.parts()
	mt, _ = grammar.Unescape(mt)
	switch {
	case mt == "":
		return DefaultMediaType
	case mt[0] == ';':
		return "text/plain" + mt
	default:
		return mt
	}
}

// IsBase64 reports whether the payload is base64 encoded.
func (d Data) IsBase64() bool {
	_, _, isB64 := d.parts()
	return isB64
}

// SetMediaType replaces the media type, keeping the payload.
func (d Data) SetMediaType(mt string) error {
	_, payload, isB64 := d.parts()
	mt = grammar.EscapeAll(mt, func(c byte) bool { return c == ',' || grammar.NotPathChar(c) })
	if isB64 {
		mt += ";base64"
	}
	_, err := d.u.SetPath(mt + "," + payload)
	return errtrace.Wrap(err)
}

// Bytes returns the decoded payload.
func (d Data) Bytes() ([]byte, error) {
	_, payload, isB64 := d.parts()
	return errtrace.Wrap2(decodeDataPayload(payload, isB64))
}

// SetBytes replaces the payload, keeping the media type.
func (d Data) SetBytes(data []byte) error {
	mt, _, _ := d.parts()
	var path string
	if chooseDataEncoding(data) == DataBase64 {
		path = mt + ";base64," + base64.StdEncoding.EncodeToString(data)
	} else {
		path = mt + "," + grammar.EscapeAll(string(data), grammar.NotPathChar)
	}
	_, err := d.u.SetPath(path)
	return errtrace.Wrap(err)
}
