package ontology

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"miren.dev/ontology/pkg/set"
)

// Web3Writer accumulates the members of a Web3 JSON object in order.
type Web3Writer struct {
	buf     bytes.Buffer
	members int
}

func (w *Web3Writer) key(name string) {
	if w.members > 0 {
		w.buf.WriteByte(',')
	}
	w.members++

	w.str(name)
	w.buf.WriteByte(':')
}

func (w *Web3Writer) str(s string) {
	b, _ := json.Marshal(s)
	w.buf.Write(b)
}

func (w *Web3Writer) hex(v []byte) {
	w.buf.WriteString(`"0x`)
	w.buf.WriteString(hex.EncodeToString(v))
	w.buf.WriteByte('"')
}

func (w *Web3Writer) Required(name string, v []byte) {
	w.key(name)
	w.hex(v)
}

func (w *Web3Writer) Optional(name string, v []byte) {
	w.key(name)
	if len(v) == 0 {
		w.buf.WriteString("null")
		return
	}
	w.hex(v)
}

func (w *Web3Writer) Repeated(name string, vs [][]byte) {
	w.key(name)
	w.buf.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.hex(v)
	}
	w.buf.WriteByte(']')
}

// MarshalWeb3 encodes r as a Web3 JSON object: the kind name under "type",
// the CID of r as it stands under "cid", then every field as 0x hex.
func MarshalWeb3(r Record) ([]byte, error) {
	var w Web3Writer

	w.buf.WriteByte('{')

	w.key("type")
	w.str(r.Descriptor().Name)

	w.key("cid")
	if c, err := ToCid(r); err == nil {
		w.hex(c.Bytes())
	} else {
		w.buf.WriteString("null")
	}

	r.MarshalWeb3(&w)

	w.buf.WriteByte('}')

	return w.buf.Bytes(), nil
}

// Web3Value is the undecoded value of one Web3 JSON member.
type Web3Value struct {
	field string
	raw   json.RawMessage
}

func (v Web3Value) isNull() bool {
	return bytes.Equal(bytes.TrimSpace(v.raw), []byte("null"))
}

func (v Web3Value) decodeHex(s string) ([]byte, error) {
	rest, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return nil, &FormatError{Format: "web3", Field: v.field, Err: ErrInvalidHex, Detail: "missing 0x prefix"}
	}

	b, err := hex.DecodeString(rest)
	if err != nil {
		return nil, &FormatError{Format: "web3", Field: v.field, Err: ErrInvalidHex, Detail: err.Error()}
	}

	return b, nil
}

func (v Web3Value) string() (string, error) {
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", &FormatError{Format: "web3", Field: v.field, Err: ErrInvalidValue, Detail: "expected hex string"}
	}
	return s, nil
}

func (v Web3Value) Required(dst *[]byte) error {
	if v.isNull() {
		return &FormatError{Format: "web3", Field: v.field, Err: ErrInvalidValue, Detail: "null for required field"}
	}

	s, err := v.string()
	if err != nil {
		return err
	}

	*dst, err = v.decodeHex(s)
	return err
}

func (v Web3Value) Optional(dst *[]byte) error {
	if v.isNull() {
		*dst = nil
		return nil
	}

	s, err := v.string()
	if err != nil {
		return err
	}

	*dst, err = v.decodeHex(s)
	return err
}

func (v Web3Value) Repeated(dst *[][]byte) error {
	if v.isNull() {
		*dst = nil
		return nil
	}

	var strs []string
	if err := json.Unmarshal(v.raw, &strs); err != nil {
		return &FormatError{Format: "web3", Field: v.field, Err: ErrInvalidValue, Detail: "expected array of hex strings"}
	}

	out := make([][]byte, 0, len(strs))
	for _, s := range strs {
		b, err := v.decodeHex(s)
		if err != nil {
			return err
		}
		out = append(out, b)
	}

	*dst = out
	return nil
}

type web3Member struct {
	key string
	val Web3Value
}

// readWeb3Object splits a JSON object into its members, keeping their order
// and rejecting repeated keys. Repeated "cid" keys are tolerated since the
// value is never read.
func readWeb3Object(data []byte) ([]web3Member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, &FormatError{Format: "web3", Err: ErrInvalidValue, Detail: err.Error()}
	}

	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, &FormatError{Format: "web3", Err: ErrInvalidValue, Detail: "expected object"}
	}

	var (
		members []web3Member
		seen    = set.New[string]()
	)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, &FormatError{Format: "web3", Err: ErrInvalidValue, Detail: err.Error()}
		}

		key, ok := tok.(string)
		if !ok {
			return nil, &FormatError{Format: "web3", Err: ErrInvalidValue, Detail: fmt.Sprintf("unexpected token %v", tok)}
		}

		if key != "cid" && !seen.Add(key) {
			return nil, &FormatError{Format: "web3", Field: key, Err: ErrDuplicateField}
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, &FormatError{Format: "web3", Field: key, Err: ErrInvalidValue, Detail: err.Error()}
		}

		members = append(members, web3Member{key: key, val: Web3Value{field: key, raw: raw}})
	}

	if _, err := dec.Token(); err != nil {
		return nil, &FormatError{Format: "web3", Err: ErrInvalidValue, Detail: err.Error()}
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &FormatError{Format: "web3", Err: ErrInvalidValue, Detail: "trailing data after object"}
	}

	return members, nil
}

func typeName(members []web3Member) (string, bool, error) {
	for _, m := range members {
		if m.key != "type" {
			continue
		}

		var name string
		if err := json.Unmarshal(m.val.raw, &name); err != nil {
			return "", true, &FormatError{Format: "web3", Field: "type", Err: ErrInvalidValue, Detail: "expected kind name"}
		}

		return name, true, nil
	}

	return "", false, nil
}

func applyWeb3(members []web3Member, r Record) error {
	desc := r.Descriptor()
	seen := set.New[string]()

	reset(r)

	for _, m := range members {
		switch m.key {
		case "cid", "type":
			continue
		}

		ok, err := r.UnmarshalWeb3Field(m.key, m.val)
		if err != nil {
			return err
		}

		if !ok {
			return &FormatError{Format: "web3", Field: m.key, Err: ErrUnknownField}
		}

		seen.Add(m.key)
	}

	for _, f := range desc.Fields {
		if f.Shape == Required && !seen.Contains(f.Name) {
			return &FormatError{Format: "web3", Field: f.Name, Err: ErrMissingField}
		}
	}

	r.Normalize()
	return nil
}

// UnmarshalWeb3 decodes a Web3 JSON object into r. A "type" member, when
// present, must name r's kind. The "cid" member is ignored.
func UnmarshalWeb3(data []byte, r Record) error {
	members, err := readWeb3Object(data)
	if err != nil {
		return err
	}

	name, ok, err := typeName(members)
	if err != nil {
		return err
	}

	if ok && name != r.Descriptor().Name {
		return &FormatError{
			Format: "web3",
			Field:  "type",
			Err:    ErrKindMismatch,
			Detail: fmt.Sprintf("expected %s, got %s", r.Descriptor().Name, name),
		}
	}

	return applyWeb3(members, r)
}

// UnmarshalWeb3Record decodes a Web3 JSON object whose "type" member selects
// the kind.
func UnmarshalWeb3Record(data []byte) (Record, error) {
	members, err := readWeb3Object(data)
	if err != nil {
		return nil, err
	}

	name, ok, err := typeName(members)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, &FormatError{Format: "web3", Field: "type", Err: ErrMissingField}
	}

	r, err := NewByName(name)
	if err != nil {
		return nil, &FormatError{Format: "web3", Field: "type", Err: ErrKindNotFound, Detail: name}
	}

	if err := applyWeb3(members, r); err != nil {
		return nil, err
	}

	return r, nil
}
