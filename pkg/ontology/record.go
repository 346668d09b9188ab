package ontology

import (
	"bytes"
	"reflect"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

// Record is implemented by every generated kind. The methods are emitted per
// kind from the schema; callers normally use the package level functions
// (ToCid, MarshalCompact, MarshalWeb3, EncodeV0, DecodeABI, ...) instead.
type Record interface {
	Descriptor() *KindDesc

	// AppendCanonical appends the canonical encoding of the record to b.
	AppendCanonical(b []byte) []byte
	// SetCanonicalField applies one decoded canonical field. Repeated fields
	// are appended to.
	SetCanonicalField(num protowire.Number, v []byte) error

	// Canonicalize sorts the repeated fields in place.
	Canonicalize()
	CidFields() [][]byte

	MarshalWeb3(w *Web3Writer)
	UnmarshalWeb3Field(name string, v Web3Value) (bool, error)

	DecodeABI(d *ABIDecoder) error
	EncodeABI(e *ABIEncoder)

	// Normalize folds zero-length optional and repeated values to nil.
	Normalize()
	Clone() Record
	Empty() bool
}

// NormalizeBytes returns nil for an empty value.
func NormalizeBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}

// NormalizeRepeated returns nil for an empty list and folds empty elements
// to nil.
func NormalizeRepeated(v [][]byte) [][]byte {
	if len(v) == 0 {
		return nil
	}

	for i := range v {
		v[i] = NormalizeBytes(v[i])
	}

	return v
}

func CloneBytes(b []byte) []byte {
	return bytes.Clone(b)
}

func CloneRepeated(v [][]byte) [][]byte {
	if v == nil {
		return nil
	}

	out := make([][]byte, len(v))
	for i, b := range v {
		out[i] = bytes.Clone(b)
	}

	return out
}

// SortRepeated orders the elements of a repeated field bytewise.
func SortRepeated(v [][]byte) {
	slices.SortFunc(v, bytes.Compare)
}

// Canonicalize sorts the repeated fields of r so that records that differ
// only in element order share one canonical encoding. It is not applied
// implicitly by ToCid; see WithCanonicalize.
func Canonicalize(r Record) {
	r.Canonicalize()
}

// Equal reports whether two records are the same kind and encode to the
// same canonical bytes.
func Equal(a, b Record) bool {
	if a.Descriptor() != b.Descriptor() {
		return false
	}

	return bytes.Equal(a.AppendCanonical(nil), b.AppendCanonical(nil))
}

// reset zeroes the record r points to so a decode never merges with
// previously held values.
func reset(r Record) {
	v := reflect.ValueOf(r)
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		v.Elem().SetZero()
	}
}
