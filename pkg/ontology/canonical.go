package ontology

import (
	"bytes"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// The canonical encoding is the proto2 wire format of a message whose
// fields are all bytes, numbered from 1 in declaration order.

func AppendRequired(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func AppendOptional(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	return AppendRequired(b, num, v)
}

func AppendRepeated(b []byte, num protowire.Number, vs [][]byte) []byte {
	for _, v := range vs {
		b = AppendRequired(b, num, v)
	}
	return b
}

// EncodeCanonical returns the canonical encoding of r.
func EncodeCanonical(r Record) []byte {
	return r.AppendCanonical(nil)
}

// DecodeCanonical fills r from its canonical encoding. Records may appear in
// any order; a scalar seen twice keeps the last value.
func DecodeCanonical(data []byte, r Record) error {
	desc := r.Descriptor()
	seen := make([]bool, len(desc.Fields))

	reset(r)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return &FormatError{Format: "canonical", Err: ErrTruncated, Detail: protowire.ParseError(n).Error()}
		}
		data = data[n:]

		if num < 1 || int(num) > len(desc.Fields) {
			return &FormatError{Format: "canonical", Field: fmt.Sprintf("#%d", num), Err: ErrUnknownField}
		}

		field := desc.Fields[num-1]

		if typ != protowire.BytesType {
			return &FormatError{
				Format: "canonical",
				Field:  field.Name,
				Err:    ErrInvalidValue,
				Detail: fmt.Sprintf("wire type %d", typ),
			}
		}

		v, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return &FormatError{Format: "canonical", Field: field.Name, Err: ErrTruncated, Detail: protowire.ParseError(n).Error()}
		}
		data = data[n:]

		if err := r.SetCanonicalField(num, bytes.Clone(v)); err != nil {
			return &FormatError{Format: "canonical", Field: field.Name, Err: err}
		}

		seen[num-1] = true
	}

	for i, f := range desc.Fields {
		if f.Shape == Required && !seen[i] {
			return &FormatError{Format: "canonical", Field: f.Name, Err: ErrMissingField}
		}
	}

	r.Normalize()
	return nil
}
