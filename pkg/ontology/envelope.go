package ontology

import (
	"fmt"
	"io"

	"github.com/multiformats/go-varint"
)

// V0 is the only envelope version.
const V0 uint64 = 0

// EncodeV0 wraps the compact encoding of r in a v0 envelope:
// uvarint(0) ++ uvarint(kind id) ++ compact body.
func EncodeV0(r Record) ([]byte, error) {
	body, err := MarshalCompact(r)
	if err != nil {
		return nil, fmt.Errorf("error encoding compact body: %w", err)
	}

	id := r.Descriptor().ID

	out := make([]byte, 0, varint.UvarintSize(V0)+varint.UvarintSize(id)+len(body))
	out = append(out, varint.ToUvarint(V0)...)
	out = append(out, varint.ToUvarint(id)...)
	out = append(out, body...)

	return out, nil
}

// WriteV0 writes the v0 envelope of r to w.
func WriteV0(w io.Writer, r Record) error {
	data, err := EncodeV0(r)
	if err != nil {
		return err
	}

	_, err = w.Write(data)
	return err
}

// SplitV0 reads the envelope header and returns the kind id and the
// undecoded body. A version other than V0 is rejected before the kind id is
// read.
func SplitV0(data []byte) (uint64, []byte, error) {
	version, n, err := varint.FromUvarint(data)
	if err != nil {
		return 0, nil, &EnvelopeError{Err: ErrTruncated, Detail: "version: " + err.Error()}
	}

	if version != V0 {
		return 0, nil, &EnvelopeError{Version: version, Err: ErrUnsupportedVersion}
	}

	data = data[n:]

	id, n, err := varint.FromUvarint(data)
	if err != nil {
		return 0, nil, &EnvelopeError{Err: ErrTruncated, Detail: "kind id: " + err.Error()}
	}

	return id, data[n:], nil
}

// DecodeV0 opens a v0 envelope and decodes its body as the kind it names.
func DecodeV0(data []byte) (Record, error) {
	id, body, err := SplitV0(data)
	if err != nil {
		return nil, err
	}

	r, err := New(id)
	if err != nil {
		return nil, &EnvelopeError{KindID: id, Err: ErrUnknownKindID}
	}

	if err := UnmarshalCompact(body, r); err != nil {
		return nil, err
	}

	return r, nil
}
