package ontology

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const abiWord = 32

// ABIDecoder reads the flat ABIv2 parameter block of an event whose
// parameters are all dynamic bytes or bytes[]. The head holds one offset
// slot per field; field i's data runs from its offset to the offset of field
// i+1, or to the end of the blob for the last field.
type ABIDecoder struct {
	desc *KindDesc
	data []byte
}

func NewABIDecoder(desc *KindDesc, data []byte) *ABIDecoder {
	return &ABIDecoder{desc: desc, data: data}
}

func (d *ABIDecoder) fail(field string, off uint64, detail string) error {
	return &AbiDecodeError{Field: field, Offset: off, Err: ErrOutOfRange, Detail: detail}
}

// word reads the 32 byte big endian word at off within buf. base is the
// absolute position of buf, used for error reporting.
func (d *ABIDecoder) word(field string, buf []byte, off, base uint64) (uint64, error) {
	if off > uint64(len(buf)) || uint64(len(buf))-off < abiWord {
		return 0, d.fail(field, base+off, "word past end of data")
	}

	w := buf[off : off+abiWord]

	for _, b := range w[:abiWord-8] {
		if b != 0 {
			return 0, d.fail(field, base+off, "value does not fit in 64 bits")
		}
	}

	return binary.BigEndian.Uint64(w[abiWord-8:]), nil
}

func (d *ABIDecoder) region(i int) ([]byte, uint64, error) {
	if i < 0 || i >= len(d.desc.Fields) {
		return nil, 0, fmt.Errorf("%w: field index %d", ErrUnknownField, i)
	}

	name := d.desc.Fields[i].Name

	start, err := d.word(name, d.data, uint64(i)*abiWord, 0)
	if err != nil {
		return nil, 0, err
	}

	end := uint64(len(d.data))
	if i+1 < len(d.desc.Fields) {
		end, err = d.word(name, d.data, uint64(i+1)*abiWord, 0)
		if err != nil {
			return nil, 0, err
		}
	}

	if end > uint64(len(d.data)) || start > end {
		return nil, 0, d.fail(name, start, fmt.Sprintf("data region [%d, %d) outside %d bytes", start, end, len(d.data)))
	}

	return d.data[start:end], start, nil
}

func (d *ABIDecoder) bytesAt(field string, buf []byte, base uint64) ([]byte, error) {
	l, err := d.word(field, buf, 0, base)
	if err != nil {
		return nil, err
	}

	if l > uint64(len(buf))-abiWord {
		return nil, d.fail(field, base, fmt.Sprintf("length %d exceeds %d available bytes", l, uint64(len(buf))-abiWord))
	}

	return bytes.Clone(buf[abiWord : abiWord+l]), nil
}

// Bytes decodes field i as a dynamic bytes value.
func (d *ABIDecoder) Bytes(i int) ([]byte, error) {
	region, base, err := d.region(i)
	if err != nil {
		return nil, err
	}

	return d.bytesAt(d.desc.Fields[i].Name, region, base)
}

// BytesArray decodes field i as a dynamic bytes[] value. Element offsets are
// relative to the word following the element count.
func (d *ABIDecoder) BytesArray(i int) ([][]byte, error) {
	region, base, err := d.region(i)
	if err != nil {
		return nil, err
	}

	name := d.desc.Fields[i].Name

	count, err := d.word(name, region, 0, base)
	if err != nil {
		return nil, err
	}

	if count > (uint64(len(region))-abiWord)/abiWord {
		return nil, d.fail(name, base, fmt.Sprintf("element count %d exceeds data", count))
	}

	out := make([][]byte, 0, count)

	for j := uint64(0); j < count; j++ {
		off, err := d.word(name, region, abiWord+j*abiWord, base)
		if err != nil {
			return nil, err
		}

		if off > uint64(len(region))-abiWord {
			return nil, d.fail(name, base+abiWord+j*abiWord, fmt.Sprintf("element offset %d past end of data", off))
		}

		start := off + abiWord

		elem, err := d.bytesAt(name, region[start:], base+start)
		if err != nil {
			return nil, err
		}

		out = append(out, elem)
	}

	return out, nil
}

// DecodeABI fills r from an event parameter block. Zero length optional
// values come back absent.
func DecodeABI(data []byte, r Record) error {
	reset(r)

	if err := r.DecodeABI(NewABIDecoder(r.Descriptor(), data)); err != nil {
		return err
	}

	r.Normalize()
	return nil
}

// ABIEncoder produces the layout ABIDecoder reads.
type ABIEncoder struct {
	tails [][]byte
}

func appendWord(b []byte, v uint64) []byte {
	var w [abiWord]byte
	binary.BigEndian.PutUint64(w[abiWord-8:], v)
	return append(b, w[:]...)
}

func appendPadded(b, v []byte) []byte {
	b = appendWord(b, uint64(len(v)))
	b = append(b, v...)
	if rem := len(v) % abiWord; rem != 0 {
		b = append(b, make([]byte, abiWord-rem)...)
	}
	return b
}

func (e *ABIEncoder) Bytes(v []byte) {
	e.tails = append(e.tails, appendPadded(nil, v))
}

func (e *ABIEncoder) BytesArray(vs [][]byte) {
	var (
		head = appendWord(nil, uint64(len(vs)))
		body []byte
	)

	for _, v := range vs {
		head = appendWord(head, uint64(len(vs)*abiWord+len(body)))
		body = appendPadded(body, v)
	}

	e.tails = append(e.tails, append(head, body...))
}

// Finish returns the encoded parameter block.
func (e *ABIEncoder) Finish() []byte {
	var (
		out []byte
		off = len(e.tails) * abiWord
	)

	for _, t := range e.tails {
		out = appendWord(out, uint64(off))
		off += len(t)
	}

	for _, t := range e.tails {
		out = append(out, t...)
	}

	return out
}

// EncodeABI lays r out as an event parameter block.
func EncodeABI(r Record) []byte {
	var e ABIEncoder
	r.EncodeABI(&e)
	return e.Finish()
}
