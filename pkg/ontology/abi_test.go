package ontology_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v0 "miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

func word(v uint64) []byte {
	w := make([]byte, 32)
	for i := 31; v > 0; i-- {
		w[i] = byte(v)
		v >>= 8
	}
	return w
}

func join(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

var oneField = &ontology.KindDesc{
	Name:   "OneField",
	Fields: []ontology.FieldDesc{{Name: "value", Shape: ontology.Required}},
}

func TestABIDecoder(t *testing.T) {
	t.Run("single bytes field", func(t *testing.T) {
		blob := join(word(0x20), word(0x03), []byte{0x01, 0x02, 0x03})

		v, err := ontology.NewABIDecoder(oneField, blob).Bytes(0)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x02, 0x03}, v)
	})

	t.Run("bytes array", func(t *testing.T) {
		desc := &ontology.KindDesc{
			Name:   "List",
			Fields: []ontology.FieldDesc{{Name: "items", Shape: ontology.Repeated}},
		}

		blob := join(
			word(0x20),
			word(2),
			word(0x40), word(0x80),
			word(1), append([]byte{0xaa}, make([]byte, 31)...),
			word(2), append([]byte{0xbb, 0xcc}, make([]byte, 30)...),
		)

		v, err := ontology.NewABIDecoder(desc, blob).BytesArray(0)
		require.NoError(t, err)
		assert.Equal(t, [][]byte{{0xaa}, {0xbb, 0xcc}}, v)
	})

	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", nil},
		{"short offset slot", make([]byte, 16)},
		{"offset past end", join(word(0x40))},
		{"length past end", join(word(0x20), word(10), []byte{1, 2})},
		{"huge length", join(word(0x20), append(bytes.Repeat([]byte{0xff}, 24), make([]byte, 8)...))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ontology.NewABIDecoder(oneField, tt.blob).Bytes(0)
			require.ErrorIs(t, err, ontology.ErrOutOfRange)

			var ae *ontology.AbiDecodeError
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, "value", ae.Field)
		})
	}

	t.Run("element offset past end", func(t *testing.T) {
		desc := &ontology.KindDesc{
			Name:   "List",
			Fields: []ontology.FieldDesc{{Name: "items", Shape: ontology.Repeated}},
		}

		blob := join(word(0x20), word(1), word(0x1000))

		_, err := ontology.NewABIDecoder(desc, blob).BytesArray(0)
		require.ErrorIs(t, err, ontology.ErrOutOfRange)
	})

	t.Run("count larger than data", func(t *testing.T) {
		desc := &ontology.KindDesc{
			Name:   "List",
			Fields: []ontology.FieldDesc{{Name: "items", Shape: ontology.Repeated}},
		}

		blob := join(word(0x20), word(1<<40))

		_, err := ontology.NewABIDecoder(desc, blob).BytesArray(0)
		require.ErrorIs(t, err, ontology.ErrOutOfRange)
	})
}

func TestDecodeABI(t *testing.T) {
	t.Run("empty optional becomes absent", func(t *testing.T) {
		in := &v0.ClassAssertion{Annotations: [][]byte{{1}, {2, 3}}, Class: []byte{4}}
		blob := ontology.EncodeABI(in)

		var out v0.ClassAssertion
		require.NoError(t, ontology.DecodeABI(blob, &out))
		assert.Nil(t, out.Subject)
		assert.Equal(t, in, &out)
	})

	t.Run("field regions follow the head", func(t *testing.T) {
		in := &v0.ObjectPropertyAssertion{
			Subject:  []byte{1},
			Property: bytes.Repeat([]byte{2}, 40),
			Target:   []byte{3},
		}
		blob := ontology.EncodeABI(in)

		// four offset slots, then annotations (count only), subject (len + 1 word),
		// property (len + 2 words), target
		assert.Equal(t, word(4*32), blob[0:32])
		assert.Equal(t, word(5*32), blob[32:64])
		assert.Equal(t, word(7*32), blob[64:96])
		assert.Equal(t, word(10*32), blob[96:128])

		var out v0.ObjectPropertyAssertion
		require.NoError(t, ontology.DecodeABI(blob, &out))
		assert.Equal(t, in, &out)
	})

	t.Run("truncated blob", func(t *testing.T) {
		blob := ontology.EncodeABI(&v0.Annotation{Property: []byte{1}, Value: []byte{2}})

		var out v0.Annotation
		err := ontology.DecodeABI(blob[:len(blob)-40], &out)
		require.ErrorIs(t, err, ontology.ErrOutOfRange)
	})
}
