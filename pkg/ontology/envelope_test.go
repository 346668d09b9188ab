package ontology_test

import (
	"bytes"
	"testing"

	"github.com/multiformats/go-varint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v0 "miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

func TestEnvelope(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		data, err := ontology.EncodeV0(&v0.Class{Annotations: [][]byte{{1, 2, 3}}})
		require.NoError(t, err)

		expected := []byte{0x00, 0x00, 0xa1, 0x6b}
		expected = append(expected, []byte("annotations")...)
		expected = append(expected, 0x81, 0x43, 0x01, 0x02, 0x03)

		assert.Equal(t, expected, data)
	})

	t.Run("round trips", func(t *testing.T) {
		in := &v0.NegativeDataPropertyAssertion{
			Subject:  []byte{1},
			Property: []byte{2},
			Target:   []byte{3},
		}

		var buf bytes.Buffer
		require.NoError(t, ontology.WriteV0(&buf, in))

		id, _, err := ontology.SplitV0(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, uint64(v0.KindNegativeDataPropertyAssertion), id)

		out, err := ontology.DecodeV0(buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("rejects other versions before reading the body", func(t *testing.T) {
		data := append(varint.ToUvarint(1), 0xff, 0xff, 0xff)

		_, err := ontology.DecodeV0(data)
		require.ErrorIs(t, err, ontology.ErrUnsupportedVersion)

		var ee *ontology.EnvelopeError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, uint64(1), ee.Version)
	})

	t.Run("rejects unknown kind ids", func(t *testing.T) {
		data := append([]byte{0x00}, varint.ToUvarint(4000)...)
		data = append(data, 0xa0)

		_, err := ontology.DecodeV0(data)
		require.ErrorIs(t, err, ontology.ErrUnknownKindID)

		var ee *ontology.EnvelopeError
		require.ErrorAs(t, err, &ee)
		assert.Equal(t, uint64(4000), ee.KindID)
	})

	t.Run("truncated header", func(t *testing.T) {
		_, err := ontology.DecodeV0(nil)
		require.ErrorIs(t, err, ontology.ErrTruncated)

		_, err = ontology.DecodeV0([]byte{0x00})
		require.ErrorIs(t, err, ontology.ErrTruncated)
	})

	t.Run("body errors surface", func(t *testing.T) {
		data := []byte{0x00, byte(v0.KindClassAssertion), 0xa0}

		_, err := ontology.DecodeV0(data)
		require.ErrorIs(t, err, ontology.ErrMissingField)
	})
}
