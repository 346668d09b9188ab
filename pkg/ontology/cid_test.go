package ontology_test

import (
	"encoding/hex"
	"testing"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v0 "miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

const classCidHex = "018080031b20e74c92dfbce4b3219c3106b978aa99b8c0b1a34f90e60c947615752d37c210f9"

func TestToCid(t *testing.T) {
	t.Run("matches the published class cid", func(t *testing.T) {
		klass := &v0.Class{Annotations: [][]byte{{1, 2, 3}}}

		c, err := ontology.ToCid(klass)
		require.NoError(t, err)

		assert.Equal(t, classCidHex, hex.EncodeToString(c.Bytes()))
		assert.Equal(t, uint64(1), c.Version())
		assert.Equal(t, uint64(0xc000), c.Type())

		dec, err := mh.Decode(c.Hash())
		require.NoError(t, err)
		assert.Equal(t, uint64(mh.KECCAK_256), dec.Code)
		assert.Len(t, dec.Digest, 32)
	})

	t.Run("CidBytes", func(t *testing.T) {
		b, err := ontology.CidBytes(&v0.Class{Annotations: [][]byte{{1, 2, 3}}})
		require.NoError(t, err)
		assert.Equal(t, classCidHex, hex.EncodeToString(b))
	})

	t.Run("order matters until canonicalized", func(t *testing.T) {
		a := &v0.Class{Annotations: [][]byte{{1}, {2}}}
		b := &v0.Class{Annotations: [][]byte{{2}, {1}}}

		ca, err := ontology.ToCid(a)
		require.NoError(t, err)
		cb, err := ontology.ToCid(b)
		require.NoError(t, err)
		assert.NotEqual(t, ca, cb)

		ontology.Canonicalize(a)
		ontology.Canonicalize(b)

		ca, err = ontology.ToCid(a)
		require.NoError(t, err)
		cb, err = ontology.ToCid(b)
		require.NoError(t, err)
		assert.Equal(t, ca, cb)
	})

	t.Run("WithCanonicalize leaves the record alone", func(t *testing.T) {
		a := &v0.Class{Annotations: [][]byte{{2}, {1}}}
		sorted := &v0.Class{Annotations: [][]byte{{1}, {2}}}

		ca, err := ontology.ToCid(a, ontology.WithCanonicalize())
		require.NoError(t, err)

		cs, err := ontology.ToCid(sorted)
		require.NoError(t, err)

		assert.Equal(t, cs, ca)
		assert.Equal(t, [][]byte{{2}, {1}}, a.Annotations)
	})
}

func TestParseCid(t *testing.T) {
	klass := &v0.Class{Annotations: [][]byte{{1, 2, 3}}}
	c, err := ontology.ToCid(klass)
	require.NoError(t, err)

	t.Run("multibase string", func(t *testing.T) {
		got, err := ontology.ParseCid(c.String())
		require.NoError(t, err)
		assert.True(t, c.Equals(got))
	})

	t.Run("hex", func(t *testing.T) {
		got, err := ontology.ParseCid("0x" + classCidHex)
		require.NoError(t, err)
		assert.True(t, c.Equals(got))
	})

	t.Run("bytes", func(t *testing.T) {
		got, err := ontology.CidFromBytes(c.Bytes(), 0xc000)
		require.NoError(t, err)
		assert.True(t, c.Equals(got))
	})

	t.Run("codec not permitted", func(t *testing.T) {
		_, err := ontology.ParseCid(c.String(), 0xc001)
		require.ErrorIs(t, err, ontology.ErrUnknownCodec)

		var ce *ontology.CidError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, uint64(0xc000), ce.Codec)
	})

	t.Run("version 0 is rejected", func(t *testing.T) {
		_, err := ontology.ParseCid("QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG")
		require.ErrorIs(t, err, ontology.ErrCidVersion)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ontology.ParseCid("not a cid")
		require.ErrorIs(t, err, ontology.ErrMalformedCid)

		_, err = ontology.ParseCid("0xzz")
		require.ErrorIs(t, err, ontology.ErrInvalidHex)
	})

	t.Run("kind cid", func(t *testing.T) {
		got, desc, err := ontology.ParseKindCid(c.String())
		require.NoError(t, err)
		assert.True(t, c.Equals(got))
		assert.Equal(t, "Class", desc.Name)

		foreign := cid.NewCidV1(cid.DagCBOR, c.Hash())
		_, _, err = ontology.ParseKindCid(foreign.String())
		require.ErrorIs(t, err, ontology.ErrUnknownCodec)
	})
}
