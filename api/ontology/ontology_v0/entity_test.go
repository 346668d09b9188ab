package ontology_v0

import (
	"encoding/hex"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"miren.dev/ontology/pkg/ontology"
)

// sample fills every field of an entity of kind k. Repeated fields get
// their elements in descending order so canonicalization has work to do.
func sample(t *testing.T, k Kind) Entity {
	t.Helper()

	e := k.Empty()
	for i, f := range k.Descriptor().Fields {
		num := k.Descriptor().Number(i)
		require.NoError(t, e.SetCanonicalField(num, []byte{byte(k), byte(i), 2}))
		if f.Shape == ontology.Repeated {
			require.NoError(t, e.SetCanonicalField(num, []byte{byte(k), byte(i), 1}))
		}
	}
	return e
}

func TestRoundTrips(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := sample(t, k)
			require.False(t, e.Empty())

			t.Run("compact", func(t *testing.T) {
				data, err := MarshalCompact(e)
				require.NoError(t, err)

				out, err := UnmarshalCompact(k, data)
				require.NoError(t, err)
				assert.Equal(t, e, out)
			})

			t.Run("web3", func(t *testing.T) {
				data, err := MarshalWeb3(e)
				require.NoError(t, err)

				out, err := UnmarshalWeb3(data)
				require.NoError(t, err)
				assert.Equal(t, e, out)
			})

			t.Run("v0", func(t *testing.T) {
				data, err := EncodeV0(e)
				require.NoError(t, err)

				out, err := DecodeV0(data)
				require.NoError(t, err)
				assert.Equal(t, e, out)
			})

			t.Run("canonical", func(t *testing.T) {
				out, err := DecodeCanonical(k, EncodeCanonical(e))
				require.NoError(t, err)
				assert.Equal(t, e, out)
			})

			t.Run("abi", func(t *testing.T) {
				out, err := DecodeABI(k, EncodeABI(e))
				require.NoError(t, err)
				assert.Equal(t, e, out)

				out, err = DecodeEvent(k.EventName(), EncodeABI(e))
				require.NoError(t, err)
				assert.Equal(t, e, out)
			})

			t.Run("empty", func(t *testing.T) {
				empty := k.Empty()

				data, err := EncodeV0(empty)
				require.NoError(t, err)

				out, err := DecodeV0(data)
				require.NoError(t, err)
				assert.Equal(t, empty, out)

				web3, err := MarshalWeb3(empty)
				require.NoError(t, err)

				out, err = UnmarshalWeb3(web3)
				require.NoError(t, err)
				assert.Equal(t, empty, out)
			})
		})
	}
}

func TestRandomRoundTrips(t *testing.T) {
	f := fuzz.NewWithSeed(7).NilChance(0.3).NumElements(0, 4)

	for _, k := range Kinds() {
		for i := 0; i < 25; i++ {
			e := k.Empty()
			f.Fuzz(e)
			e.Normalize()

			compact, err := MarshalCompact(e)
			require.NoError(t, err)
			out, err := UnmarshalCompact(k, compact)
			require.NoError(t, err)
			assert.Equal(t, e, out, "compact %s", k)

			web3, err := MarshalWeb3(e)
			require.NoError(t, err)
			out, err = UnmarshalWeb3(web3)
			require.NoError(t, err)
			assert.Equal(t, e, out, "web3 %s", k)

			out, err = DecodeCanonical(k, EncodeCanonical(e))
			require.NoError(t, err)
			assert.Equal(t, e, out, "canonical %s", k)

			out, err = DecodeABI(k, EncodeABI(e))
			require.NoError(t, err)
			assert.Equal(t, e, out, "abi %s", k)

			c1, err := ToCid(e, ontology.WithCanonicalize())
			require.NoError(t, err)
			c2, err := ToCid(out, ontology.WithCanonicalize())
			require.NoError(t, err)
			assert.Equal(t, c1, c2)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			e := sample(t, k)
			reversed := e.Clone().(Entity)

			Canonicalize(e)
			once := e.Clone()
			Canonicalize(e)
			assert.Equal(t, once, e, "canonicalize is idempotent")

			c1, err := ToCid(e)
			require.NoError(t, err)

			c2, err := ToCid(reversed, ontology.WithCanonicalize())
			require.NoError(t, err)
			assert.Equal(t, c1, c2)

			Canonicalize(reversed)
			c3, err := ToCid(reversed)
			require.NoError(t, err)
			assert.Equal(t, c1, c3)
			assert.True(t, Equal(e, reversed))
		})
	}
}

func TestCidPerKind(t *testing.T) {
	seen := map[string]Kind{}

	for _, k := range Kinds() {
		c, err := ToCid(k.Empty())
		require.NoError(t, err)
		assert.Equal(t, k.CidPrefix(), c.Type())

		key := hex.EncodeToString(c.Bytes())
		prev, dup := seen[key]
		assert.False(t, dup, "%s shares a cid with %s", k, prev)
		seen[key] = k
	}
}

func TestClone(t *testing.T) {
	e := sample(t, KindObjectIntersectionOf).(*ObjectIntersectionOf)
	c := e.Clone().(*ObjectIntersectionOf)
	require.Equal(t, e, c)

	c.IntersectionOf[0][0] = 0xff
	assert.NotEqual(t, e.IntersectionOf[0][0], c.IntersectionOf[0][0])
}

func TestUnmarshalWeb3Entity(t *testing.T) {
	e, err := UnmarshalWeb3([]byte(`{"cid": "0x1234", "type": "Annotation", "property": "0x", "value": "0x"}`))
	require.NoError(t, err)
	assert.Equal(t, KindAnnotation.Empty(), e)

	_, err = UnmarshalWeb3([]byte(`{"type": "Annotation", "property": "0x", "value": "0x", "value": "0x"}`))
	assert.ErrorIs(t, err, ontology.ErrDuplicateField)

	_, err = UnmarshalWeb3([]byte(`{"type": "Annotation", "property": "0x"}`))
	assert.ErrorIs(t, err, ontology.ErrMissingField)

	_, err = UnmarshalWeb3([]byte(`{"type": "Annotation", "property": "0x", "value": "0x", "extra": null}`))
	assert.ErrorIs(t, err, ontology.ErrUnknownField)
}

func TestDecodeEventUnknown(t *testing.T) {
	_, err := DecodeEvent("UnicornStored", nil)
	assert.ErrorIs(t, err, ontology.ErrKindNotFound)
}
