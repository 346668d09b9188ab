package ontology_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v0 "miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

func TestRegistry(t *testing.T) {
	t.Run("every generated kind is registered in id order", func(t *testing.T) {
		descs := ontology.Registered()
		require.Len(t, descs, len(v0.Kinds()))

		for i, k := range v0.Kinds() {
			assert.Same(t, k.Descriptor(), descs[i])
		}
	})

	t.Run("lookup by name and codec", func(t *testing.T) {
		desc, ok := ontology.Lookup("Annotation")
		require.True(t, ok)
		assert.Equal(t, v0.KindAnnotation.ID(), desc.ID)

		byCodec, ok := ontology.LookupCodec(desc.CidPrefix)
		require.True(t, ok)
		assert.Same(t, desc, byCodec)

		_, ok = ontology.Lookup("Unicorn")
		assert.False(t, ok)
	})

	t.Run("new records are empty", func(t *testing.T) {
		r, err := ontology.New(v0.KindClassAssertion.ID())
		require.NoError(t, err)
		assert.IsType(t, &v0.ClassAssertion{}, r)
		assert.True(t, r.Empty())

		r, err = ontology.NewByName("Individual")
		require.NoError(t, err)
		assert.IsType(t, &v0.Individual{}, r)

		_, err = ontology.New(1 << 20)
		assert.ErrorIs(t, err, ontology.ErrKindNotFound)

		_, err = ontology.NewByName("Unicorn")
		assert.ErrorIs(t, err, ontology.ErrKindNotFound)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			ontology.Register(v0.KindClass.Descriptor(), func() ontology.Record { return &v0.Class{} })
		})
	})

	t.Run("codecs are sorted", func(t *testing.T) {
		codecs := ontology.Codecs()
		require.Len(t, codecs, len(v0.Kinds()))
		assert.IsNonDecreasing(t, codecs)
	})
}
