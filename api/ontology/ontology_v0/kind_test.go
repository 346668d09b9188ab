package ontology_v0

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"miren.dev/ontology/pkg/ontology"
)

func TestVariants(t *testing.T) {
	variants := Variants()
	assert.Contains(t, variants, "Annotation")
	assert.Contains(t, variants, "NegativeClassAssertion")
	assert.Equal(t, "Class", variants[0])
	assert.Len(t, variants, len(Kinds()))
}

func TestKindLookup(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			byName, err := KindFromName(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, byName)

			byID, err := KindFromID(k.ID())
			require.NoError(t, err)
			assert.Equal(t, k, byID)

			byEvent, err := KindFromEventName(k.EventName())
			require.NoError(t, err)
			assert.Equal(t, k, byEvent)

			e := k.Empty()
			assert.Equal(t, k, e.Kind())
			assert.True(t, e.Empty())
			assert.Same(t, k.Descriptor(), e.Descriptor())
			assert.Equal(t, 0xc000+k.ID(), k.CidPrefix())
		})
	}

	_, err := KindFromName("Unicorn")
	assert.ErrorIs(t, err, ontology.ErrKindNotFound)

	_, err = KindFromID(999)
	assert.ErrorIs(t, err, ontology.ErrKindNotFound)

	assert.Panics(t, func() { Kind(999).Empty() })
	assert.Equal(t, "Kind(999)", Kind(999).String())
}

func TestKindFromEventName(t *testing.T) {
	k, err := KindFromEventName("ClassAssertionStored")
	require.NoError(t, err)
	assert.Equal(t, KindClassAssertion, k)

	k, err = KindFromEventName("Annotation")
	require.NoError(t, err)
	assert.Equal(t, KindAnnotation, k)

	_, err = KindFromEventName("UnicornStored")
	assert.ErrorIs(t, err, ontology.ErrKindNotFound)
}

func TestRetrieveFnName(t *testing.T) {
	assert.Equal(t, "retrieveClass", KindClass.RetrieveFnName())
	assert.Equal(t, "retrieveNegativeClassAssertion", KindNegativeClassAssertion.RetrieveFnName())
}

func TestFieldPartition(t *testing.T) {
	assert.Contains(t, KindAnnotation.DataFieldNames(), "value")
	assert.Contains(t, KindAnnotation.CidFieldNames(), "property")
	assert.NotContains(t, KindAnnotation.CidFieldNames(), "value")

	assert.Equal(t, []string{"target"}, KindDataPropertyAssertion.DataFieldNames())
	assert.Equal(t, []string{"target"}, KindNegativeDataPropertyAssertion.DataFieldNames())
	assert.Empty(t, KindClass.DataFieldNames())

	ann := &Annotation{
		Annotations: [][]byte{{1}, {2}},
		Property:    []byte{3},
		Value:       []byte("free text"),
	}
	assert.Equal(t, [][]byte{{1}, {2}, {3}}, ann.CidFields())

	ca := &ClassAssertion{Class: []byte{4}}
	assert.Equal(t, [][]byte{{4}}, ca.CidFields())
}

func TestKindText(t *testing.T) {
	b, err := KindObjectOneOf.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ObjectOneOf", string(b))

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("DataHasValue")))
	assert.Equal(t, KindDataHasValue, k)

	assert.Error(t, k.UnmarshalText([]byte("Unicorn")))
}

func TestUnknownKind(t *testing.T) {
	k := Kind(99)

	assert.Nil(t, k.Descriptor())
	assert.Equal(t, uint64(0), k.CidPrefix())
	assert.Equal(t, "", k.RetrieveFnName())
	assert.Nil(t, k.CidFieldNames())
	assert.Nil(t, k.DataFieldNames())
	assert.Equal(t, "Kind(99)", k.String())

	_, err := k.MarshalText()
	assert.ErrorIs(t, err, ontology.ErrKindNotFound)
}
