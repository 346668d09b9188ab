package ontology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDesc = &KindDesc{
	Name:      "Annotation",
	ID:        14,
	CidPrefix: 0xc00e,
	Fields: []FieldDesc{
		{Name: "annotations", Shape: Repeated},
		{Name: "property", Shape: Required},
		{Name: "value", Shape: Required, Data: true},
	},
}

func TestKindDesc(t *testing.T) {
	assert.Equal(t, []string{"annotations", "property"}, testDesc.CidFieldNames())
	assert.Equal(t, []string{"value"}, testDesc.DataFieldNames())
	assert.Equal(t, "retrieveAnnotation", testDesc.RetrieveFnName())

	f, i, ok := testDesc.Field("property")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	assert.Equal(t, Required, f.Shape)
	assert.EqualValues(t, 2, testDesc.Number(i))

	_, _, ok = testDesc.Field("colour")
	assert.False(t, ok)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "scalar", Required.String())
	assert.Equal(t, "scalar?", Optional.String())
	assert.Equal(t, "scalar[]", Repeated.String())
}

func TestNormalize(t *testing.T) {
	assert.Nil(t, NormalizeBytes([]byte{}))
	assert.Equal(t, []byte{1}, NormalizeBytes([]byte{1}))

	assert.Nil(t, NormalizeRepeated([][]byte{}))
	assert.Equal(t, [][]byte{nil, {1}}, NormalizeRepeated([][]byte{{}, {1}}))
}

func TestSortRepeated(t *testing.T) {
	v := [][]byte{{2}, {1, 0}, {1}, {}}
	SortRepeated(v)
	assert.Equal(t, [][]byte{{}, {1}, {1, 0}, {2}}, v)

	SortRepeated(v)
	assert.Equal(t, [][]byte{{}, {1}, {1, 0}, {2}}, v)
}

func TestCloneRepeated(t *testing.T) {
	assert.Nil(t, CloneRepeated(nil))

	in := [][]byte{{1}, {2}}
	out := CloneRepeated(in)
	out[0][0] = 9

	assert.Equal(t, [][]byte{{1}, {2}}, in)
}
