package ontology_test

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v0 "miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

func compactKeys(t *testing.T, data []byte) []string {
	t.Helper()

	var m map[string]cbor.RawMessage
	require.NoError(t, cbor.Unmarshal(data, &m))

	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func TestCompact(t *testing.T) {
	t.Run("only required fields when the rest is empty", func(t *testing.T) {
		oc := &v0.ObjectComplementOf{ComplementOf: []byte{1, 2, 3}}

		data, err := ontology.MarshalCompact(oc)
		require.NoError(t, err)

		expected := append([]byte{0xa1, 0x6c}, []byte("complementOf")...)
		expected = append(expected, 0x43, 0x01, 0x02, 0x03)
		assert.Equal(t, expected, data)
	})

	t.Run("empty required fields are still written", func(t *testing.T) {
		data, err := ontology.MarshalCompact(&v0.Annotation{})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"property", "value"}, compactKeys(t, data))
	})

	t.Run("round trips", func(t *testing.T) {
		in := &v0.DataPropertyAssertion{
			Annotations: [][]byte{{1}, {2, 3}},
			Property:    []byte{4},
			Target:      []byte("forty two"),
		}

		data, err := ontology.MarshalCompact(in)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"annotations", "property", "target"}, compactKeys(t, data))

		var out v0.DataPropertyAssertion
		require.NoError(t, ontology.UnmarshalCompact(data, &out))
		assert.Equal(t, in, &out)
	})

	t.Run("absent fields decode empty", func(t *testing.T) {
		data, err := ontology.MarshalCompact(&v0.ClassAssertion{Class: []byte{7}})
		require.NoError(t, err)

		var out v0.ClassAssertion
		require.NoError(t, ontology.UnmarshalCompact(data, &out))
		assert.Nil(t, out.Subject)
		assert.Nil(t, out.Annotations)
		assert.Equal(t, []byte{7}, out.Class)
	})

	t.Run("decoding replaces existing values", func(t *testing.T) {
		data, err := ontology.MarshalCompact(&v0.ClassAssertion{Subject: []byte{1}, Class: []byte{2}})
		require.NoError(t, err)

		out := &v0.ClassAssertion{Annotations: [][]byte{{7}}, Subject: []byte{8}, Class: []byte{9}}
		require.NoError(t, ontology.UnmarshalCompact(data, out))
		assert.Equal(t, &v0.ClassAssertion{Subject: []byte{1}, Class: []byte{2}}, out)
	})
}

func TestCompactRejects(t *testing.T) {
	enc := func(v any) []byte {
		data, err := cbor.Marshal(v)
		require.NoError(t, err)
		return data
	}

	tests := []struct {
		name string
		data []byte
		err  error
	}{
		{
			name: "unknown field",
			data: enc(map[string]any{"class": []byte{1}, "colour": []byte{2}}),
			err:  ontology.ErrUnknownField,
		},
		{
			name: "missing required field",
			data: enc(map[string]any{"subject": []byte{1}}),
			err:  ontology.ErrMissingField,
		},
		{
			name: "duplicate key",
			data: []byte{0xa2, 0x65, 'c', 'l', 'a', 's', 's', 0x41, 0x01, 0x65, 'c', 'l', 'a', 's', 's', 0x41, 0x02},
			err:  ontology.ErrDuplicateField,
		},
		{
			name: "not a map",
			data: enc([]int{1, 2}),
			err:  ontology.ErrInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out v0.ClassAssertion
			err := ontology.UnmarshalCompact(tt.data, &out)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestDiagnoseCompact(t *testing.T) {
	data, err := ontology.MarshalCompact(&v0.ObjectComplementOf{ComplementOf: []byte{1, 2, 3}})
	require.NoError(t, err)

	diag, err := ontology.DiagnoseCompact(data)
	require.NoError(t, err)
	assert.Equal(t, `{"complementOf": h'010203'}`, diag)
}
