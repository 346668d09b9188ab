package ontology_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v0 "miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

func TestMarshalWeb3(t *testing.T) {
	t.Run("class", func(t *testing.T) {
		data, err := ontology.MarshalWeb3(&v0.Class{Annotations: [][]byte{{1, 2, 3}}})
		require.NoError(t, err)

		assert.Equal(t,
			`{"type":"Class","cid":"0x`+classCidHex+`","annotations":["0x010203"],"superClassExpression":[]}`,
			string(data))
	})

	t.Run("absent optional is null", func(t *testing.T) {
		data, err := ontology.MarshalWeb3(&v0.ClassAssertion{Class: []byte{0xab}})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))

		assert.Nil(t, m["subject"])
		assert.Contains(t, m, "subject")
		assert.Equal(t, "0xab", m["class"])
		assert.Equal(t, "ClassAssertion", m["type"])
	})

	t.Run("encoding/json uses the same format", func(t *testing.T) {
		ann := &v0.Annotation{Property: []byte{1}, Value: []byte("hi")}

		direct, err := ontology.MarshalWeb3(ann)
		require.NoError(t, err)

		viaJSON, err := json.Marshal(ann)
		require.NoError(t, err)

		assert.JSONEq(t, string(direct), string(viaJSON))
	})
}

func TestUnmarshalWeb3(t *testing.T) {
	t.Run("ignores cid and decodes the default annotation", func(t *testing.T) {
		var ann v0.Annotation
		err := ontology.UnmarshalWeb3([]byte(`{"cid": "0x1234", "type": "Annotation", "property": "0x", "value": "0x"}`), &ann)
		require.NoError(t, err)
		assert.Equal(t, v0.Annotation{}, ann)
	})

	t.Run("round trips", func(t *testing.T) {
		in := &v0.ObjectHasValue{
			Annotations:          [][]byte{{1}},
			SuperClassExpression: [][]byte{{2}, {3}},
			Individual:           []byte{0xde, 0xad},
		}

		data, err := ontology.MarshalWeb3(in)
		require.NoError(t, err)

		var out v0.ObjectHasValue
		require.NoError(t, ontology.UnmarshalWeb3(data, &out))
		assert.Equal(t, in, &out)
	})

	t.Run("cid may be repeated or missing", func(t *testing.T) {
		var ca v0.ClassAssertion
		require.NoError(t, ontology.UnmarshalWeb3([]byte(`{"class":"0x01","cid":null,"cid":7}`), &ca))
		assert.Equal(t, []byte{1}, ca.Class)
	})

	t.Run("uppercase hex is accepted", func(t *testing.T) {
		var ca v0.ClassAssertion
		require.NoError(t, ontology.UnmarshalWeb3([]byte(`{"class":"0xABCD"}`), &ca))
		assert.Equal(t, []byte{0xab, 0xcd}, ca.Class)
	})

	t.Run("null repeated is empty", func(t *testing.T) {
		var ca v0.ClassAssertion
		require.NoError(t, ontology.UnmarshalWeb3([]byte(`{"class":"0x01","annotations":null}`), &ca))
		assert.Nil(t, ca.Annotations)
	})

	t.Run("decoding replaces existing values", func(t *testing.T) {
		ca := v0.ClassAssertion{Annotations: [][]byte{{7}}, Subject: []byte{8}, Class: []byte{9}}
		require.NoError(t, ontology.UnmarshalWeb3([]byte(`{"class":"0x01"}`), &ca))
		assert.Equal(t, v0.ClassAssertion{Class: []byte{1}}, ca)

		require.NoError(t, json.Unmarshal([]byte(`{"class":"0x02"}`), &ca))
		assert.Equal(t, v0.ClassAssertion{Class: []byte{2}}, ca)
	})

	t.Run("encoding/json", func(t *testing.T) {
		var ca v0.ClassAssertion
		require.NoError(t, json.Unmarshal([]byte(`{"class":"0x01","subject":"0x02"}`), &ca))
		assert.Equal(t, v0.ClassAssertion{Class: []byte{1}, Subject: []byte{2}}, ca)
	})
}

func TestUnmarshalWeb3Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		field string
	}{
		{"unknown field", `{"class":"0x01","colour":"0x02"}`, ontology.ErrUnknownField, "colour"},
		{"duplicate field", `{"class":"0x01","class":"0x02"}`, ontology.ErrDuplicateField, "class"},
		{"duplicate type", `{"type":"ClassAssertion","type":"ClassAssertion","class":"0x01"}`, ontology.ErrDuplicateField, "type"},
		{"missing required", `{"subject":"0x01"}`, ontology.ErrMissingField, "class"},
		{"missing prefix", `{"class":"01"}`, ontology.ErrInvalidHex, "class"},
		{"bad digit", `{"class":"0x0g"}`, ontology.ErrInvalidHex, "class"},
		{"odd length", `{"class":"0x123"}`, ontology.ErrInvalidHex, "class"},
		{"bad element", `{"class":"0x01","annotations":["0x01","zz"]}`, ontology.ErrInvalidHex, "annotations"},
		{"null required", `{"class":null}`, ontology.ErrInvalidValue, "class"},
		{"number", `{"class":1}`, ontology.ErrInvalidValue, "class"},
		{"wrong kind", `{"type":"Class","class":"0x01"}`, ontology.ErrKindMismatch, "type"},
		{"not an object", `["0x01"]`, ontology.ErrInvalidValue, ""},
		{"trailing data", `{"class":"0x01"} {}`, ontology.ErrInvalidValue, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ca v0.ClassAssertion
			err := ontology.UnmarshalWeb3([]byte(tt.input), &ca)
			require.ErrorIs(t, err, tt.err)

			var fe *ontology.FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "web3", fe.Format)
			assert.Equal(t, tt.field, fe.Field)
		})
	}
}

func TestUnmarshalWeb3Record(t *testing.T) {
	r, err := ontology.UnmarshalWeb3Record([]byte(`{"cid":"0x1234","type":"Annotation","property":"0x","value":"0x"}`))
	require.NoError(t, err)
	assert.Equal(t, &v0.Annotation{}, r)

	_, err = ontology.UnmarshalWeb3Record([]byte(`{"property":"0x","value":"0x"}`))
	require.ErrorIs(t, err, ontology.ErrMissingField)

	_, err = ontology.UnmarshalWeb3Record([]byte(`{"type":"Unicorn"}`))
	require.ErrorIs(t, err, ontology.ErrKindNotFound)
}
