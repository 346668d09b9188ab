package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const widgetSchema = `
kinds:
  - name: Widget
    kindId: 0
    cidPrefix: 0xc000
    fields:
      - name: annotations
        shape: scalar[]
      - name: owner
        shape: scalar?
      - name: label
        shape: scalar
        required: true
        data: true
  - name: Gadget
    kindId: 1
    cidPrefix: 0xc001
    fields:
      - name: parts
        shape: scalar[]
`

func TestLoadSchema(t *testing.T) {
	sf, err := loadSchema(strings.NewReader(widgetSchema))
	require.NoError(t, err)
	require.Len(t, sf.Kinds, 2)

	w := sf.Kinds[0]
	assert.Equal(t, "Widget", w.Name)
	assert.Equal(t, uint64(0xc000), w.CidPrefix)
	require.Len(t, w.Fields, 3)
	assert.True(t, w.Fields[2].Required)
	assert.True(t, w.Fields[2].Data)

	_, err = loadSchema(strings.NewReader("kinds:\n  - name: A\n    colour: red\n"))
	assert.Error(t, err)
}

func TestGenerateSchema(t *testing.T) {
	sf, err := loadSchema(strings.NewReader(widgetSchema))
	require.NoError(t, err)

	code, err := GenerateSchema(sf, "widgets")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "// Code generated by ontologygen. DO NOT EDIT."))

	for _, want := range []string{
		"package widgets",
		"type Widget struct",
		"type Gadget struct",
		"KindWidget",
		"KindGadget",
		"func (o *Widget) AppendCanonical(",
		"func (o *Widget) SetCanonicalField(",
		"func (o *Widget) DecodeABI(",
		"func (o *Gadget) Canonicalize()",
		"ontology.AppendRequired(b, 3, o.Label)",
		"ontology.AppendOptional(b, 2, o.Owner)",
		"ontology.AppendRepeated(b, 1, o.Annotations)",
		"ontology.Register(",
	} {
		assert.Contains(t, code, want)
	}

	again, err := GenerateSchema(sf, "widgets")
	require.NoError(t, err)
	assert.Equal(t, code, again)

	formatted, err := formatSource("out.go", code)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(formatted), "// Code generated by ontologygen. DO NOT EDIT.\n"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		msg    string
	}{
		{
			name:   "no kinds",
			schema: "kinds: []\n",
			msg:    "no kinds defined",
		},
		{
			name: "duplicate kind",
			schema: `
kinds:
  - {name: A, kindId: 0, cidPrefix: 1}
  - {name: A, kindId: 1, cidPrefix: 2}
`,
			msg: "duplicate kind name",
		},
		{
			name: "kind ids out of order",
			schema: `
kinds:
  - {name: A, kindId: 1, cidPrefix: 1}
  - {name: B, kindId: 1, cidPrefix: 2}
`,
			msg: "kind id 1 does not follow 1",
		},
		{
			name: "duplicate prefix",
			schema: `
kinds:
  - {name: A, kindId: 0, cidPrefix: 7}
  - {name: B, kindId: 1, cidPrefix: 7}
`,
			msg: "cid prefix 0x7 already used by A",
		},
		{
			name: "duplicate field",
			schema: `
kinds:
  - name: A
    fields:
      - {name: x, shape: scalar}
      - {name: x, shape: "scalar[]"}
`,
			msg: "field x: duplicate field name",
		},
		{
			name: "unknown shape",
			schema: `
kinds:
  - name: A
    fields:
      - {name: x, shape: map}
`,
			msg: `unknown shape "map"`,
		},
		{
			name: "required repeated",
			schema: `
kinds:
  - name: A
    fields:
      - {name: x, shape: "scalar[]", required: true}
`,
			msg: "cannot be required",
		},
		{
			name:   "lower case kind name",
			schema: "kinds:\n  - {name: widget}\n",
			msg:    "kind widget: name: must be in a valid format",
		},
		{
			name: "missing field name",
			schema: `
kinds:
  - name: A
    fields:
      - {shape: scalar}
`,
			msg: "kind A: field 0: name: cannot be blank",
		},
		{
			name: "reserved name",
			schema: `
kinds:
  - name: A
    fields:
      - {name: clone, shape: scalar}
`,
			msg: "collides with a generated method",
		},
		{
			name:   "reserved kind name",
			schema: "kinds:\n  - {name: Entity}\n",
			msg:    "kind Entity: name collides with a generated type",
		},
		{
			name: "fields with the same Go name",
			schema: `
kinds:
  - name: A
    fields:
      - {name: a_b, shape: scalar}
      - {name: aB, shape: scalar}
`,
			msg: "field aB: name maps to the same Go field as a_b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSchema(strings.NewReader(tt.schema))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)

			var se *SchemaError
			assert.True(t, errors.As(err, &se))
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	_, err := loadSchema(strings.NewReader(`
kinds:
  - name: A
    fields:
      - {name: x, shape: map}
      - {name: y, shape: scalar}
      - {name: y, shape: scalar}
`))
	require.Error(t, err)

	assert.Contains(t, err.Error(), `unknown shape "map"`)
	assert.Contains(t, err.Error(), "duplicate field name")
	assert.Len(t, strings.Split(err.Error(), "\n"), 2)
}

func TestCheckedInSchema(t *testing.T) {
	f, err := os.Open("../../../../api/ontology/schema.yml")
	require.NoError(t, err)
	defer f.Close()

	sf, err := loadSchema(f)
	require.NoError(t, err)
	require.Len(t, sf.Kinds, 26)

	for i, k := range sf.Kinds {
		assert.Equal(t, uint64(i), k.KindID)
		assert.Equal(t, uint64(0xc000+i), k.CidPrefix)
	}

	code, err := GenerateSchema(sf, "ontology_v0")
	require.NoError(t, err)

	formatted, err := formatSource("ontology.gen.go", code)
	require.NoError(t, err)

	committed, err := os.ReadFile("../../../../api/ontology/ontology_v0/ontology.gen.go")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(formatted), "// Code generated by ontologygen. DO NOT EDIT.\n"))
	assert.Equal(t, string(committed), string(formatted), "ontology.gen.go is stale; run go generate")
}
