package main

import (
	"fmt"
	"io"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
	"miren.dev/ontology/pkg/multierror"
	"miren.dev/ontology/pkg/ontology"
	"miren.dev/ontology/pkg/set"
)

type schemaFile struct {
	Kinds []*schemaKind `yaml:"kinds"`
}

type schemaKind struct {
	Name      string         `yaml:"name"`
	KindID    uint64         `yaml:"kindId"`
	CidPrefix uint64         `yaml:"cidPrefix"`
	Fields    []*schemaField `yaml:"fields"`
}

type schemaField struct {
	Name     string `yaml:"name"`
	Shape    string `yaml:"shape"`
	Required bool   `yaml:"required,omitempty"`
	Data     bool   `yaml:"data,omitempty"` // literal payload, not identity bearing
}

// SchemaError describes one problem with the schema resource.
type SchemaError struct {
	Kind  string
	Field string
	Msg   string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Kind == "":
		return "schema: " + e.Msg
	case e.Field == "":
		return fmt.Sprintf("schema: kind %s: %s", e.Kind, e.Msg)
	default:
		return fmt.Sprintf("schema: kind %s: field %s: %s", e.Kind, e.Field, e.Msg)
	}
}

// Method names emitted on every kind; a field may not shadow them.
var reservedNames = set.New(
	"Kind", "Descriptor", "AppendCanonical", "SetCanonicalField", "Canonicalize",
	"CidFields", "MarshalWeb3", "UnmarshalWeb3Field", "MarshalJSON", "UnmarshalJSON",
	"DecodeABI", "EncodeABI", "Normalize", "Clone", "Empty", "GetSubject",
)

// Package level types emitted next to the kinds.
var reservedKindNames = set.New("Kind", "Entity")

var (
	kindNamePattern  = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	fieldNamePattern = regexp.MustCompile(`^[a-z][A-Za-z0-9_]*$`)
)

func init() {
	validation.ErrorTag = "yaml"
}

func (k *schemaKind) Validate() error {
	return validation.ValidateStruct(k,
		validation.Field(&k.Name, validation.Required, validation.Match(kindNamePattern)),
	)
}

func (f *schemaField) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.Name, validation.Required, validation.Match(fieldNamePattern)),
		validation.Field(&f.Shape, validation.Required),
	)
}

func loadSchema(r io.Reader) (*schemaFile, error) {
	var sf schemaFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&sf); err != nil {
		return nil, fmt.Errorf("error decoding schema: %w", err)
	}

	if err := sf.validate(); err != nil {
		return nil, err
	}

	return &sf, nil
}

func (f *schemaField) shape() (ontology.Shape, error) {
	switch f.Shape {
	case "scalar":
		if f.Required {
			return ontology.Required, nil
		}
		return ontology.Optional, nil
	case "scalar?":
		if f.Required {
			return 0, fmt.Errorf("optional shape %q cannot be required", f.Shape)
		}
		return ontology.Optional, nil
	case "scalar[]":
		if f.Required {
			return 0, fmt.Errorf("repeated shape %q cannot be required", f.Shape)
		}
		return ontology.Repeated, nil
	default:
		return 0, fmt.Errorf("unknown shape %q", f.Shape)
	}
}

// validate reports every problem in the schema at once.
func (sf *schemaFile) validate() error {
	var err error

	fail := func(kind, field, format string, args ...any) {
		err = multierror.Append(err, &SchemaError{Kind: kind, Field: field, Msg: fmt.Sprintf(format, args...)})
	}

	if len(sf.Kinds) == 0 {
		fail("", "", "no kinds defined")
	}

	var (
		names    = set.New[string]()
		prefixes = map[uint64]string{}
	)

	for i, k := range sf.Kinds {
		if verr := k.Validate(); verr != nil {
			if k.Name == "" {
				fail("", "", "kind %d: %s", i, verr)
				continue
			}
			fail(k.Name, "", "%s", verr)
		}

		if !names.Add(k.Name) {
			fail(k.Name, "", "duplicate kind name")
		}

		if reservedKindNames.Contains(k.Name) {
			fail(k.Name, "", "name collides with a generated type")
		}

		if i > 0 && k.KindID <= sf.Kinds[i-1].KindID {
			fail(k.Name, "", "kind id %d does not follow %d", k.KindID, sf.Kinds[i-1].KindID)
		}

		if other, ok := prefixes[k.CidPrefix]; ok {
			fail(k.Name, "", "cid prefix %#x already used by %s", k.CidPrefix, other)
		} else {
			prefixes[k.CidPrefix] = k.Name
		}

		var (
			fields  = set.New[string]()
			goNames = map[string]string{}
		)

		for j, f := range k.Fields {
			if verr := f.Validate(); verr != nil {
				if f.Name == "" {
					fail(k.Name, "", "field %d: %s", j, verr)
					continue
				}
				fail(k.Name, f.Name, "%s", verr)
				continue
			}

			if !fields.Add(f.Name) {
				fail(k.Name, f.Name, "duplicate field name")
			} else if other, ok := goNames[toCamal(f.Name)]; ok {
				fail(k.Name, f.Name, "name maps to the same Go field as %s", other)
			} else {
				goNames[toCamal(f.Name)] = f.Name
			}

			if reservedNames.Contains(toCamal(f.Name)) {
				fail(k.Name, f.Name, "name collides with a generated method")
			}

			if _, serr := f.shape(); serr != nil {
				fail(k.Name, f.Name, "%s", serr)
			}
		}
	}

	return err
}
