package ontology

import "google.golang.org/protobuf/encoding/protowire"

// Shape is the storage shape of a field. Every field holds raw bytes.
type Shape int

const (
	Required Shape = iota
	Optional
	Repeated
)

func (s Shape) String() string {
	switch s {
	case Required:
		return "scalar"
	case Optional:
		return "scalar?"
	case Repeated:
		return "scalar[]"
	default:
		return "unknown"
	}
}

// FieldDesc describes one field of a kind. Position within KindDesc.Fields
// fixes the canonical tag and the ABI slot.
type FieldDesc struct {
	Name  string
	Shape Shape
	Data  bool
}

// KindDesc is the static description of a compiled kind.
type KindDesc struct {
	Name      string
	ID        uint64
	CidPrefix uint64
	Fields    []FieldDesc
}

// Field returns the field with the given name and its index.
func (k *KindDesc) Field(name string) (FieldDesc, int, bool) {
	for i, f := range k.Fields {
		if f.Name == name {
			return f, i, true
		}
	}

	return FieldDesc{}, -1, false
}

// Number returns the canonical field number of the field at index i.
func (k *KindDesc) Number(i int) protowire.Number {
	return protowire.Number(i + 1)
}

// CidFieldNames returns the identity-bearing fields in declaration order.
func (k *KindDesc) CidFieldNames() []string {
	var names []string
	for _, f := range k.Fields {
		if !f.Data {
			names = append(names, f.Name)
		}
	}
	return names
}

// DataFieldNames returns the literal payload fields in declaration order.
func (k *KindDesc) DataFieldNames() []string {
	var names []string
	for _, f := range k.Fields {
		if f.Data {
			names = append(names, f.Name)
		}
	}
	return names
}

// RetrieveFnName is the name of the contract getter for this kind.
func (k *KindDesc) RetrieveFnName() string {
	return "retrieve" + k.Name
}

func (k *KindDesc) String() string {
	return k.Name
}
