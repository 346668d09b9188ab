package ontology_v0

import (
	"fmt"
	"slices"
	"strings"

	"miren.dev/ontology/pkg/ontology"
)

// EventSuffix is appended to a kind name to form the name of the contract
// event emitted when an entity of that kind is stored.
const EventSuffix = "Stored"

// Kinds returns every kind in schema order.
func Kinds() []Kind {
	return slices.Clone(allKinds)
}

// Variants returns the names of every kind in schema order.
func Variants() []string {
	names := make([]string, 0, len(allKinds))
	for _, k := range allKinds {
		names = append(names, k.String())
	}
	return names
}

// KindFromName returns the kind with the given name.
func KindFromName(name string) (Kind, error) {
	for _, k := range allKinds {
		if kindDescs[k].Name == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %s", ontology.ErrKindNotFound, name)
}

// KindFromEventName maps a "<Kind>Stored" event name to its kind.
func KindFromEventName(name string) (Kind, error) {
	return KindFromName(strings.TrimSuffix(name, EventSuffix))
}

// KindFromID returns the kind with the given numeric id.
func KindFromID(id uint64) (Kind, error) {
	k := Kind(id)
	if _, ok := kindDescs[k]; !ok {
		return 0, fmt.Errorf("%w: id %d", ontology.ErrKindNotFound, id)
	}
	return k, nil
}

// Descriptor returns the descriptor of k, or nil when k is not a known kind.
func (k Kind) Descriptor() *ontology.KindDesc {
	return kindDescs[k]
}

func (k Kind) String() string {
	if d, ok := kindDescs[k]; ok {
		return d.Name
	}
	return fmt.Sprintf("Kind(%d)", uint64(k))
}

func (k Kind) ID() uint64 {
	return uint64(k)
}

// CidPrefix is 0 for an unknown kind.
func (k Kind) CidPrefix() uint64 {
	if d, ok := kindDescs[k]; ok {
		return d.CidPrefix
	}
	return 0
}

// EventName is the name of the event announcing a stored entity of kind k.
func (k Kind) EventName() string {
	return k.String() + EventSuffix
}

// RetrieveFnName is the name of the contract getter for kind k.
func (k Kind) RetrieveFnName() string {
	if d, ok := kindDescs[k]; ok {
		return d.RetrieveFnName()
	}
	return ""
}

func (k Kind) CidFieldNames() []string {
	if d, ok := kindDescs[k]; ok {
		return d.CidFieldNames()
	}
	return nil
}

func (k Kind) DataFieldNames() []string {
	if d, ok := kindDescs[k]; ok {
		return d.DataFieldNames()
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindDescs[k]; !ok {
		return nil, fmt.Errorf("%w: id %d", ontology.ErrKindNotFound, uint64(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := KindFromName(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
