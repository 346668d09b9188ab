package ontology_v0

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"miren.dev/ontology/pkg/ontology"
)

func asEntity(r ontology.Record) (Entity, error) {
	e, ok := r.(Entity)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an ontology_v0 kind", ontology.ErrKindNotFound, r.Descriptor().Name)
	}
	return e, nil
}

// ToCid computes the content identifier of e. Repeated fields are hashed in
// their current order unless ontology.WithCanonicalize is passed.
func ToCid(e Entity, opts ...ontology.CidOption) (cid.Cid, error) {
	return ontology.ToCid(e, opts...)
}

// Canonicalize sorts every repeated field of e in place.
func Canonicalize(e Entity) {
	e.Canonicalize()
}

// EncodeCanonical returns the bytes hashed by ToCid.
func EncodeCanonical(e Entity) []byte {
	return ontology.EncodeCanonical(e)
}

// DecodeCanonical decodes the canonical encoding of an entity of kind k.
func DecodeCanonical(k Kind, data []byte) (Entity, error) {
	e := k.Empty()
	if err := ontology.DecodeCanonical(data, e); err != nil {
		return nil, err
	}
	return e, nil
}

func MarshalCompact(e Entity) ([]byte, error) {
	return ontology.MarshalCompact(e)
}

// UnmarshalCompact decodes a compact body of kind k. The compact format does
// not carry the kind; use DecodeV0 when it is not known.
func UnmarshalCompact(k Kind, data []byte) (Entity, error) {
	e := k.Empty()
	if err := ontology.UnmarshalCompact(data, e); err != nil {
		return nil, err
	}
	return e, nil
}

func MarshalWeb3(e Entity) ([]byte, error) {
	return ontology.MarshalWeb3(e)
}

// UnmarshalWeb3 decodes a Web3 JSON object, selecting the kind by its "type"
// member.
func UnmarshalWeb3(data []byte) (Entity, error) {
	r, err := ontology.UnmarshalWeb3Record(data)
	if err != nil {
		return nil, err
	}
	return asEntity(r)
}

func EncodeV0(e Entity) ([]byte, error) {
	return ontology.EncodeV0(e)
}

func DecodeV0(data []byte) (Entity, error) {
	r, err := ontology.DecodeV0(data)
	if err != nil {
		return nil, err
	}
	return asEntity(r)
}

// DecodeABI decodes the event parameter block of an entity of kind k.
func DecodeABI(k Kind, data []byte) (Entity, error) {
	e := k.Empty()
	if err := ontology.DecodeABI(data, e); err != nil {
		return nil, err
	}
	return e, nil
}

// DecodeEvent decodes the parameter block of a "<Kind>Stored" event.
func DecodeEvent(eventName string, data []byte) (Entity, error) {
	k, err := KindFromEventName(eventName)
	if err != nil {
		return nil, err
	}
	return DecodeABI(k, data)
}

func EncodeABI(e Entity) []byte {
	return ontology.EncodeABI(e)
}

// Equal reports whether a and b are the same kind with identical fields.
func Equal(a, b Entity) bool {
	return ontology.Equal(a, b)
}
