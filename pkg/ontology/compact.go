package ontology

import (
	"errors"

	"github.com/fxamacker/cbor/v2"
)

var (
	compactEnc cbor.EncMode
	compactDec cbor.DecMode
)

func init() {
	var err error

	opts := cbor.CoreDetEncOptions()
	opts.NilContainers = cbor.NilContainerAsEmpty

	compactEnc, err = opts.EncMode()
	if err != nil {
		panic("ontology: cbor encoder initialization failed: " + err.Error())
	}

	compactDec, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic("ontology: cbor decoder initialization failed: " + err.Error())
	}
}

// MarshalCompact encodes r as a CBOR map keyed by field name. Empty optional
// and repeated fields are left out; required fields are always present.
func MarshalCompact(r Record) ([]byte, error) {
	return compactEnc.Marshal(r)
}

// UnmarshalCompact decodes a CBOR map produced by MarshalCompact into r.
func UnmarshalCompact(data []byte, r Record) error {
	var keys map[string]cbor.RawMessage

	if err := compactDec.Unmarshal(data, &keys); err != nil {
		return compactError(err)
	}

	desc := r.Descriptor()

	for name := range keys {
		if _, _, ok := desc.Field(name); !ok {
			return &FormatError{Format: "compact", Field: name, Err: ErrUnknownField}
		}
	}

	for _, f := range desc.Fields {
		if _, ok := keys[f.Name]; f.Shape == Required && !ok {
			return &FormatError{Format: "compact", Field: f.Name, Err: ErrMissingField}
		}
	}

	reset(r)

	if err := compactDec.Unmarshal(data, r); err != nil {
		return compactError(err)
	}

	r.Normalize()
	return nil
}

// DiagnoseCompact renders a compact payload in CBOR diagnostic notation.
func DiagnoseCompact(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

func compactError(err error) error {
	var (
		dup     *cbor.DupMapKeyError
		unknown *cbor.UnknownFieldError
	)

	switch {
	case errors.As(err, &dup):
		return &FormatError{Format: "compact", Err: ErrDuplicateField, Detail: err.Error()}
	case errors.As(err, &unknown):
		return &FormatError{Format: "compact", Err: ErrUnknownField, Detail: err.Error()}
	default:
		return &FormatError{Format: "compact", Err: ErrInvalidValue, Detail: err.Error()}
	}
}
