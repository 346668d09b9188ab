package ontology

import (
	"errors"
	"fmt"
)

var (
	ErrKindNotFound   = errors.New("kind not found")
	ErrKindMismatch   = errors.New("kind mismatch")
	ErrUnknownField   = errors.New("unknown field")
	ErrDuplicateField = errors.New("duplicate field")
	ErrMissingField   = errors.New("missing required field")
	ErrInvalidHex     = errors.New("invalid hex string")
	ErrInvalidValue   = errors.New("invalid value")
	ErrTruncated      = errors.New("truncated input")

	ErrUnsupportedVersion = errors.New("unsupported envelope version")
	ErrUnknownKindID      = errors.New("unknown kind id")

	ErrMalformedCid = errors.New("malformed cid")
	ErrUnknownCodec = errors.New("unknown codec")
	ErrCidVersion   = errors.New("unsupported cid version")

	ErrOutOfRange = errors.New("out of range")
)

// FormatError is returned when a serialized record cannot be decoded.
type FormatError struct {
	Format string
	Field  string
	Err    error
	Detail string
}

func (e *FormatError) Error() string {
	msg := e.Format + ": "
	if e.Field != "" {
		msg += fmt.Sprintf("field %q: ", e.Field)
	}

	msg += e.Err.Error()

	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}

	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// CidError is returned when a foreign CID cannot be accepted.
type CidError struct {
	Input  string
	Codec  uint64
	Err    error
	Detail string
}

func (e *CidError) Error() string {
	msg := fmt.Sprintf("cid %q: %s", e.Input, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *CidError) Unwrap() error {
	return e.Err
}

// EnvelopeError is returned when a v0 envelope cannot be opened.
type EnvelopeError struct {
	Version uint64
	KindID  uint64
	Err     error
	Detail  string
}

func (e *EnvelopeError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnsupportedVersion):
		return fmt.Sprintf("envelope: %s %d", e.Err, e.Version)
	case errors.Is(e.Err, ErrUnknownKindID):
		return fmt.Sprintf("envelope: %s %d", e.Err, e.KindID)
	case e.Detail != "":
		return fmt.Sprintf("envelope: %s (%s)", e.Err, e.Detail)
	default:
		return "envelope: " + e.Err.Error()
	}
}

func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// AbiDecodeError reports an offset or length that points outside the blob.
type AbiDecodeError struct {
	Field  string
	Offset uint64
	Err    error
	Detail string
}

func (e *AbiDecodeError) Error() string {
	msg := fmt.Sprintf("abi: field %q at offset %d: %s", e.Field, e.Offset, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *AbiDecodeError) Unwrap() error {
	return e.Err
}
