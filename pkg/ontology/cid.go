package ontology

import (
	"encoding/hex"
	"fmt"
	"slices"
	"strings"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

type cidOptions struct {
	canonicalize bool
}

type CidOption func(*cidOptions)

// WithCanonicalize hashes a canonicalized copy of the record, leaving the
// record itself untouched.
func WithCanonicalize() CidOption {
	return func(o *cidOptions) {
		o.canonicalize = true
	}
}

// ToCid hashes the canonical encoding of r with Keccak-256 and wraps the
// digest as a version 1 CID whose codec is the kind's CID prefix.
//
// Repeated fields are hashed in their current order. Call Canonicalize first,
// or pass WithCanonicalize, when the order is not already normalized.
func ToCid(r Record, opts ...CidOption) (cid.Cid, error) {
	var o cidOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.canonicalize {
		r = r.Clone()
		r.Canonicalize()
	}

	h := sha3.NewLegacyKeccak256()
	h.Write(r.AppendCanonical(nil))

	hash, err := mh.Encode(h.Sum(nil), mh.KECCAK_256)
	if err != nil {
		return cid.Undef, fmt.Errorf("error encoding multihash: %w", err)
	}

	return cid.NewCidV1(r.Descriptor().CidPrefix, mh.Multihash(hash)), nil
}

// CidBytes returns the binary form of the record's CID.
func CidBytes(r Record, opts ...CidOption) ([]byte, error) {
	c, err := ToCid(r, opts...)
	if err != nil {
		return nil, err
	}

	return c.Bytes(), nil
}

// ParseCid parses a CID given either as a multibase string or as 0x
// prefixed hex of its binary form. When permitted is non-empty the codec
// must be one of its values.
func ParseCid(s string, permitted ...uint64) (cid.Cid, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		b, err := hex.DecodeString(rest)
		if err != nil {
			return cid.Undef, &CidError{Input: s, Err: ErrInvalidHex, Detail: err.Error()}
		}

		c, err := cid.Cast(b)
		if err != nil {
			return cid.Undef, &CidError{Input: s, Err: ErrMalformedCid, Detail: err.Error()}
		}

		return checkCid(s, c, permitted)
	}

	c, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, &CidError{Input: s, Err: ErrMalformedCid, Detail: err.Error()}
	}

	return checkCid(s, c, permitted)
}

// CidFromBytes is ParseCid for the binary form.
func CidFromBytes(b []byte, permitted ...uint64) (cid.Cid, error) {
	c, err := cid.Cast(b)
	if err != nil {
		return cid.Undef, &CidError{Input: "0x" + hex.EncodeToString(b), Err: ErrMalformedCid, Detail: err.Error()}
	}

	return checkCid("0x"+hex.EncodeToString(b), c, permitted)
}

// ParseKindCid parses a CID whose codec must belong to a registered kind and
// returns that kind.
func ParseKindCid(s string) (cid.Cid, *KindDesc, error) {
	c, err := ParseCid(s, Codecs()...)
	if err != nil {
		return cid.Undef, nil, err
	}

	desc, _ := LookupCodec(c.Type())
	return c, desc, nil
}

func checkCid(input string, c cid.Cid, permitted []uint64) (cid.Cid, error) {
	if c.Version() != 1 {
		return cid.Undef, &CidError{
			Input:  input,
			Codec:  c.Type(),
			Err:    ErrCidVersion,
			Detail: fmt.Sprintf("version %d", c.Version()),
		}
	}

	if len(permitted) > 0 && !slices.Contains(permitted, c.Type()) {
		return cid.Undef, &CidError{
			Input:  input,
			Codec:  c.Type(),
			Err:    ErrUnknownCodec,
			Detail: fmt.Sprintf("codec %#x", c.Type()),
		}
	}

	return c, nil
}
