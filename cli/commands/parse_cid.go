package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
	mh "github.com/multiformats/go-multihash"
	"miren.dev/ontology/pkg/ontology"
)

func ParseCid(ctx *Context, opts struct {
	Cid       string `position:"0" usage:"CID as a multibase string or 0x hex"`
	KindsOnly bool   `long:"kinds-only" description:"Reject codecs that are not ontology kinds"`
}) error {
	if opts.Cid == "" {
		return fmt.Errorf("a cid is required")
	}

	var permitted []uint64
	if opts.KindsOnly {
		permitted = ontology.Codecs()
	}

	c, err := ontology.ParseCid(opts.Cid, permitted...)
	if err != nil {
		return err
	}

	dec, err := mh.Decode(c.Hash())
	if err != nil {
		return err
	}

	kind := "unknown"
	if desc, ok := ontology.LookupCodec(c.Type()); ok {
		kind = desc.Name
	}

	ctx.Printf("version:   %d\n", c.Version())
	ctx.Printf("codec:     %#x (%s)\n", c.Type(), kind)
	ctx.Printf("multihash: %s\n", dec.Name)
	ctx.Printf("digest:    0x%s\n", hex.EncodeToString(dec.Digest))
	ctx.Printf("base58:    z%s\n", base58.Encode(c.Bytes()))
	return nil
}
