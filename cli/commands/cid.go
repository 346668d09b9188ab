package commands

import (
	"encoding/hex"

	"miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

func Cid(ctx *Context, opts struct {
	Input        string `position:"0" usage:"Web3 JSON file, - for stdin" type:"file"`
	Canonicalize bool   `long:"canonicalize" description:"Sort repeated fields before hashing"`
}) error {
	data, err := ctx.readWeb3Input(opts.Input)
	if err != nil {
		return err
	}

	e, err := ontology_v0.UnmarshalWeb3(data)
	if err != nil {
		return err
	}

	var cidOpts []ontology.CidOption
	if opts.Canonicalize {
		cidOpts = append(cidOpts, ontology.WithCanonicalize())
	}

	c, err := ontology_v0.ToCid(e, cidOpts...)
	if err != nil {
		return err
	}

	ctx.Log.Debug("computed cid", "kind", e.Kind(), "canonicalize", opts.Canonicalize)

	ctx.Printf("kind:   %s\n", e.Kind())
	ctx.Printf("hex:    0x%s\n", hex.EncodeToString(c.Bytes()))
	ctx.Printf("base32: %s\n", c.String())
	return nil
}
