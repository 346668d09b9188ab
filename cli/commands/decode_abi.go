package commands

import (
	"encoding/hex"
	"fmt"

	"miren.dev/ontology/api/ontology/ontology_v0"
)

func DecodeABI(ctx *Context, opts struct {
	Kind  string `long:"kind" description:"Kind of the encoded entity" type:"kind"`
	Event string `long:"event" description:"Name of the event carrying the entity, such as ClassStored"`
	Cid   bool   `long:"cid" description:"Also print the cid of the decoded entity"`
	Input string `position:"0" usage:"Hex encoded event data file, - for stdin" type:"file"`
}) error {
	var (
		kind ontology_v0.Kind
		err  error
	)

	switch {
	case opts.Kind != "" && opts.Event != "":
		return fmt.Errorf("--kind and --event are mutually exclusive")
	case opts.Kind != "":
		kind, err = kindFromFlag(opts.Kind)
	case opts.Event != "":
		kind, err = ontology_v0.KindFromEventName(opts.Event)
	default:
		return fmt.Errorf("one of --kind or --event is required")
	}
	if err != nil {
		return err
	}

	data, err := ctx.readHexInput(opts.Input)
	if err != nil {
		return err
	}

	e, err := ontology_v0.DecodeABI(kind, data)
	if err != nil {
		return err
	}

	out, err := ontology_v0.MarshalWeb3(e)
	if err != nil {
		return err
	}

	ctx.Printf("%s\n", out)

	if opts.Cid {
		c, err := ontology_v0.ToCid(e)
		if err != nil {
			return err
		}

		ctx.Printf("0x%s\n", hex.EncodeToString(c.Bytes()))
	}

	return nil
}
