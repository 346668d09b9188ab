package commands

import (
	"github.com/davecgh/go-spew/spew"
	"miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

// Inspect prints the CBOR diagnostic notation of a payload. A body that
// does not decode as its kind is still shown, and sets a non-zero exit code.
func Inspect(ctx *Context, opts struct {
	Kind  string `long:"kind" description:"Treat the input as a compact body of this kind" type:"kind"`
	Hex   bool   `long:"hex" description:"Input is hex encoded"`
	Dump  bool   `long:"dump" description:"Also dump the decoded entity"`
	Input string `position:"0" usage:"Input file, - for stdin" type:"file"`
}) error {
	var (
		data []byte
		err  error
	)

	if opts.Hex {
		data, err = ctx.readHexInput(opts.Input)
	} else {
		data, err = ctx.readInput(opts.Input)
	}
	if err != nil {
		return err
	}

	var kind ontology_v0.Kind

	if opts.Kind != "" {
		kind, err = kindFromFlag(opts.Kind)
		if err != nil {
			return err
		}
	} else {
		id, body, err := ontology.SplitV0(data)
		if err != nil {
			return err
		}

		kind, err = ontology_v0.KindFromID(id)
		if err != nil {
			return err
		}

		ctx.Printf("version: %d\n", ontology.V0)
		data = body
	}

	ctx.Printf("kind:    %s (%d)\n", kind, kind.ID())

	diag, err := ontology.DiagnoseCompact(data)
	if err != nil {
		return err
	}

	ctx.Printf("body:    %s\n", diag)

	e, err := ontology_v0.UnmarshalCompact(kind, data)
	if err != nil {
		ctx.Log.Error("body does not decode", "kind", kind, "error", err)
		ctx.Printf("invalid: %s\n", err)
		ctx.SetExitCode(1)
		return nil
	}

	if opts.Dump {
		spew.Fdump(ctx.Stdout, e)
	}

	return nil
}
