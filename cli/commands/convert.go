package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"miren.dev/ontology/api/ontology/ontology_v0"
)

var formats = []string{"web3", "compact", "v0", "canonical", "abi"}

// needsKind reports whether a payload in format carries no kind of its own.
func needsKind(format string) bool {
	switch format {
	case "compact", "canonical", "abi":
		return true
	}
	return false
}

func decodeEntity(format string, kind ontology_v0.Kind, data []byte) (ontology_v0.Entity, error) {
	switch format {
	case "web3":
		return ontology_v0.UnmarshalWeb3(data)
	case "v0":
		return ontology_v0.DecodeV0(data)
	case "compact":
		return ontology_v0.UnmarshalCompact(kind, data)
	case "canonical":
		return ontology_v0.DecodeCanonical(kind, data)
	case "abi":
		return ontology_v0.DecodeABI(kind, data)
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(formats, ", "))
	}
}

func encodeEntity(format string, e ontology_v0.Entity) ([]byte, error) {
	switch format {
	case "web3":
		return ontology_v0.MarshalWeb3(e)
	case "v0":
		return ontology_v0.EncodeV0(e)
	case "compact":
		return ontology_v0.MarshalCompact(e)
	case "canonical":
		return ontology_v0.EncodeCanonical(e), nil
	case "abi":
		return ontology_v0.EncodeABI(e), nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of %s", format, strings.Join(formats, ", "))
	}
}

func Convert(ctx *Context, opts struct {
	From  string `long:"from" description:"Input format (web3, compact, v0, canonical, abi)" default:"web3"`
	To    string `long:"to" description:"Output format (web3, compact, v0, canonical, abi)" default:"v0"`
	Kind  string `long:"kind" description:"Kind of a compact, canonical or abi input" type:"kind"`
	Hex   bool   `long:"hex" description:"Input is hex encoded"`
	Raw   bool   `long:"raw" description:"Write binary output without hex encoding"`
	Input string `position:"0" usage:"Input file, - for stdin" type:"file"`
}) error {
	var kind ontology_v0.Kind

	if needsKind(opts.From) {
		if opts.Kind == "" {
			return fmt.Errorf("--kind is required to read %s input", opts.From)
		}

		k, err := kindFromFlag(opts.Kind)
		if err != nil {
			return err
		}
		kind = k
	}

	var (
		data []byte
		err  error
	)

	switch {
	case opts.Hex:
		data, err = ctx.readHexInput(opts.Input)
	case opts.From == "web3":
		data, err = ctx.readWeb3Input(opts.Input)
	default:
		data, err = ctx.readInput(opts.Input)
	}
	if err != nil {
		return err
	}

	e, err := decodeEntity(opts.From, kind, data)
	if err != nil {
		return err
	}

	ctx.Log.Debug("decoded entity", "kind", e.Kind(), "from", opts.From)

	out, err := encodeEntity(opts.To, e)
	if err != nil {
		return err
	}

	switch {
	case opts.To == "web3":
		ctx.Printf("%s\n", out)
	case opts.Raw:
		_, err = ctx.Stdout.Write(out)
	default:
		ctx.Printf("0x%s\n", hex.EncodeToString(out))
	}

	return err
}
