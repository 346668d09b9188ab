package commands

import (
	"github.com/mitchellh/cli"
)

func AllCommands() map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"version": func() (cli.Command, error) {
			return Infer("version", "Print the version", Version), nil
		},

		"kinds": func() (cli.Command, error) {
			return Infer("kinds", "List the entity kinds and their fields", Kinds), nil
		},

		"cid": func() (cli.Command, error) {
			return Infer("cid", "Compute the cid of a Web3 JSON entity", Cid), nil
		},

		"parse-cid": func() (cli.Command, error) {
			return Infer("parse-cid", "Show the parts of a cid", ParseCid), nil
		},

		"convert": func() (cli.Command, error) {
			return Infer("convert", "Convert an entity between formats", Convert), nil
		},

		"decode-abi": func() (cli.Command, error) {
			return Infer("decode-abi", "Decode the data of a stored entity event", DecodeABI), nil
		},

		"inspect": func() (cli.Command, error) {
			return Infer("inspect", "Show the CBOR structure of a v0 or compact payload", Inspect), nil
		},
	}
}
