package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/jsonc"
	"miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

// readInput reads path, or stdin when path is empty or "-".
func (c *Context) readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(c.Stdin)
	}

	return os.ReadFile(path)
}

// readHexInput reads a hex blob, with or without a 0x prefix.
func (c *Context) readHexInput(path string) ([]byte, error) {
	data, err := c.readInput(path)
	if err != nil {
		return nil, err
	}

	return decodeHex(data)
}

// readWeb3Input reads a Web3 JSON entity. Comments and trailing commas are
// allowed.
func (c *Context) readWeb3Input(path string) ([]byte, error) {
	data, err := c.readInput(path)
	if err != nil {
		return nil, err
	}

	return jsonc.ToJSON(data), nil
}

func decodeHex(data []byte) ([]byte, error) {
	data = bytes.TrimSpace(data)
	data = bytes.TrimPrefix(data, []byte("0x"))

	out := make([]byte, hex.DecodedLen(len(data)))
	if _, err := hex.Decode(out, data); err != nil {
		return nil, fmt.Errorf("%w: %s", ontology.ErrInvalidHex, err)
	}

	return out, nil
}

func kindFromFlag(name string) (ontology_v0.Kind, error) {
	return ontology_v0.KindFromName(name)
}
