package commands

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ontology"
)

const (
	classJSON   = `{"type": "Class", "annotations": ["0x010203"], "superClassExpression": []}`
	classCidHex = "018080031b20e74c92dfbce4b3219c3106b978aa99b8c0b1a34f90e60c947615752d37c210f9"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestKinds(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := RunCommand(Kinds, "--format", "json")
		require.NoError(t, err)

		var infos []kindInfo
		require.NoError(t, json.Unmarshal(out.Stdout.Bytes(), &infos))
		require.Len(t, infos, 26)

		assert.Equal(t, "Class", infos[0].Name)
		assert.Equal(t, "0xc000", infos[0].CidPrefix)
		assert.Equal(t, "NegativeAnnotationAssertion", infos[25].Name)
		assert.Equal(t, uint64(25), infos[25].ID)
	})

	t.Run("table", func(t *testing.T) {
		out, err := RunCommand(Kinds, "--kind", "Annotation")
		require.NoError(t, err)

		text := out.Stdout.String()
		assert.Contains(t, text, "Annotation")
		assert.Contains(t, text, "value scalar (data)")
		assert.NotContains(t, text, "ClassAssertion")
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := RunCommand(Kinds, "--kind", "Unicorn")
		assert.ErrorIs(t, err, ontology.ErrKindNotFound)
	})
}

func TestCid(t *testing.T) {
	out, err := RunCommandWithInput(Cid, strings.NewReader(classJSON))
	require.NoError(t, err)

	assert.Contains(t, out.Stdout.String(), "kind:   Class\n")
	assert.Contains(t, out.Stdout.String(), "hex:    0x"+classCidHex+"\n")

	t.Run("comments", func(t *testing.T) {
		in := strings.NewReader("{\n  // published fixture\n  \"type\": \"Class\",\n  \"annotations\": [\"0x010203\"],\n}\n")

		out, err := RunCommandWithInput(Cid, in)
		require.NoError(t, err)
		assert.Contains(t, out.Stdout.String(), "hex:    0x"+classCidHex+"\n")
	})

	t.Run("canonicalize", func(t *testing.T) {
		path := writeFile(t, "class.json", `{"type": "Class", "annotations": ["0x02", "0x01"]}`)

		plain, err := RunCommand(Cid, path)
		require.NoError(t, err)

		sorted, err := RunCommand(Cid, "--canonicalize", path)
		require.NoError(t, err)
		assert.NotEqual(t, plain.Stdout.String(), sorted.Stdout.String())

		c, err := ontology_v0.ToCid(&ontology_v0.Class{Annotations: [][]byte{{1}, {2}}})
		require.NoError(t, err)
		assert.Contains(t, sorted.Stdout.String(), "base32: "+c.String())
	})
}

func TestParseCid(t *testing.T) {
	out, err := RunCommand(ParseCid, "0x"+classCidHex)
	require.NoError(t, err)

	assert.Equal(t,
		"version:   1\n"+
			"codec:     0xc000 (Class)\n"+
			"multihash: keccak-256\n"+
			"digest:    0x"+classCidHex[12:]+"\n"+
			"base58:    zDtREe8d831nffRhVBXwN9wx1ft7ShHuQQroH3feAK5NdwcCBdQL\n",
		out.Stdout.String())

	_, err = RunCommand(ParseCid, "not a cid")
	assert.ErrorIs(t, err, ontology.ErrMalformedCid)

	_, err = RunCommand(ParseCid)
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	klass := &ontology_v0.Class{Annotations: [][]byte{{1, 2, 3}}}

	v0, err := ontology_v0.EncodeV0(klass)
	require.NoError(t, err)

	t.Run("web3 to v0", func(t *testing.T) {
		out, err := RunCommandWithInput(Convert, strings.NewReader(classJSON), "--from", "web3", "--to", "v0")
		require.NoError(t, err)
		assert.Equal(t, "0x"+hex.EncodeToString(v0)+"\n", out.Stdout.String())
	})

	t.Run("v0 hex to web3", func(t *testing.T) {
		in := strings.NewReader("0x" + hex.EncodeToString(v0) + "\n")

		out, err := RunCommandWithInput(Convert, in, "--from", "v0", "--to", "web3", "--hex")
		require.NoError(t, err)

		e, err := ontology_v0.UnmarshalWeb3(out.Stdout.Bytes())
		require.NoError(t, err)
		assert.Equal(t, klass, e)
	})

	t.Run("raw canonical", func(t *testing.T) {
		out, err := RunCommandWithInput(Convert, strings.NewReader(classJSON), "--to", "canonical", "--raw")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x0a, 0x03, 1, 2, 3}, out.Stdout.Bytes())
	})

	t.Run("compact needs a kind", func(t *testing.T) {
		_, err := RunCommandWithInput(Convert, strings.NewReader(""), "--from", "compact")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--kind is required")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := RunCommandWithInput(Convert, strings.NewReader(classJSON), "--to", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown format "xml"`)
	})
}

func TestDecodeABI(t *testing.T) {
	e := &ontology_v0.ClassAssertion{Subject: []byte{0xaa}, Class: []byte{0xbb, 0xcc}}
	data := hex.EncodeToString(ontology_v0.EncodeABI(e))

	for _, args := range [][]string{
		{"--kind", "ClassAssertion"},
		{"--event", "ClassAssertionStored"},
	} {
		out, err := RunCommandWithInput(DecodeABI, strings.NewReader(data), args...)
		require.NoError(t, err)

		got, err := ontology_v0.UnmarshalWeb3(out.Stdout.Bytes())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := RunCommandWithInput(DecodeABI, strings.NewReader(data))
	assert.Error(t, err)

	_, err = RunCommandWithInput(DecodeABI, strings.NewReader(data), "--kind", "Class", "--event", "ClassStored")
	assert.Error(t, err)

	_, err = RunCommandWithInput(DecodeABI, strings.NewReader("00"), "--kind", "ClassAssertion")
	var abiErr *ontology.AbiDecodeError
	assert.ErrorAs(t, err, &abiErr)
}

func TestInspect(t *testing.T) {
	v0, err := ontology_v0.EncodeV0(&ontology_v0.ObjectComplementOf{ComplementOf: []byte{1, 2, 3}})
	require.NoError(t, err)

	out, err := RunCommandWithInput(Inspect, strings.NewReader(hex.EncodeToString(v0)), "--hex")
	require.NoError(t, err)

	assert.Equal(t,
		"version: 0\n"+
			"kind:    ObjectComplementOf (3)\n"+
			"body:    {\"complementOf\": h'010203'}\n",
		out.Stdout.String())

	t.Run("dump", func(t *testing.T) {
		out, err := RunCommandWithInput(Inspect, strings.NewReader(hex.EncodeToString(v0)), "--hex", "--dump")
		require.NoError(t, err)
		assert.Contains(t, out.Stdout.String(), "ObjectComplementOf")
		assert.Contains(t, out.Stdout.String(), "ComplementOf: ([]uint8)")
	})

	t.Run("invalid body", func(t *testing.T) {
		body := []byte{0xa1, 0x61, 'x', 0x01}

		out, err := RunCommandWithInput(Inspect, strings.NewReader(hex.EncodeToString(body)), "--hex", "--kind", "Class")
		assert.Equal(t, ErrExitCode(1), err)
		assert.Contains(t, out.Stdout.String(), "body:    {\"x\": 1}\n")
		assert.Contains(t, out.Stdout.String(), "invalid: ")
	})
}

func TestVersion(t *testing.T) {
	out, err := RunCommand(Version, "--json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal(out.Stdout.Bytes(), &info))
	assert.Contains(t, info, "version")
	assert.Equal(t, float64(0), info["envelope"])
}

func TestHelp(t *testing.T) {
	cmd := Infer("convert", "Convert an entity between formats", Convert)

	help := cmd.Help()
	assert.Contains(t, help, "Usage: convert [options]")
	assert.Contains(t, help, "--from")
	assert.Contains(t, help, "--verbose")
	assert.Equal(t, "Convert an entity between formats", cmd.Synopsis())

	for name, factory := range AllCommands() {
		c, err := factory()
		require.NoError(t, err, name)
		assert.NotEmpty(t, c.Synopsis(), name)
	}
}

func TestReadOptions(t *testing.T) {
	path := writeFile(t, "opts.toml", "from = \"web3\"\nto = \"canonical\"\nraw = true\n")

	out, err := RunCommandWithInput(Convert, strings.NewReader(classJSON), "--options", path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x03, 1, 2, 3}, out.Stdout.Bytes())
}
