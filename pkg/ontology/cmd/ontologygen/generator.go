package main

import (
	"bytes"
	"fmt"
	"strings"

	j "github.com/dave/jennifer/jen"
	"miren.dev/ontology/pkg/ontology"
)

const (
	top  = "miren.dev/ontology/pkg/ontology"
	wire = "google.golang.org/protobuf/encoding/protowire"
)

type gen struct {
	kind *schemaKind

	local      string
	descName   string
	structName string

	f *j.File

	fields  []j.Code
	descs   []j.Code
	canon   []j.Code
	setters []j.Code
	sorts   []j.Code
	cids    []j.Code
	web3enc []j.Code
	web3dec []j.Code
	abidec  []j.Code
	abienc  []j.Code
	normals []j.Code
	clones  j.Dict
	empties []j.Code
}

// GenerateSchema renders the Go source for every kind in sf. The output
// depends only on sf and pkg.
func GenerateSchema(sf *schemaFile, pkg string) (string, error) {
	if err := sf.validate(); err != nil {
		return "", err
	}

	jf := j.NewFile(pkg)
	jf.HeaderComment("Code generated by ontologygen. DO NOT EDIT.")

	for _, k := range sf.Kinds {
		g := gen{
			kind:       k,
			local:      toCamal(k.Name),
			descName:   toLowerCamal(k.Name) + "Desc",
			structName: toCamal(k.Name),
			f:          jf,
			clones:     j.Dict{},
		}

		for i, f := range k.Fields {
			shape, err := f.shape()
			if err != nil {
				return "", &SchemaError{Kind: k.Name, Field: f.Name, Msg: err.Error()}
			}

			g.field(i, f, shape)
		}

		g.generate()
		jf.Line()
	}

	generateKinds(jf, sf)

	var buf bytes.Buffer
	err := jf.Render(&buf)
	if err != nil {
		return "", fmt.Errorf("failed to render generated code: %w", err)
	}

	return buf.String(), nil
}

func toCamal(s string) string {
	var b bytes.Buffer

	upper := true

	for _, c := range s {
		if c == '_' {
			upper = true
			continue
		}

		if upper {
			if c >= 'a' && c <= 'z' {
				b.WriteRune(c - 32)
			} else {
				b.WriteRune(c)
			}
			upper = false
		} else {
			b.WriteRune(c)
		}
	}

	return b.String()
}

func toLowerCamal(s string) string {
	c := toCamal(s)
	if c == "" {
		return c
	}
	return strings.ToLower(c[:1]) + c[1:]
}

func shapeName(s ontology.Shape) string {
	switch s {
	case ontology.Required:
		return "Required"
	case ontology.Optional:
		return "Optional"
	default:
		return "Repeated"
	}
}

func (g *gen) field(i int, f *schemaField, shape ontology.Shape) {
	fname := toCamal(f.Name)
	num := i + 1
	self := j.Id("o").Dot(fname)

	tag := f.Name
	if shape != ontology.Required {
		tag += ",omitempty"
	}

	desc := []j.Code{
		j.Id("Name").Op(":").Lit(f.Name),
		j.Id("Shape").Op(":").Qual(top, shapeName(shape)),
	}
	if f.Data {
		desc = append(desc, j.Id("Data").Op(":").True())
	}
	g.descs = append(g.descs, j.Line().Values(desc...))

	switch shape {
	case ontology.Repeated:
		g.fields = append(g.fields, j.Id(fname).Index().Index().Byte().Tag(map[string]string{"cbor": tag}))

		g.canon = append(g.canon,
			j.Id("b").Op("=").Qual(top, "AppendRepeated").Call(j.Id("b"), j.Lit(num), self))
		g.setters = append(g.setters,
			j.Case(j.Lit(num)).Block(self.Clone().Op("=").Append(self.Clone(), j.Id("v"))))
		g.sorts = append(g.sorts, j.Qual(top, "SortRepeated").Call(self))
		if !f.Data {
			g.cids = append(g.cids, j.Id("out").Op("=").Append(j.Id("out"), self.Clone().Op("...")))
		}
		g.web3enc = append(g.web3enc, j.Id("w").Dot("Repeated").Call(j.Lit(f.Name), self))
		g.web3dec = append(g.web3dec,
			j.Case(j.Lit(f.Name)).Block(j.Return(j.True(), j.Id("v").Dot("Repeated").Call(j.Op("&").Add(self)))))
		g.abidec = append(g.abidec,
			j.If(
				j.List(self.Clone(), j.Err()).Op("=").Id("d").Dot("BytesArray").Call(j.Lit(i)),
				j.Err().Op("!=").Nil(),
			).Block(j.Return(j.Err())))
		g.abienc = append(g.abienc, j.Id("e").Dot("BytesArray").Call(self))
		g.normals = append(g.normals, self.Clone().Op("=").Qual(top, "NormalizeRepeated").Call(self))
		g.clones[j.Id(fname)] = j.Qual(top, "CloneRepeated").Call(self)
	default:
		g.fields = append(g.fields, j.Id(fname).Index().Byte().Tag(map[string]string{"cbor": tag}))

		method := "Required"
		appendFn := "AppendRequired"
		if shape == ontology.Optional {
			method = "Optional"
			appendFn = "AppendOptional"
		}

		g.canon = append(g.canon,
			j.Id("b").Op("=").Qual(top, appendFn).Call(j.Id("b"), j.Lit(num), self))
		g.setters = append(g.setters,
			j.Case(j.Lit(num)).Block(self.Clone().Op("=").Id("v")))

		if !f.Data {
			if shape == ontology.Optional {
				g.cids = append(g.cids,
					j.If(j.Len(self).Op("!=").Lit(0)).Block(
						j.Id("out").Op("=").Append(j.Id("out"), self),
					))
			} else {
				g.cids = append(g.cids, j.Id("out").Op("=").Append(j.Id("out"), self))
			}
		}

		g.web3enc = append(g.web3enc, j.Id("w").Dot(method).Call(j.Lit(f.Name), self))
		g.web3dec = append(g.web3dec,
			j.Case(j.Lit(f.Name)).Block(j.Return(j.True(), j.Id("v").Dot(method).Call(j.Op("&").Add(self)))))
		g.abidec = append(g.abidec,
			j.If(
				j.List(self.Clone(), j.Err()).Op("=").Id("d").Dot("Bytes").Call(j.Lit(i)),
				j.Err().Op("!=").Nil(),
			).Block(j.Return(j.Err())))
		g.abienc = append(g.abienc, j.Id("e").Dot("Bytes").Call(self))
		g.normals = append(g.normals, self.Clone().Op("=").Qual(top, "NormalizeBytes").Call(self))
		g.clones[j.Id(fname)] = j.Qual(top, "CloneBytes").Call(self)
	}

	g.empties = append(g.empties,
		j.If(j.Len(self).Op("!=").Lit(0)).Block(j.Return(j.False())))
}

func (g *gen) method(name string, params []j.Code, results []j.Code, body ...j.Code) {
	s := g.f.Func().Params(j.Id("o").Op("*").Id(g.structName)).Id(name).Params(params...)

	switch len(results) {
	case 0:
	case 1:
		s.Add(results[0])
	default:
		s.Parens(j.List(results...))
	}

	s.Block(body...)
	g.f.Line()
}

func (g *gen) generate() {
	k := g.kind

	g.f.Type().Id(g.structName).Struct(g.fields...)
	g.f.Line()

	g.f.Var().Id(g.descName).Op("=").Op("&").Qual(top, "KindDesc").Values(j.Dict{
		j.Id("Name"):      j.Lit(k.Name),
		j.Id("ID"):        j.Lit(int(k.KindID)),
		j.Id("CidPrefix"): j.Id(fmt.Sprintf("%#x", k.CidPrefix)),
		j.Id("Fields"):    j.Index().Qual(top, "FieldDesc").Values(append(g.descs, j.Line())...),
	})
	g.f.Line()

	bytesT := j.Index().Byte()
	manyT := j.Index().Index().Byte()

	g.method("Kind", nil, []j.Code{j.Id("Kind")},
		j.Return(j.Id("Kind"+g.local)))

	g.method("Descriptor", nil, []j.Code{j.Op("*").Qual(top, "KindDesc")},
		j.Return(j.Id(g.descName)))

	g.method("AppendCanonical", []j.Code{j.Id("b").Add(bytesT)}, []j.Code{bytesT},
		append(g.canon, j.Return(j.Id("b")))...)

	g.method("SetCanonicalField",
		[]j.Code{j.Id("num").Qual(wire, "Number"), j.Id("v").Add(bytesT)},
		[]j.Code{j.Error()},
		j.Switch(j.Id("num")).Block(
			append(g.setters, j.Default().Block(j.Return(j.Qual(top, "ErrUnknownField"))))...,
		),
		j.Return(j.Nil()),
	)

	g.method("Canonicalize", nil, nil, g.sorts...)

	g.method("CidFields", nil, []j.Code{manyT},
		append(append([]j.Code{j.Var().Id("out").Add(manyT)}, g.cids...), j.Return(j.Id("out")))...)

	g.method("MarshalWeb3", []j.Code{j.Id("w").Op("*").Qual(top, "Web3Writer")}, nil, g.web3enc...)

	g.method("UnmarshalWeb3Field",
		[]j.Code{j.Id("name").String(), j.Id("v").Qual(top, "Web3Value")},
		[]j.Code{j.Bool(), j.Error()},
		j.Switch(j.Id("name")).Block(g.web3dec...),
		j.Return(j.False(), j.Nil()),
	)

	g.method("MarshalJSON", nil, []j.Code{bytesT, j.Error()},
		j.Return(j.Qual(top, "MarshalWeb3").Call(j.Id("o"))))

	g.method("UnmarshalJSON", []j.Code{j.Id("data").Add(bytesT)}, []j.Code{j.Error()},
		j.Return(j.Qual(top, "UnmarshalWeb3").Call(j.Id("data"), j.Id("o"))))

	g.method("DecodeABI", []j.Code{j.Id("d").Op("*").Qual(top, "ABIDecoder")}, []j.Code{j.Parens(j.Err().Error())},
		append(g.abidec, j.Return(j.Nil()))...)

	g.method("EncodeABI", []j.Code{j.Id("e").Op("*").Qual(top, "ABIEncoder")}, nil, g.abienc...)

	g.method("Normalize", nil, nil, g.normals...)

	g.method("Clone", nil, []j.Code{j.Qual(top, "Record")},
		j.Return(j.Op("&").Id(g.structName).Values(g.clones)))

	g.method("Empty", nil, []j.Code{j.Bool()},
		append(g.empties, j.Return(j.True()))...)

	g.f.Func().Params(j.Id("o").Op("*").Id(g.structName)).Id("isEntity").Params().Block()
}

// generateKinds emits the Kind enum, the sealed Entity union over every
// struct and the registration of each kind with the runtime.
func generateKinds(jf *j.File, sf *schemaFile) {
	jf.Type().Id("Kind").Uint64()
	jf.Line()

	jf.Const().DefsFunc(func(b *j.Group) {
		for _, k := range sf.Kinds {
			b.Id("Kind"+toCamal(k.Name)).Id("Kind").Op("=").Lit(int(k.KindID))
		}
	})
	jf.Line()

	jf.Var().Id("allKinds").Op("=").Index().Id("Kind").ValuesFunc(func(b *j.Group) {
		for _, k := range sf.Kinds {
			b.Line().Id("Kind" + toCamal(k.Name))
		}
		b.Line()
	})
	jf.Line()

	descs := j.Dict{}
	for _, k := range sf.Kinds {
		descs[j.Id("Kind"+toCamal(k.Name))] = j.Id(toLowerCamal(k.Name) + "Desc")
	}

	jf.Var().Id("kindDescs").Op("=").Map(j.Id("Kind")).Op("*").Qual(top, "KindDesc").Values(descs)
	jf.Line()

	jf.Type().Id("Entity").Interface(
		j.Qual(top, "Record"),
		j.Id("Kind").Params().Id("Kind"),
		j.Id("isEntity").Params(),
	)
	jf.Line()

	jf.Var().DefsFunc(func(b *j.Group) {
		for _, k := range sf.Kinds {
			b.Id("_").Id("Entity").Op("=").Parens(j.Op("*").Id(toCamal(k.Name))).Parens(j.Nil())
		}
	})
	jf.Line()

	jf.Comment("Empty returns the zero value of the kind.")
	jf.Func().Params(j.Id("k").Id("Kind")).Id("Empty").Params().Id("Entity").Block(
		j.Switch(j.Id("k")).BlockFunc(func(b *j.Group) {
			for _, k := range sf.Kinds {
				b.Case(j.Id("Kind" + toCamal(k.Name))).Block(j.Return(j.Op("&").Id(toCamal(k.Name)).Values()))
			}
			b.Default().Block(
				j.Panic(j.Qual("fmt", "Sprintf").Call(j.Lit("unknown kind %d"), j.Id("k"))),
			)
		}),
	)
	jf.Line()

	jf.Func().Id("init").Params().BlockFunc(func(b *j.Group) {
		for _, k := range sf.Kinds {
			b.Qual(top, "Register").Call(
				j.Id(toLowerCamal(k.Name)+"Desc"),
				j.Func().Params().Qual(top, "Record").Block(j.Return(j.Op("&").Id(toCamal(k.Name)).Values())),
			)
		}
	})
}
