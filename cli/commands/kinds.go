package commands

import (
	"strconv"
	"strings"

	"miren.dev/ontology/api/ontology/ontology_v0"
	"miren.dev/ontology/pkg/ui"
)

type kindField struct {
	Name  string `json:"name"`
	Shape string `json:"shape"`
	Data  bool   `json:"data,omitempty"`
}

type kindInfo struct {
	Name      string      `json:"name"`
	ID        uint64      `json:"id"`
	CidPrefix string      `json:"cidPrefix"`
	Fields    []kindField `json:"fields"`
}

func Kinds(ctx *Context, opts struct {
	FormatOptions
	Kind string `long:"kind" description:"Only show this kind" type:"kind"`
}) error {
	kinds := ontology_v0.Kinds()

	if opts.Kind != "" {
		k, err := kindFromFlag(opts.Kind)
		if err != nil {
			return err
		}
		kinds = []ontology_v0.Kind{k}
	}

	var (
		infos []kindInfo
		rows  []ui.Row
	)

	for _, k := range kinds {
		desc := k.Descriptor()

		info := kindInfo{
			Name:      desc.Name,
			ID:        desc.ID,
			CidPrefix: "0x" + strconv.FormatUint(desc.CidPrefix, 16),
		}

		var fields []string
		for _, f := range desc.Fields {
			info.Fields = append(info.Fields, kindField{Name: f.Name, Shape: f.Shape.String(), Data: f.Data})

			s := f.Name + " " + f.Shape.String()
			if f.Data {
				s += " (data)"
			}
			fields = append(fields, s)
		}

		infos = append(infos, info)
		rows = append(rows, ui.Row{
			strconv.FormatUint(desc.ID, 10),
			desc.Name,
			info.CidPrefix,
			strings.Join(fields, ", "),
		})
	}

	if opts.IsJSON() {
		return PrintJSON(ctx.Stdout, infos)
	}

	headers := []string{"ID", "NAME", "CID PREFIX", "FIELDS"}

	table := ui.NewTable(
		ui.WithColumns(ui.AutoSizeColumns(ctx.Stdout, headers, rows)),
		ui.WithRows(rows),
	)

	ctx.Printf("%s\n", table.Render())
	return nil
}
