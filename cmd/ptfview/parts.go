package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

type partRow struct {
	Index        int    `json:"index"`
	Type         string `json:"type,omitempty"`
	ElementCount int    `json:"element_count"`
}

func partsCmd() *cli.Command {
	return &cli.Command{
		Name:  "parts",
		Usage: "List parts derived from element topology",
		Flags: append(familyFlags(), jsonFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := openFamily(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			parts := f.Parts()
			rows := make([]partRow, 0, len(parts))
			for _, p := range parts {
				row := partRow{Index: p.Index, ElementCount: len(p.Elements)}
				if len(p.Elements) > 0 {
					row.Type = p.Type.String()
				}
				rows = append(rows, row)
			}

			out := cmd.Root().Writer
			if asJSON {
				return writeJSON(out, rows)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "PART\tTYPE\tELEMENTS")
			for _, r := range rows {
				typ := r.Type
				if typ == "" {
					typ = "-"
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\n", r.Index+1, typ, r.ElementCount)
			}
			return tw.Flush()
		},
	}
}
