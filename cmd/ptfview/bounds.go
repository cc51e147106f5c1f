package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ptfview/pkg/ptf"
)

type boundsOut struct {
	Sequence int        `json:"sequence,omitempty"`
	Min      [3]float32 `json:"min"`
	Max      [3]float32 `json:"max"`
	Centre   [3]float32 `json:"centre"`
	Diagonal float32    `json:"diagonal"`
}

func boundsCmd() *cli.Command {
	var state int64

	return &cli.Command{
		Name:  "bounds",
		Usage: "Print the bounding box of the undeformed mesh or of one state",
		Flags: append(familyFlags(), jsonFlag(),
			&cli.Int64Flag{
				Name:        "state",
				Aliases:     []string{"s"},
				Usage:       "1-based state sequence number (default: undeformed geometry)",
				Destination: &state,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := openFamily(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			b := f.Bounds()
			out := boundsOut{}
			if cmd.IsSet("state") {
				i, err := stateIndex(state)
				if err != nil {
					return err
				}
				if b, err = f.StateBounds(i); err != nil {
					return err
				}
				out.Sequence = i + 1
			}
			out.Min, out.Max = b.Min, b.Max
			out.Centre, out.Diagonal = b.Centre(), b.Diagonal()

			w := cmd.Root().Writer
			if asJSON {
				return writeJSON(w, out)
			}
			printBounds(w, out, b)
			return nil
		},
	}
}

func printBounds(w io.Writer, out boundsOut, b ptf.Box) {
	if b.Empty() {
		_, _ = fmt.Fprintln(w, "empty")
		return
	}
	_, _ = fmt.Fprintf(w, "min:      %g %g %g\n", out.Min[0], out.Min[1], out.Min[2])
	_, _ = fmt.Fprintf(w, "max:      %g %g %g\n", out.Max[0], out.Max[1], out.Max[2])
	_, _ = fmt.Fprintf(w, "centre:   %g %g %g\n", out.Centre[0], out.Centre[1], out.Centre[2])
	_, _ = fmt.Fprintf(w, "diagonal: %g\n", out.Diagonal)
}
