package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

func statesCmd() *cli.Command {
	var limit int64

	return &cli.Command{
		Name:  "states",
		Usage: "List the indexed states of a family",
		Flags: append(familyFlags(), jsonFlag(),
			&cli.Int64Flag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "print at most this many states (0 = all)",
				Destination: &limit,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}
			f, err := openFamily(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			states := f.States()
			if limit > 0 && int(limit) < len(states) {
				states = states[:limit]
			}

			out := cmd.Root().Writer
			if asJSON {
				return writeJSON(out, states)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "SEQ\tMEMBER\tADDRESS\tTIME")
			for _, d := range states {
				_, _ = fmt.Fprintf(tw, "%d\t%d\t%d\t%g\n", d.Sequence, d.Member, d.Address, d.Time)
			}
			return tw.Flush()
		},
	}
}
