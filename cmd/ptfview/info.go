package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ptfview/pkg/ptf"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Describe a family: members, format, control parameters and layout",
		Flags: append(familyFlags(), jsonFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			f, err := openFamily(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			out := cmd.Root().Writer
			if asJSON {
				return writeJSON(out, f.Summary())
			}
			printInfo(out, f)
			return nil
		},
	}
}

func printInfo(w io.Writer, f *ptf.Family) {
	s := f.Summary()
	p := f.Params()
	line := func(key string, v any) {
		_, _ = fmt.Fprintf(w, "%-20s %v\n", key+":", v)
	}

	line("root", s.Root)
	for i, m := range s.Members[1:] {
		line(fmt.Sprintf("member %d", i+1), m)
	}
	line("byte order", s.ByteOrder)
	line("dialect", s.Dialect)
	line("swapped", s.Swapped)
	line("state policy", s.StatePolicy)

	_, _ = fmt.Fprintln(w)
	line("dimension", p.Dimension)
	line("nodes", p.NodeCount)
	line("solids", p.SolidCount)
	line("beams", p.BeamCount)
	line("shells", p.ShellCount)
	line("thick shells", p.ThickShellCount)
	line("parts", s.PartCount)
	line("global vars", p.GlobalVarCount)
	line("displacements", p.DisplacementFlag)
	line("velocities", p.VelocityFlag)
	line("accelerations", p.AccelFlag)
	line("temperatures", p.TemperatureFlag())
	line("deletion table", p.HasDeletionTable())

	_, _ = fmt.Fprintln(w)
	line("geometry words", s.Layout.GeometryLength)
	line("state words", s.Layout.StateLength)
	line("first state addr", s.Layout.FirstStateAddr)
	line("states", s.StateCount)
	if s.FirstTime != nil {
		line("time range", fmt.Sprintf("%g .. %g", *s.FirstTime, *s.LastTime))
	}
}
