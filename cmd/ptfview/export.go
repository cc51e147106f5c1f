package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ptfview/internal/contour"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

type exportOut struct {
	Sequence     int       `json:"sequence"`
	Time         float32   `json:"time"`
	Coords       []float32 `json:"coords"`
	Component    string    `json:"component,omitempty"`
	Displacement []float32 `json:"displacement,omitempty"`
}

func exportCmd() *cli.Command {
	var (
		state        int64
		format       string
		displacement bool
		component    string
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Write the node coordinates of one state to stdout",
		Flags: append(familyFlags(),
			&cli.Int64Flag{
				Name:        "state",
				Aliases:     []string{"s"},
				Usage:       "1-based state sequence number",
				Required:    true,
				Destination: &state,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (csv, json)",
				Value:       "csv",
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "displacement",
				Aliases:     []string{"d"},
				Usage:       "add the displacement from the undeformed geometry",
				Destination: &displacement,
			},
			&cli.StringFlag{
				Name:        "component",
				Usage:       "displacement component (resultant, x, y, z)",
				Value:       "resultant",
				Destination: &component,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format = strings.ToLower(strings.TrimSpace(format))
			if format != "csv" && format != "json" {
				return fmt.Errorf("invalid --format %q (want csv or json)", format)
			}
			comp, err := contour.ParseComponent(strings.ToLower(strings.TrimSpace(component)))
			if err != nil {
				return fmt.Errorf("--component: %w", err)
			}
			i, err := stateIndex(state)
			if err != nil {
				return err
			}

			f, err := openFamily(ctx, cmd)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()

			out, err := exportState(f, i, displacement, comp)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			if format == "json" {
				return writeJSON(w, out)
			}
			return writeCSV(w, out)
		},
	}
}

// exportState reads state i and, when asked, its displacement component.
// The coordinates are copied out of the family's read buffer.
func exportState(f *ptf.Family, i int, withDisplacement bool, comp contour.Component) (exportOut, error) {
	d, err := f.StateDescriptor(i)
	if err != nil {
		return exportOut{}, err
	}
	coords, err := f.ReadState(d)
	if err != nil {
		return exportOut{}, err
	}
	out := exportOut{
		Sequence: d.Sequence,
		Time:     d.Time,
		Coords:   append([]float32(nil), coords...),
	}
	if withDisplacement {
		out.Component = comp.String()
		out.Displacement = contour.Displacement(nil, f.Geometry().Coords, coords, comp)
	}
	return out, nil
}

func writeCSV(w io.Writer, out exportOut) error {
	cw := csv.NewWriter(w)
	header := []string{"node", "x", "y", "z"}
	if out.Displacement != nil {
		header = append(header, "displacement_"+out.Component)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, len(header))
	ff := func(v float32) string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
	for n := 0; n*3+2 < len(out.Coords); n++ {
		row[0] = strconv.Itoa(n + 1)
		row[1], row[2], row[3] = ff(out.Coords[n*3]), ff(out.Coords[n*3+1]), ff(out.Coords[n*3+2])
		if out.Displacement != nil {
			row[4] = ff(out.Displacement[n])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
