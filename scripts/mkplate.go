// Mkplate writes a synthetic shell plate family for trying out ptfview.
package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ptfview/internal/ptftest"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

type output struct {
	Root    string   `json:"root"`
	Members []string `json:"members"`
	Nodes   int      `json:"nodes"`
	Shells  int      `json:"shells"`
	States  int      `json:"states"`
}

func main() {
	var (
		out             string
		name            string
		order           string
		nx, ny          int64
		parts, states   int64
		statesPerMember int64
	)

	cmd := &cli.Command{
		Name:  "mkplate",
		Usage: "Write a synthetic plate family",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Value: ".", Destination: &out},
			&cli.StringFlag{Name: "name", Value: "plate.ptf", Destination: &name},
			&cli.StringFlag{Name: "order", Usage: "big or little", Value: "big", Destination: &order},
			&cli.Int64Flag{Name: "nx", Value: 8, Destination: &nx},
			&cli.Int64Flag{Name: "ny", Value: 4, Destination: &ny},
			&cli.Int64Flag{Name: "parts", Value: 2, Destination: &parts},
			&cli.Int64Flag{Name: "states", Value: 10, Destination: &states},
			&cli.Int64Flag{Name: "per-member", Usage: "states per member file (0 = one file)", Destination: &statesPerMember},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var bo binary.ByteOrder
			switch strings.ToLower(order) {
			case "big":
				bo = binary.BigEndian
			case "little":
				bo = binary.LittleEndian
			default:
				return fmt.Errorf("invalid --order %q", order)
			}
			if err := os.MkdirAll(out, 0o755); err != nil {
				return err
			}

			spec := ptftest.Plate(int(nx), int(ny), int(parts), int(states))
			if statesPerMember > 0 {
				spec = ptftest.Split(spec, int(statesPerMember))
			}
			root, err := ptftest.Write(out, name, bo, spec)
			if err != nil {
				return err
			}
			members, err := ptf.LocateMembers(root)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(output{
				Root:    root,
				Members: members,
				Nodes:   spec.Params.NodeCount,
				Shells:  spec.Params.ShellCount,
				States:  int(states),
			})
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mkplate: %v\n", err)
		os.Exit(1)
	}
}
