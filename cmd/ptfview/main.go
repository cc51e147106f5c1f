package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "ptfview",
		Usage: "Inspect and serve TAURUS plot file families",
		Flags: rootFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			withLogging(infoCmd()),
			withLogging(statesCmd()),
			withLogging(partsCmd()),
			withLogging(boundsCmd()),
			withLogging(exportCmd()),
			withLogging(serveCmd()),
			versionCmd(),
		},
	}
}

// withLogging runs setupLogging before cmd. It hangs off each subcommand so
// that root flags given after the subcommand name are already parsed.
func withLogging(cmd *cli.Command) *cli.Command {
	cmd.Before = setupLogging
	return cmd
}
