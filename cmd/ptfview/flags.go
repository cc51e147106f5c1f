package main

import "github.com/urfave/cli/v3"

var (
	familyPath  string
	dataDir     string
	statePolicy string
	asJSON      bool
	logLevel    string
	logFormat   string
	debug       bool
	configFile  string
)

func rootFlags() []cli.Flag {
	return append(loggingFlags(),
		&cli.StringFlag{
			Name:        "config",
			Usage:       "path to config.yaml (default: user config dir/ptfview/config.yaml)",
			Destination: &configFile,
		},
	)
}

func familyFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "family",
			Aliases:     []string{"f"},
			Usage:       "path to the family root file",
			Destination: &familyPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"dir"},
			Usage:       "directory scanned for family roots",
			Destination: &dataDir,
		},
		&cli.StringFlag{
			Name:        "state-policy",
			Usage:       "state indices past the end (strict, clamp)",
			Value:       "strict",
			Destination: &statePolicy,
		},
	}
}

func jsonFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:        "json",
		Usage:       "print JSON instead of text",
		Destination: &asJSON,
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging (shorthand for --log-level=debug)",
			Destination: &debug,
		},
	}
}
