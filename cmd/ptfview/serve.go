package main

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ptfview/internal/api"
	"github.com/samcharles93/ptfview/internal/familystore"
	"github.com/samcharles93/ptfview/internal/logger"
	"github.com/samcharles93/ptfview/internal/version"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

func serveCmd() *cli.Command {
	var (
		addr        string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve families over the REST API",
		Flags: append(familyFlags(),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)
			applyServeConfig(cmd, fileConfig, &addr, &readTimeout)
			policy, err := parseStatePolicy()
			if err != nil {
				return err
			}

			// API opens stay inside the data directory. A --family path given
			// without one makes its directory the data directory.
			root := dataDir
			if familystore.LooksLikePath(familyPath) {
				abs, err := filepath.Abs(familyPath)
				if err != nil {
					return err
				}
				familyPath = abs
				if root == "" {
					root = filepath.Dir(abs)
				}
			}
			store := familystore.New(familystore.Config{
				DataDir: root,
				Confine: true,
				Options: []ptf.Option{ptf.WithLogger(log), ptf.WithStatePolicy(policy)},
			})
			defer func() {
				if err := store.CloseAll(); err != nil {
					log.Warn("close families", "error", err)
				}
			}()
			if familyPath != "" {
				info, err := store.Open(ctx, familyPath)
				if err != nil {
					return err
				}
				log.Info("family open", "id", info.ID, "path", info.Path)
			}

			server := api.NewServer(store, log)
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			server.Register(e)
			log.Info("starting server", "version", version.String(), "address", addr, "data_dir", root, "state_policy", policy.String())
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}
