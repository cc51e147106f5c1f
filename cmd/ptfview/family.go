package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/ptfview/internal/logger"
	"github.com/samcharles93/ptfview/pkg/ptf"
)

func parseStatePolicy() (ptf.StatePolicy, error) {
	policy, ok := ptf.ParseStatePolicy(strings.ToLower(strings.TrimSpace(statePolicy)))
	if !ok {
		return policy, fmt.Errorf("invalid --state-policy %q (want strict or clamp)", statePolicy)
	}
	return policy, nil
}

// openFamily resolves the family named by the family flags and opens it.
// The caller closes the returned family.
func openFamily(ctx context.Context, cmd *cli.Command) (*ptf.Family, error) {
	applyFamilyConfig(cmd, fileConfig)
	policy, err := parseStatePolicy()
	if err != nil {
		return nil, err
	}
	root, err := resolveFamilyPath(familyPath, dataDir, os.Stdin, os.Stderr)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	f, err := ptf.Open(root, ptf.WithLogger(log), ptf.WithStatePolicy(policy))
	if err != nil {
		return nil, err
	}
	log.Debug("family open",
		"root", root,
		"members", len(f.Members()),
		"states", f.StateCount(),
		"byte_order", f.ByteOrder().String(),
	)
	return f, nil
}

// stateIndex converts a 1-based --state value into a state index.
func stateIndex(seq int64) (int, error) {
	if seq < 1 {
		return 0, fmt.Errorf("--state must be at least 1, got %d", seq)
	}
	return int(seq - 1), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
