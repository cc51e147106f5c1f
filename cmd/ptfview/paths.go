package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samcharles93/ptfview/internal/familystore"
)

// stdinIsTTY is a small seam for tests.
var stdinIsTTY = isTTY

// resolveFamilyPath picks the family root for a command. An explicit
// --family wins; a bare name is looked up in the data directory first.
// Without --family the data directory is scanned and a single root is used
// as is, while several roots need an interactive selection.
func resolveFamilyPath(familyFlag, dataDirFlag string, stdin io.Reader, stderr io.Writer) (string, error) {
	familyFlag = strings.TrimSpace(familyFlag)
	dir := strings.TrimSpace(dataDirFlag)
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(familystore.EnvDataDir))
	}

	if familyFlag != "" {
		if !familystore.LooksLikePath(familyFlag) {
			if resolved := familystore.ResolveInDir(dir, familyFlag); resolved != "" {
				return resolved, nil
			}
		}
		return filepath.Clean(familyFlag), nil
	}

	if dir == "" {
		return "", fmt.Errorf("--family or --data-dir is required unless %s is set", familystore.EnvDataDir)
	}

	roots, err := familystore.Discover(dir)
	if err != nil {
		return "", err
	}
	switch len(roots) {
	case 0:
		return "", fmt.Errorf("no family roots found in %s", dir)
	case 1:
		_, _ = fmt.Fprintf(stderr, "ptfview: using family %s\n", roots[0])
		return roots[0], nil
	default:
		if !stdinIsTTY() {
			return "", fmt.Errorf(
				"multiple families found in %s but stdin is not interactive; set --family",
				dir,
			)
		}
		return selectFamilyInteractively(dir, roots, stdin, stderr)
	}
}

func selectFamilyInteractively(dir string, roots []string, stdin io.Reader, stderr io.Writer) (string, error) {
	if len(roots) == 0 {
		return "", fmt.Errorf("no families available in %s", dir)
	}

	_, _ = fmt.Fprintf(stderr, "ptfview: select a family from %s\n", dir)
	for i, r := range roots {
		_, _ = fmt.Fprintf(stderr, "%d. %s\n", i+1, familyDisplayName(dir, r))
	}

	reader := bufio.NewReader(stdin)
	for {
		_, _ = fmt.Fprintf(stderr, "ptfview: enter selection [1-%d]: ", len(roots))
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			if errors.Is(err, io.EOF) {
				return "", errors.New("no selection provided on stdin; set --family")
			}
			continue
		}

		idx, convErr := strconv.Atoi(line)
		if convErr != nil || idx < 1 || idx > len(roots) {
			_, _ = fmt.Fprintf(stderr, "ptfview: invalid selection %q\n", line)
			if errors.Is(err, io.EOF) {
				return "", errors.New("invalid selection provided on stdin; set --family")
			}
			continue
		}
		return roots[idx-1], nil
	}
}

func familyDisplayName(dir, root string) string {
	rel, err := filepath.Rel(dir, root)
	if err != nil || rel == "." {
		return filepath.Base(root)
	}
	return rel
}

func isTTY() bool {
	st, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (st.Mode() & os.ModeCharDevice) != 0
}
