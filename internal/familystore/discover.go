package familystore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// EnvDataDir names the directory scanned for family roots when no explicit
// family or data directory is given.
const EnvDataDir = "PTFVIEW_DATA_DIR"

const rootSuffix = ".ptf"

// IsRootName reports whether name looks like the root member of a family.
// Continuation members carry a numeric suffix and never match.
func IsRootName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, rootSuffix) || lower == "d3plot"
}

// Discover lists the family roots directly inside dir, sorted by path.
func Discover(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("data directory is empty")
	}
	st, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("data path is not a directory: %s", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	roots := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() || !IsRootName(e.Name()) {
			continue
		}
		roots = append(roots, filepath.Join(dir, e.Name()))
	}
	sort.Strings(roots)
	return roots, nil
}

// LooksLikePath reports whether v names a file rather than a bare family
// name to be looked up in the data directory.
func LooksLikePath(v string) bool {
	return strings.ContainsRune(v, filepath.Separator) || strings.ContainsRune(v, '/')
}

// ResolveInDir finds name inside dir, trying the bare name and then name
// with the .ptf suffix. It returns "" when neither exists.
func ResolveInDir(dir, name string) string {
	if dir == "" || name == "" {
		return ""
	}
	cand := filepath.Join(dir, name)
	if fileExists(cand) {
		return cand
	}
	if !strings.HasSuffix(strings.ToLower(name), rootSuffix) {
		cand = filepath.Join(dir, name+rootSuffix)
		if fileExists(cand) {
			return cand
		}
	}
	return ""
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
