// Package familystore keeps plot file families open between requests and
// serialises access to each one.
package familystore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/samcharles93/ptfview/pkg/ptf"
)

var (
	// ErrUnknownFamily is returned for ids that are not open in the store.
	ErrUnknownFamily = errors.New("familystore: unknown family")
	// ErrOutsideDataDir is returned by a confined store for references that
	// resolve outside its data directory.
	ErrOutsideDataDir = errors.New("familystore: path outside data directory")
)

// Opener opens the family rooted at root.
type Opener func(root string) (*ptf.Family, error)

type Config struct {
	// DataDir resolves bare family names. Falls back to $PTFVIEW_DATA_DIR.
	DataDir string
	// Confine restricts every reference to the data directory. Relative
	// paths are then taken relative to it. It has no effect without one.
	Confine bool
	// Options are passed to ptf.Open when Open is nil.
	Options []ptf.Option
	Open    Opener
}

// Info describes an open family.
type Info struct {
	ID       string    `json:"id"`
	Path     string    `json:"path"`
	OpenedAt time.Time `json:"opened_at"`
}

// Store is a set of open families keyed by id. A family is opened once per
// path; every read goes through WithFamily, which holds that family's lock
// for the whole call.
type Store struct {
	cfg    Config
	mu     sync.Mutex
	seq    uint64
	byID   map[string]*entry
	byPath map[string]*entry
}

type entry struct {
	info   Info
	seq    uint64
	mu     sync.Mutex
	family *ptf.Family
	closed bool
}

func New(cfg Config) *Store {
	if cfg.Open == nil {
		opts := cfg.Options
		cfg.Open = func(root string) (*ptf.Family, error) {
			return ptf.Open(root, opts...)
		}
	}
	return &Store{
		cfg:    cfg,
		byID:   make(map[string]*entry),
		byPath: make(map[string]*entry),
	}
}

// Open opens the family named by path, or returns the existing entry when
// that family is already open. Bare names are looked up in the data
// directory.
func (s *Store) Open(ctx context.Context, path string) (Info, error) {
	root, err := s.Resolve(path)
	if err != nil {
		return Info{}, err
	}
	if err := ctx.Err(); err != nil {
		return Info{}, err
	}

	s.mu.Lock()
	e, ok := s.byPath[root]
	s.mu.Unlock()
	if ok {
		return e.info, nil
	}

	fam, err := s.cfg.Open(root)
	if err != nil {
		return Info{}, err
	}
	newEntry := &entry{
		info: Info{
			ID:       "fam_" + uuid.NewString(),
			Path:     root,
			OpenedAt: time.Now().UTC(),
		},
		family: fam,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.byPath[root]; ok {
		_ = fam.Close()
		return existing.info, nil
	}
	s.seq++
	newEntry.seq = s.seq
	s.byPath[root] = newEntry
	s.byID[newEntry.info.ID] = newEntry
	return newEntry.info, nil
}

// Resolve turns a family reference into a cleaned root path.
func (s *Store) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("family path is required")
	}
	dir := s.dataDir()
	confined := s.cfg.Confine && dir != ""
	if LooksLikePath(ref) || filepath.IsAbs(ref) {
		if !confined {
			return filepath.Clean(ref), nil
		}
		root := ref
		if !filepath.IsAbs(root) {
			root = filepath.Join(dir, root)
		}
		return confine(dir, filepath.Clean(root))
	}
	if dir == "" {
		return filepath.Clean(ref), nil
	}
	if resolved := ResolveInDir(dir, ref); resolved != "" {
		return resolved, nil
	}
	return "", fmt.Errorf("%w: family %q not found in %s", ptf.ErrNotFound, ref, dir)
}

// confine returns root when it lies inside dir.
func confine(dir, root string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absDir, absRoot)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s is outside %s", ErrOutsideDataDir, root, dir)
	}
	return root, nil
}

func (s *Store) dataDir() string {
	if dir := strings.TrimSpace(s.cfg.DataDir); dir != "" {
		return dir
	}
	return strings.TrimSpace(os.Getenv(EnvDataDir))
}

// Available lists the family roots in the data directory.
func (s *Store) Available() ([]string, error) {
	dir := s.dataDir()
	if dir == "" {
		return nil, nil
	}
	return Discover(dir)
}

func (s *Store) Get(id string) (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return Info{}, fmt.Errorf("%w: %s", ErrUnknownFamily, id)
	}
	return e.info, nil
}

// List returns the open families, oldest first.
func (s *Store) List() []Info {
	s.mu.Lock()
	entries := make([]*entry, 0, len(s.byID))
	for _, e := range s.byID {
		entries = append(entries, e)
	}
	s.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	out := make([]Info, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// WithFamily runs fn with the family's lock held. Slices returned by the
// family's read methods are only valid inside fn.
func (s *Store) WithFamily(ctx context.Context, id string, fn func(f *ptf.Family) error) error {
	s.mu.Lock()
	e, ok := s.byID[id]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFamily, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("%w: %s", ErrUnknownFamily, id)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(e.family)
}

// Close closes the family and forgets its id.
func (s *Store) Close(id string) error {
	s.mu.Lock()
	e, ok := s.byID[id]
	if ok {
		delete(s.byID, id)
		delete(s.byPath, e.info.Path)
	}
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFamily, id)
	}
	return e.close()
}

// CloseAll closes every open family.
func (s *Store) CloseAll() error {
	s.mu.Lock()
	entries := make([]*entry, 0, len(s.byID))
	for _, e := range s.byID {
		entries = append(entries, e)
	}
	s.byID = make(map[string]*entry)
	s.byPath = make(map[string]*entry)
	s.mu.Unlock()

	var errs []error
	for _, e := range entries {
		if err := e.close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", e.info.Path, err))
		}
	}
	return errors.Join(errs...)
}

func (e *entry) close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	return e.family.Close()
}
