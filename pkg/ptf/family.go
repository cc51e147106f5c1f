package ptf

import (
	"encoding/binary"
	"fmt"
	"os"
)

// Family is an open plot file family.
//
// Control parameters, geometry, parts and the state index are computed once
// by Open and are read-only afterwards. A Family holds one open member file
// and a single coordinate buffer shared by every ReadState call, so it is not
// safe for concurrent use: callers that share a Family must serialise
// "select member + read" as one unit.
type Family struct {
	root        string
	members     []string
	memberBase  []int64
	memberWords []int64

	order   binary.ByteOrder
	dialect Dialect
	swapped bool

	params ControlParameters
	layout Layout
	geom   *Geometry
	parts  []Part
	states []StateDescriptor

	policy StatePolicy
	log    Logger

	file    *os.File
	current int
	scratch []byte
	coords  []float32
	closed  bool
}

// Open locates the members of the family rooted at root, detects the byte
// order, parses the control block, decodes the geometry, derives parts and
// indexes every state record. Nothing is returned unless all of that
// succeeds.
func Open(root string, opts ...Option) (*Family, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	members, err := LocateMembers(root)
	if err != nil {
		return nil, err
	}
	o.log.Debug("located family members", "root", root, "members", len(members))

	f := &Family{
		root:    root,
		members: members,
		policy:  o.policy,
		log:     o.log,
		current: -1,
	}
	fail := func(err error) (*Family, error) {
		f.closeMember()
		return nil, err
	}

	if err := f.selectMember(0); err != nil {
		return fail(err)
	}

	block := make([]byte, ControlBlockWords*WordSize)
	if err := readWordsAt(f.file, root, block[:ProbeSize], 0); err != nil {
		return fail(err)
	}
	f.order, f.dialect, err = DetectByteOrder(block[:ProbeSize])
	if err != nil {
		return fail(fmt.Errorf("%s: %w", root, err))
	}
	f.swapped = needsSwap(f.order)

	if err := readWordsAt(f.file, root, block, 0); err != nil {
		return fail(err)
	}
	f.params, err = ParseControlBlock(block, f.order)
	if err != nil {
		return fail(err)
	}
	if err := f.params.validate(); err != nil {
		return fail(fmt.Errorf("%s: %w", root, err))
	}
	f.layout = DeriveLayout(f.params)
	o.log.Debug("parsed control block",
		"order", f.order.String(), "dialect", f.dialect.String(), "swap", f.swapped,
		"nodes", f.params.NodeCount, "shells", f.params.ShellCount, "parts", f.params.PartCount(),
		"geometry_words", f.layout.GeometryLength, "state_words", f.layout.StateLength)

	// Buffers are sized from the control block, so the geometry must fit in
	// member 0 before anything is allocated.
	st, err := f.file.Stat()
	if err != nil {
		return fail(ioError("stat", root, ErrIO, err))
	}
	if need := f.layout.FirstStateAddr * WordSize; need > st.Size() {
		return fail(ioError("open", root, ErrTruncatedRead,
			fmt.Errorf("geometry ends at byte %d, file has %d", need, st.Size())))
	}
	if parts := int64(f.params.PartCount()); parts > st.Size()/WordSize {
		return fail(fmt.Errorf("%w: %s: part count %d exceeds file size", ErrUnknownFormat, root, parts))
	}

	nodes := max(f.params.NodeCount, 0)
	shells := max(f.params.ShellCount, 0)
	f.scratch = make([]byte, max(nodes*lenCoord, shells*lenShellTopology)*WordSize)
	f.coords = make([]float32, nodes*lenCoord)

	f.geom, err = readGeometry(f.file, root, f.order, f.params, f.layout, f.scratch)
	if err != nil {
		return fail(err)
	}
	f.parts = BuildParts(f.geom.ShellTopology, f.params.PartCount())

	if err := f.scanStates(); err != nil {
		return fail(err)
	}
	o.log.Debug("indexed states", "states", len(f.states))

	if err := f.selectMember(0); err != nil {
		return fail(err)
	}
	return f, nil
}

// Close releases the open member file. The family cannot be read afterwards.
func (f *Family) Close() error {
	if f == nil || f.closed {
		return nil
	}
	f.closed = true
	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	f.current = -1
	return err
}

// selectMember makes member i the open file, reopening only when it differs
// from the current one.
func (f *Family) selectMember(i int) error {
	if i < 0 || i >= len(f.members) {
		return errIndex("member", i, len(f.members))
	}
	if f.file != nil && f.current == i {
		return nil
	}
	f.closeMember()
	file, err := os.Open(f.members[i])
	if err != nil {
		return ioError("open", f.members[i], ErrIO, err)
	}
	f.file = file
	f.current = i
	return nil
}

func (f *Family) closeMember() {
	if f.file != nil {
		_ = f.file.Close()
	}
	f.file = nil
	f.current = -1
}

// ReadState reads the deformed node coordinates of the state described by d.
//
// The returned slice is the family's single coordinate buffer: it is only
// valid until the next ReadState call. Read failures do not invalidate the
// index and the same descriptor may be read again later.
func (f *Family) ReadState(d StateDescriptor) ([]float32, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if !f.params.DisplacementFlag {
		return nil, ErrNoCoordinates
	}
	if err := f.selectMember(d.Member); err != nil {
		return nil, err
	}
	addr := d.Address + 1 + int64(f.params.GlobalVarCount)
	raw := f.scratch[:len(f.coords)*WordSize]
	if err := readWordsAt(f.file, f.members[d.Member], raw, addr); err != nil {
		return nil, err
	}
	decodeFloats(f.coords, raw, f.order)
	return f.coords, nil
}

// State reads the coordinates of the i'th (0-based) indexed state, applying
// the family's StatePolicy to out of range indices.
func (f *Family) State(i int) ([]float32, error) {
	d, err := f.StateDescriptor(i)
	if err != nil {
		return nil, err
	}
	return f.ReadState(d)
}

// StateBySequence reads the coordinates of the state with the given 1-based
// sequence number.
func (f *Family) StateBySequence(seq int) ([]float32, error) {
	return f.State(seq - 1)
}

// StateDescriptor returns the descriptor of the i'th (0-based) state.
func (f *Family) StateDescriptor(i int) (StateDescriptor, error) {
	n := len(f.states)
	switch {
	case i >= 0 && i < n:
		return f.states[i], nil
	case i >= n && n > 0 && f.policy == ClampStates:
		f.log.Warn("state index past last state, clamping", "index", i, "states", n)
		return f.states[n-1], nil
	default:
		return StateDescriptor{}, errIndex("state", i, n)
	}
}

func errIndex(what string, i, n any) error {
	return fmt.Errorf("%w: %s %v not in [0, %v)", ErrIndexOutOfRange, what, i, n)
}

func (f *Family) Root() string { return f.root }
func (f *Family) ByteOrder() binary.ByteOrder { return f.order }
func (f *Family) Dialect() Dialect { return f.dialect }
func (f *Family) Params() ControlParameters { return f.params }
func (f *Family) Layout() Layout { return f.layout }
func (f *Family) StatePolicy() StatePolicy { return f.policy }
func (f *Family) Geometry() *Geometry { return f.geom }
func (f *Family) NodeCount() int { return f.params.NodeCount }
func (f *Family) ShellCount() int { return f.params.ShellCount }
func (f *Family) PartCount() int { return len(f.parts) }
func (f *Family) StateCount() int { return len(f.states) }
func (f *Family) CurrentMember() int { return f.current }

// Swapped reports whether the family's byte order differs from the host's.
// Arrays handed out by the family are already decoded to host order; the
// flag tells raw-buffer consumers that a swap took place.
func (f *Family) Swapped() bool { return f.swapped }

// Members returns a copy of the member paths in member order.
func (f *Family) Members() []string {
	return append([]string(nil), f.members...)
}

// States returns a copy of the state index.
func (f *Family) States() []StateDescriptor {
	return append([]StateDescriptor(nil), f.states...)
}

// Part returns part i (0-based). The element list must not be modified.
func (f *Family) Part(i int) (Part, error) {
	if i < 0 || i >= len(f.parts) {
		return Part{}, errIndex("part", i, len(f.parts))
	}
	return f.parts[i], nil
}

// Parts returns every part. The element lists must not be modified.
func (f *Family) Parts() []Part {
	return append([]Part(nil), f.parts...)
}

// Bounds returns the bounding box of the undeformed node coordinates.
func (f *Family) Bounds() Box {
	return BoundsOf(f.geom.Coords)
}
