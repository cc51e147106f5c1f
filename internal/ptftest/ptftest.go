// Package ptftest writes small synthetic plot file families for tests.
package ptftest

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/samcharles93/ptfview/pkg/ptf"
)

// State is one state record. Globals fill the first GlobalVarCount words
// after the time word and Coords follow them; every other word of the record
// is zero.
type State struct {
	Time    float32
	Globals []float32
	Coords  []float32
}

// Spec describes a family. Params supplies the control block; Coords and
// ShellTopology fill the geometry and are zero padded to the declared counts.
// Members[0] is written after the geometry in the root file, later entries
// become the numbered continuation files.
type Spec struct {
	Dialect       ptf.Dialect
	Params        ptf.ControlParameters
	Coords        []float32
	ShellTopology []int32
	Members       [][]State

	// NoSentinel leaves the end-of-states marker off the last member.
	NoSentinel bool
}

// Encode renders every member of s in the given byte order.
func Encode(order binary.ByteOrder, s Spec) ([][]byte, error) {
	p := s.Params
	if len(s.Members) == 0 {
		s.Members = [][]State{nil}
	}
	if len(s.Coords) > p.NodeCount*3 {
		return nil, fmt.Errorf("ptftest: %d coordinates for %d nodes", len(s.Coords), p.NodeCount)
	}
	if len(s.ShellTopology) > p.ShellCount*5 {
		return nil, fmt.Errorf("ptftest: %d topology words for %d shells", len(s.ShellTopology), p.ShellCount)
	}

	stateWords := int(ptf.DeriveLayout(p).StateLength)
	out := make([][]byte, len(s.Members))
	for m, states := range s.Members {
		var w encoder
		w.order = order
		if m == 0 {
			w.controlBlock(s.Dialect, p)
			w.floats(s.Coords, p.NodeCount*3)
			w.zeros(p.SolidCount*9 + p.ThickShellCount*9 + p.BeamCount*6)
			w.ints(s.ShellTopology, p.ShellCount*5)
			w.zeros(p.ArbitraryDataCount)
		}
		for i, st := range states {
			if n := max(len(st.Globals), p.GlobalVarCount) + len(st.Coords); n > stateWords {
				return nil, fmt.Errorf("ptftest: member %d state %d holds %d words, record has %d",
					m, i, n, stateWords)
			}
			start := len(w.buf)
			w.float(st.Time)
			w.floats(st.Globals, p.GlobalVarCount)
			w.floats(st.Coords, len(st.Coords))
			w.zeros(stateWords - (len(w.buf)-start)/ptf.WordSize + 1)
		}
		if m < len(s.Members)-1 || !s.NoSentinel {
			w.float(ptf.SentinelTime)
		}
		out[m] = w.buf
	}
	return out, nil
}

// Write encodes s and writes the members as dir/name, dir/name01, ... It
// returns the root path.
func Write(dir, name string, order binary.ByteOrder, s Spec) (string, error) {
	members, err := Encode(order, s)
	if err != nil {
		return "", err
	}
	root := filepath.Join(dir, name)
	for i, data := range members {
		if err := os.WriteFile(ptf.MemberName(root, i), data, 0o644); err != nil {
			return "", fmt.Errorf("ptftest: write member %d: %w", i, err)
		}
	}
	return root, nil
}

// MustWrite is Write for tests.
func MustWrite(t testing.TB, dir, name string, order binary.ByteOrder, s Spec) string {
	t.Helper()
	root, err := Write(dir, name, order, s)
	if err != nil {
		t.Fatalf("write family: %v", err)
	}
	return root
}

type encoder struct {
	order binary.ByteOrder
	buf   []byte
}

func (e *encoder) word(v uint32) {
	var b [ptf.WordSize]byte
	e.order.PutUint32(b[:], v)
	e.buf = append(e.buf, b[:]...)
}

func (e *encoder) int(v int) { e.word(uint32(int32(v))) }

func (e *encoder) float(v float32) { e.word(math.Float32bits(v)) }

// floats writes vs padded with zeros to n words.
func (e *encoder) floats(vs []float32, n int) {
	for _, v := range vs {
		e.float(v)
	}
	e.zeros(n - len(vs))
}

func (e *encoder) ints(vs []int32, n int) {
	for _, v := range vs {
		e.word(uint32(v))
	}
	e.zeros(n - len(vs))
}

func (e *encoder) zeros(n int) {
	for range max(n, 0) {
		e.word(0)
	}
}

func (e *encoder) controlBlock(d ptf.Dialect, p ptf.ControlParameters) {
	var words [ptf.ControlBlockWords]int
	dim, code := p.Dimension, 6
	if d == ptf.DialectTopaz {
		dim, code = 3, 1
	} else if dim < 4 || dim > 7 {
		dim = 4
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	words[15] = dim
	words[16] = p.NodeCount
	words[17] = code
	words[18] = p.GlobalVarCount
	words[19] = p.ThermalCode
	words[20] = flag(p.DisplacementFlag)
	words[21] = flag(p.VelocityFlag)
	words[22] = flag(p.AccelFlag)
	words[23] = p.SolidCount
	words[24] = p.PartBounds[ptf.Solid]
	words[27] = p.SolidVarCount
	words[28] = p.BeamCount
	words[29] = p.PartBounds[ptf.Beam]
	words[30] = p.BeamVarCount
	words[31] = p.ShellCount
	words[32] = p.PartBounds[ptf.Shell]
	words[33] = p.ShellVarCount
	words[36] = p.MaxIntCode
	words[37] = p.SPHNodeCount
	words[39] = p.ArbitraryDataCount
	words[40] = p.ThickShellCount
	words[41] = p.PartBounds[ptf.ThickShell]
	words[42] = p.ThickShellVarCount
	words[56] = flag(p.TimeStepFlag)
	for _, v := range words {
		e.int(v)
	}
}
