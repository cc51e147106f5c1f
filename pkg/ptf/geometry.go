package ptf

import (
	"encoding/binary"
	"io"
)

// Geometry is the undeformed mesh of a family. Only node coordinates and
// shell topology are decoded.
type Geometry struct {
	// Coords holds x, y, z for every node.
	Coords []float32
	// ShellTopology holds five words per shell: four 1-based node numbers
	// followed by the 1-based part number.
	ShellTopology []int32
}

func (g *Geometry) NodeCount() int  { return len(g.Coords) / lenCoord }
func (g *Geometry) ShellCount() int { return len(g.ShellTopology) / lenShellTopology }

// Node returns the undeformed coordinates of node i (0-based).
func (g *Geometry) Node(i int) ([3]float32, bool) {
	if i < 0 || i >= g.NodeCount() {
		return [3]float32{}, false
	}
	c := g.Coords[i*lenCoord:]
	return [3]float32{c[0], c[1], c[2]}, true
}

// ShellNodes returns the 0-based node indices of shell i.
func (g *Geometry) ShellNodes(i int) ([4]int, bool) {
	if i < 0 || i >= g.ShellCount() {
		return [4]int{}, false
	}
	top := g.ShellTopology[i*lenShellTopology:]
	return [4]int{int(top[0]) - 1, int(top[1]) - 1, int(top[2]) - 1, int(top[3]) - 1}, true
}

// ShellPart returns the 0-based part index of shell i.
func (g *Geometry) ShellPart(i int) (int, bool) {
	if i < 0 || i >= g.ShellCount() {
		return 0, false
	}
	return int(g.ShellTopology[i*lenShellTopology+lenShellTopology-1]) - 1, true
}

// readGeometry bulk-reads the node coordinates and shell topology from
// member 0. scratch must hold at least the larger of the two blocks.
func readGeometry(r io.ReadSeeker, path string, order binary.ByteOrder, p ControlParameters, l Layout, scratch []byte) (*Geometry, error) {
	g := &Geometry{
		Coords:        make([]float32, max(p.NodeCount, 0)*lenCoord),
		ShellTopology: make([]int32, max(p.ShellCount, 0)*lenShellTopology),
	}

	raw := scratch[:len(g.Coords)*WordSize]
	if err := readWordsAt(r, path, raw, l.CoordAddr); err != nil {
		return nil, err
	}
	decodeFloats(g.Coords, raw, order)

	raw = scratch[:len(g.ShellTopology)*WordSize]
	if err := readWordsAt(r, path, raw, l.ShellTopologyAddr); err != nil {
		return nil, err
	}
	decodeInts(g.ShellTopology, raw, order)
	return g, nil
}
