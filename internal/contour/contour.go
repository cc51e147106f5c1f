// Package contour derives display data from plot file states: nodal
// displacements, contour scales, part colours and shell meshes.
package contour

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Component selects which displacement quantity is computed per node.
type Component int

const (
	Resultant Component = iota
	X
	Y
	Z
)

func (c Component) String() string {
	switch c {
	case Resultant:
		return "resultant"
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return fmt.Sprintf("component(%d)", int(c))
	}
}

// ParseComponent accepts "r", "resultant", "x", "y" or "z".
func ParseComponent(s string) (Component, error) {
	switch s {
	case "", "r", "resultant":
		return Resultant, nil
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	default:
		return Resultant, fmt.Errorf("unknown displacement component %q", s)
	}
}

// Displacement writes the per node displacement of current relative to
// undeformed into dst, growing it as needed, and returns it. Both inputs are
// xyz triples; only the nodes present in both are used.
func Displacement(dst, undeformed, current []float32, c Component) []float32 {
	n := min(len(undeformed), len(current)) / 3
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]
	for i := range n {
		dx := current[i*3] - undeformed[i*3]
		dy := current[i*3+1] - undeformed[i*3+1]
		dz := current[i*3+2] - undeformed[i*3+2]
		switch c {
		case X:
			dst[i] = dx
		case Y:
			dst[i] = dy
		case Z:
			dst[i] = dz
		default:
			dst[i] = math32.Sqrt(dx*dx + dy*dy + dz*dz)
		}
	}
	return dst
}

// ShellNormal returns the normal of a four node shell as the cross product
// of its diagonals. It is not normalised.
func ShellNormal(p [4][3]float32) [3]float32 {
	d1 := [3]float32{p[2][0] - p[0][0], p[2][1] - p[0][1], p[2][2] - p[0][2]}
	d2 := [3]float32{p[3][0] - p[1][0], p[3][1] - p[1][1], p[3][2] - p[1][2]}
	return [3]float32{
		d1[1]*d2[2] - d1[2]*d2[1],
		d1[2]*d2[0] - d1[0]*d2[2],
		d1[0]*d2[1] - d1[1]*d2[0],
	}
}
