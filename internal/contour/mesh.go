package contour

import "github.com/samcharles93/ptfview/pkg/ptf"

// Vertex is one triangle corner of a shell mesh.
type Vertex struct {
	Position [3]float32 `json:"position"`
	Normal   [3]float32 `json:"normal"`
	Colour   RGB        `json:"colour"`
}

// Shader picks the colour of a shell corner from its 0-based node index.
type Shader func(node int) RGB

// Flat colours every corner c.
func Flat(c RGB) Shader {
	return func(int) RGB { return c }
}

// Nodal colours each corner by the scale band of its node's value.
func (s Scale) Nodal(values []float32) Shader {
	return func(node int) RGB {
		if node < 0 || node >= len(values) {
			return bands[0]
		}
		return s.Colour(values[node])
	}
}

// ShellMesh appends two triangles (corners 0,1,2 and 2,3,0) per listed shell
// to dst. coords holds the xyz positions used for the mesh, either the
// undeformed geometry or a state's coordinates. Shells that reference nodes
// outside coords are skipped.
func ShellMesh(dst []Vertex, g *ptf.Geometry, coords []float32, shells []int, shade Shader) []Vertex {
	nodes := len(coords) / 3
	for _, el := range shells {
		top, ok := g.ShellNodes(el)
		if !ok {
			continue
		}
		var corners [4][3]float32
		valid := true
		for k, n := range top {
			if n < 0 || n >= nodes {
				valid = false
				break
			}
			corners[k] = [3]float32{coords[n*3], coords[n*3+1], coords[n*3+2]}
		}
		if !valid {
			continue
		}
		normal := ShellNormal(corners)
		for _, k := range [6]int{0, 1, 2, 2, 3, 0} {
			dst = append(dst, Vertex{
				Position: corners[k],
				Normal:   normal,
				Colour:   shade(top[k]),
			})
		}
	}
	return dst
}
