package ptftest

import "github.com/samcharles93/ptfview/pkg/ptf"

// Plate returns a flat nx by ny shell plate in the z=0 plane with unit
// spacing. Shells are assigned to parts in column bands and every state
// lifts the plate by 0.5 in z per state, so state k has a resultant
// displacement of 0.5*k at every node. All states go into member 0.
func Plate(nx, ny, parts, states int) Spec {
	nodes := (nx + 1) * (ny + 1)
	s := Spec{
		Dialect: ptf.DialectDyna,
		Params: ptf.ControlParameters{
			Dimension:        4,
			NodeCount:        nodes,
			GlobalVarCount:   1,
			DisplacementFlag: true,
			ShellCount:       nx * ny,
		},
		Coords:        make([]float32, 0, nodes*3),
		ShellTopology: make([]int32, 0, nx*ny*5),
	}
	s.Params.PartBounds[ptf.Shell] = parts

	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			s.Coords = append(s.Coords, float32(i), float32(j), 0)
		}
	}
	node := func(i, j int) int32 { return int32(j*(nx+1) + i + 1) }
	for j := range ny {
		for i := range nx {
			part := int32(1 + i*parts/nx)
			s.ShellTopology = append(s.ShellTopology,
				node(i, j), node(i+1, j), node(i+1, j+1), node(i, j+1), part)
		}
	}

	run := make([]State, states)
	for k := range run {
		coords := make([]float32, len(s.Coords))
		copy(coords, s.Coords)
		for n := 2; n < len(coords); n += 3 {
			coords[n] = 0.5 * float32(k)
		}
		run[k] = State{
			Time:    0.1 * float32(k),
			Globals: []float32{float32(k)},
			Coords:  coords,
		}
	}
	s.Members = [][]State{run}
	return s
}

// Split redistributes the states of s so that each member holds at most per
// states. The geometry stays in member 0.
func Split(s Spec, per int) Spec {
	var all []State
	for _, m := range s.Members {
		all = append(all, m...)
	}
	if per <= 0 || len(all) == 0 {
		return s
	}
	var members [][]State
	for len(all) > 0 {
		n := min(per, len(all))
		members = append(members, all[:n])
		all = all[n:]
	}
	s.Members = members
	return s
}
