package ptf

import "github.com/chewxy/math32"

// Box is an axis aligned bounding box.
type Box struct {
	Min [3]float32
	Max [3]float32
}

// BoundsOf returns the box enclosing xyz triples. An empty input gives an
// empty box (Min > Max on every axis).
func BoundsOf(coords []float32) Box {
	b := Box{
		Min: [3]float32{math32.MaxFloat32, math32.MaxFloat32, math32.MaxFloat32},
		Max: [3]float32{-math32.MaxFloat32, -math32.MaxFloat32, -math32.MaxFloat32},
	}
	for i := 0; i+lenCoord <= len(coords); i += lenCoord {
		for a := range lenCoord {
			v := coords[i+a]
			b.Min[a] = math32.Min(b.Min[a], v)
			b.Max[a] = math32.Max(b.Max[a], v)
		}
	}
	return b
}

func (b Box) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

func (b Box) Centre() [3]float32 {
	if b.Empty() {
		return [3]float32{}
	}
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Diagonal is the length of the box's space diagonal.
func (b Box) Diagonal() float32 {
	if b.Empty() {
		return 0
	}
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	dz := b.Max[2] - b.Min[2]
	return math32.Sqrt(dx*dx + dy*dy + dz*dz)
}

// StateBounds returns the bounding box of the deformed coordinates of state i.
func (f *Family) StateBounds(i int) (Box, error) {
	coords, err := f.State(i)
	if err != nil {
		return Box{}, err
	}
	return BoundsOf(coords), nil
}
