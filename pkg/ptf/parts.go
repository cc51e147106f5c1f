package ptf

// Part is a group of elements sharing a part number. Parts have no table of
// their own in the format; membership is derived from element topology.
type Part struct {
	Index int
	// Type is the element type of the last element class that referenced
	// the part. It is only meaningful when Elements is not empty.
	Type     ElementType
	Elements []int
}

// BuildParts derives part membership from the part field of each element's
// topology. Part numbers are 1-based in the file; numbers outside
// [1, partCount] are ignored. Only shells are classified; the other element
// types are recognised and skipped.
func BuildParts(shellTopology []int32, partCount int) []Part {
	if partCount < 0 {
		partCount = 0
	}
	parts := make([]Part, partCount)
	for i := range parts {
		parts[i].Index = i
	}

	for t := FirstElementType; t <= LastElementType; t++ {
		var (
			top   []int32
			width int
		)
		switch t {
		case Shell:
			top, width = shellTopology, lenShellTopology
		default:
			continue
		}

		n := len(top) / width
		partOf := func(el int) int {
			return int(top[el*width+width-1]) - 1
		}

		counts := make([]int, partCount)
		for el := range n {
			pid := partOf(el)
			if pid >= 0 && pid < partCount {
				counts[pid]++
				parts[pid].Type = t
			}
		}

		for pid := range parts {
			if counts[pid] == 0 {
				continue
			}
			grown := make([]int, len(parts[pid].Elements), len(parts[pid].Elements)+counts[pid])
			copy(grown, parts[pid].Elements)
			parts[pid].Elements = grown
		}

		for el := range n {
			pid := partOf(el)
			if pid >= 0 && pid < partCount {
				parts[pid].Elements = append(parts[pid].Elements, el)
			}
		}
	}
	return parts
}
