package ptf

import (
	"slices"
	"testing"
)

func shells(parts ...int32) []int32 {
	top := make([]int32, 0, len(parts)*lenShellTopology)
	for i, p := range parts {
		n := int32(i + 1)
		top = append(top, n, n+1, n+2, n+3, p)
	}
	return top
}

func TestBuildParts(t *testing.T) {
	t.Parallel()

	top := shells(1, 2, 1, 3, 3, 3, 1)
	parts := BuildParts(top, 3)
	if len(parts) != 3 {
		t.Fatalf("got %d parts, want 3", len(parts))
	}

	want := [][]int{{0, 2, 6}, {1}, {3, 4, 5}}
	total := 0
	for i, p := range parts {
		if p.Index != i {
			t.Fatalf("part %d has index %d", i, p.Index)
		}
		if p.Type != Shell {
			t.Fatalf("part %d type = %v, want shell", i, p.Type)
		}
		if !slices.Equal(p.Elements, want[i]) {
			t.Fatalf("part %d elements = %v, want %v", i, p.Elements, want[i])
		}
		total += len(p.Elements)
	}
	if total != 7 {
		t.Fatalf("parts cover %d shells, want 7", total)
	}
}

func TestBuildPartsIgnoresOutOfRangeIDs(t *testing.T) {
	t.Parallel()

	top := shells(0, 1, 4, -2, 2, 99)
	parts := BuildParts(top, 2)
	if !slices.Equal(parts[0].Elements, []int{1}) {
		t.Fatalf("part 0 elements = %v", parts[0].Elements)
	}
	if !slices.Equal(parts[1].Elements, []int{4}) {
		t.Fatalf("part 1 elements = %v", parts[1].Elements)
	}
}

func TestBuildPartsEmptyPart(t *testing.T) {
	t.Parallel()

	parts := BuildParts(shells(2, 2), 3)
	if len(parts[0].Elements) != 0 || len(parts[2].Elements) != 0 {
		t.Fatalf("parts 0 and 2 should be empty: %+v", parts)
	}
	if len(parts[1].Elements) != 2 {
		t.Fatalf("part 1 elements = %v", parts[1].Elements)
	}
}

func TestBuildPartsNoParts(t *testing.T) {
	t.Parallel()

	if parts := BuildParts(shells(1, 1), 0); len(parts) != 0 {
		t.Fatalf("got %d parts, want 0", len(parts))
	}
	if parts := BuildParts(nil, 2); len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
}
