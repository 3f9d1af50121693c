package mmr

import (
	"reflect"
	"testing"
)

func TestFamily(t *testing.T) {
	type want struct {
		parent  uint64
		sibling uint64
	}
	tests := []struct {
		name string
		pos  uint64
		want want
	}{
		//	           15
		//	        /      \
		//	       7        14
		//	     /   \     /   \
		//	    3     6   10    13
		//	   / \   / \  / \   / \
		//	  1   2 4   5 8  9 11  12
		{"1 is the left child of 3", 1, want{3, 2}},
		{"2 is the right child of 3", 2, want{3, 1}},
		{"3 is the left child of 7", 3, want{7, 6}},
		{"6 is the right child of 7", 6, want{7, 3}},
		{"7 is the left child of 15", 7, want{15, 14}},
		{"14 is the right child of 15", 14, want{15, 7}},
		{"11 is the left child of 13", 11, want{13, 12}},
		{"12 is the right child of 13", 12, want{13, 11}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent, sibling := Family(tt.pos)
			if parent != tt.want.parent || sibling != tt.want.sibling {
				t.Errorf("Family(%d) = (%d, %d), want (%d, %d)",
					tt.pos, parent, sibling, tt.want.parent, tt.want.sibling)
			}
		})
	}
}

// TestFamilySymmetry checks that for every position, the sibling named by
// Family names the same parent and points back at the position.
func TestFamilySymmetry(t *testing.T) {
	for pos := uint64(1); pos < 1<<14; pos++ {
		parent, sibling := Family(pos)
		backParent, backSibling := Family(sibling)
		if backParent != parent || backSibling != pos {
			t.Fatalf("Family(%d) = (%d, %d) but Family(%d) = (%d, %d)",
				pos, parent, sibling, sibling, backParent, backSibling)
		}
		// a left child's sibling is stored immediately before the parent
		if IsLeft(pos) && (parent != pos+2*(1<<NodeHeight(pos)) || sibling != parent-1) {
			t.Fatalf("Family(%d) = (%d, %d): inconsistent left child arithmetic",
				pos, parent, sibling)
		}
	}
}

func TestFamilyPath(t *testing.T) {
	type args struct {
		pos    uint64
		endPos uint64
	}
	tests := []struct {
		name string
		args args
		want []PosPair
	}{
		{"1 up to 3", args{1, 3}, []PosPair{{3, 2}}},
		{"1 up to 7", args{1, 7}, []PosPair{{3, 2}, {7, 6}}},
		{"1 up to 15", args{1, 15}, []PosPair{{3, 2}, {7, 6}, {15, 14}}},
		{"8 up to 15", args{8, 15}, []PosPair{{10, 9}, {14, 13}, {15, 7}}},
		// paths are truncated, never failed, when the bound falls short of
		// the next parent
		{"8 bounded below its first parent", args{8, 9}, nil},
		{"1 bounded at its sibling", args{1, 2}, nil},
		{"degenerate position 0", args{0, 0}, nil},
		{"degenerate position 0 with room above", args{0, 7}, nil},
		{"pos beyond the bound", args{12, 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FamilyPath(tt.args.pos, tt.args.endPos); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FamilyPath(%d, %d) = [%s], want [%s]",
					tt.args.pos, tt.args.endPos,
					familyPathStringer(got, ", "), familyPathStringer(tt.want, ", "))
			}
		})
	}
}

// TestFamilyPathProperties sweeps positions against every stable bound and
// checks the guarantees proof builders rely on: parents strictly increase,
// each step agrees with Family of the previous parent, and the walk never
// emits a parent beyond the bound.
func TestFamilyPathProperties(t *testing.T) {
	for endPos := uint64(1); endPos < 512; endPos++ {
		if Peaks(endPos) == nil {
			continue
		}
		for pos := uint64(1); pos < endPos; pos++ {
			path := FamilyPath(pos, endPos)

			node := pos
			for i, pair := range path {
				parent, sibling := Family(node)
				if pair.Parent != parent || pair.Sibling != sibling {
					t.Fatalf("FamilyPath(%d, %d)[%d] = %s, Family(%d) = (%d, %d)",
						pos, endPos, i, pair, node, parent, sibling)
				}
				if pair.Parent <= node {
					t.Fatalf("FamilyPath(%d, %d): parents not increasing at %s", pos, endPos, pair)
				}
				if pair.Parent > endPos {
					t.Fatalf("FamilyPath(%d, %d): parent %d beyond the bound", pos, endPos, pair.Parent)
				}
				node = pair.Parent
			}
		}
	}
}

func TestFamilyPathNoOverflow(t *testing.T) {
	// bounds at or near the top of the domain must terminate without panics
	for _, endPos := range []uint64{maxUint64, maxUint64 - 1, maxUint64 >> 1} {
		for _, pos := range []uint64{0, 1, 2, maxUint64 - 2, maxUint64 - 1, maxUint64} {
			_ = FamilyPath(pos, endPos)
		}
	}
	_ = FamilyPath(maxUint64, maxUint64)
}
