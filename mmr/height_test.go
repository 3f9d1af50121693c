package mmr

import "testing"

func TestNodeHeight(t *testing.T) {
	type args struct {
		pos uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		//	3            15
		//	           /    \
		//	          /      \
		//	         /        \
		//	2       7          14
		//	      /   \       /   \
		//	1    3     6    10     13      18
		//	    / \  /  \   / \   /  \    /  \
		//	0  1   2 4   5 8   9 11   12 16   17
		{"degenerate position 0", args{0}, 0},
		{"1", args{1}, 0},
		{"2", args{2}, 0},
		{"3", args{3}, 1},
		{"4", args{4}, 0},
		{"5", args{5}, 0},
		{"6", args{6}, 1},
		{"7", args{7}, 2},
		{"8", args{8}, 0},
		{"10", args{10}, 1},
		{"15", args{15}, 3},
		{"16", args{16}, 0},
		{"18", args{18}, 1},
		{"19", args{19}, 0},
		{"28", args{28}, 1},
		{"29", args{29}, 2},
		{"30", args{30}, 3},
		{"31", args{31}, 4},
		// the all ones positions are the left most branch of the infinite
		// tree, their height is their bit length - 1
		{"left most branch", args{(1 << 40) - 1}, 39},
		{"max uint64", args{maxUint64}, 63},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NodeHeight(tt.args.pos); got != tt.want {
				t.Errorf("NodeHeight(%d) = %v, want %v", tt.args.pos, got, tt.want)
			}
		})
	}
}

func TestIsLeaf(t *testing.T) {
	leaves := map[uint64]bool{
		0: true, 1: true, 2: true, 3: false, 4: true, 5: true,
		6: false, 7: false, 8: true, 10: false, 15: false, 16: true,
		18: false, 19: true, 28: false, 29: false, 30: false, 31: false,
	}
	for pos, want := range leaves {
		if got := IsLeaf(pos); got != want {
			t.Errorf("IsLeaf(%d) = %v, want %v", pos, got, want)
		}
	}
}

// TestIsLeafMatchesHeight pins the definitional equivalence between the two
// functions over a generous range.
func TestIsLeafMatchesHeight(t *testing.T) {
	for pos := uint64(0); pos < 1<<16; pos++ {
		if IsLeaf(pos) != (NodeHeight(pos) == 0) {
			t.Fatalf("IsLeaf(%d) disagrees with NodeHeight", pos)
		}
	}
}
