package mmr

// PeakHeightMap returns a bitmap of the peak heights for the MMR as it
// stood *before* the node at 0 based index i was added, together with the
// height at which node i itself lands. A set bit h in the map means a
// completed peak of height h exists to the left of i.
//
// For example PeakHeightMap(4) returns (0b11, 0), as the MMR at that point
// looked like:
//
//	   2
//	  / \
//	 0   1   3
//
// There are peaks at heights 0 and 1, and the new node lands at height 0.
//
// The walk is the same descending perfect subtree ladder as NodeHeight,
// additionally shifting a bit into the map at every rung and setting it
// when the rung was consumed. Every routine which needs to know both which
// peaks already exist and where a node sits is built on this.
//
// PeakHeightMap(0) is (0, 0). The full uint64 range is supported, including
// MaxUint64: the ladder for i == 0 is empty and terminates immediately.
func PeakHeightMap(i uint64) (uint64, uint64) {
	if i == 0 {
		return 0, 0
	}

	peakSize := topPeakSize(i)
	peakMap := uint64(0)

	for peakSize != 0 {
		peakMap <<= 1
		if i >= peakSize {
			i -= peakSize
			peakMap |= 1
		}
		peakSize >>= 1
	}

	return peakMap, i
}

// IsLeft reports whether the node at position pos is the left child of its
// parent. A node is a left child exactly when no completed peak of its own
// height exists to its left, so its sibling is yet to be appended. When the
// peak bit is set the left sibling was already completed and pos is the
// right child.
func IsLeft(pos uint64) bool {
	i := pos
	if i > 0 {
		i--
	}
	peakMap, height := PeakHeightMap(i)
	peak := uint64(1) << height

	return (peakMap & peak) == 0
}
