package mmr

// NodeHeight returns the height of the node at position pos. Leaves are at
// height 0 and height increases towards the peaks.
//
// The height is calculated as if the node is part of a fully balanced
// binary tree visited in postorder, extended as far up as necessary to
// cover pos. We treat pos - 1 as a 0 based index and iteratively reduce it
// by the size of the largest perfect subtree which still fits. Whatever
// remains when the ladder runs out is the height. See the references in the
// package documentation for the full exposition of why this works.
//
// NodeHeight(0) is 0, consistent with the degenerate position convention.
func NodeHeight(pos uint64) uint64 {
	i := pos
	if i > 0 {
		i--
	}
	if i == 0 {
		return 0
	}

	peakSize := topPeakSize(i)
	for peakSize != 0 {
		if i >= peakSize {
			i -= peakSize
		}
		peakSize >>= 1
	}

	return i
}

// IsLeaf reports whether the node at position pos is a leaf.
func IsLeaf(pos uint64) bool {
	return NodeHeight(pos) == 0
}
