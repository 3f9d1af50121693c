package mmr

import "math/bits"

// LeafCount returns the number of leaves in the largest stable MMR whose
// size is <= mmrSize.
//
// The peak bitmap of a size doubles as its leaf count. This is a direct
// consequence of the binary nature of the forest: a peak of height h
// commits exactly 2^h leaves, and the bitmap weights the heights
// positionally. For an unstable mmrSize the returned count is that of the
// largest stable size below it.
func LeafCount(mmrSize uint64) uint64 {
	peakMap, _ := PeakHeightMap(mmrSize)
	return peakMap
}

// LeafIndex returns the 0 based leaf ordinal for the node at position pos.
// The caller is responsible for only providing leaf positions, interior
// positions produce the ordinal of a nearby leaf.
func LeafIndex(pos uint64) uint64 {
	i := pos
	if i > 0 {
		i--
	}
	return LeafCount(FirstMMRSize(i)) - 1
}

// MMRIndex returns the 0 based node index at which leaf leafIndex is
// stored, where leaves are numbered consecutively ignoring interior nodes.
// Inverse of LeafIndex for leaf positions.
func MMRIndex(leafIndex uint64) uint64 {
	sum := uint64(0)
	for leafIndex > 0 {
		h := bits.Len64(leafIndex)
		sum += (1 << h) - 1
		leafIndex -= 1 << (h - 1)
	}
	return sum
}

// FirstMMRSize returns the first stable size which contains the node at the
// 0 based index mmrIndex. Because appending a leaf back fills the parents
// it completes, the range of stable sizes is not continuous; this walks
// forward past any parents pending above mmrIndex.
//
// The outputs for mmrIndex 0..10 are
//
//	[1, 3, 3, 4, 7, 7, 7, 8, 10, 10, 11]
//
//	2        6
//	       /   \
//	1     2     5      9
//	     / \   / \    / \
//	0   0   1 3   4  7   8 10
func FirstMMRSize(mmrIndex uint64) uint64 {
	i := mmrIndex
	h0 := NodeHeight(i + 1)
	h1 := NodeHeight(i + 2)
	for h0 < h1 {
		i++
		h0 = h1
		h1 = NodeHeight(i + 2)
	}

	return i + 1
}
