package mmr

// Peaks returns the positions of the mountain peaks for an MMR with mmrSize
// nodes. This is completely deterministic given a stable mmr size. If the
// size is unstable, this function returns nil.
//
// A size is unstable when the node count does not decompose exactly into a
// descending series of perfect subtrees: some sibling pair exists whose
// parent has not been appended yet. Callers treat nil as 'not ready yet',
// the next append (or several) completes the pending parents. The MMR below
// with size 5 is the canonical unstable case:
//
//	   3
//	  / \
//	 1   2   4   5
//
// The peaks are listed in ascending order of position value. The highest
// peak has the lowest position and is listed first, because the 'little'
// down range peaks can only appear to the right of the first perfect peak,
// and so on recursively. The last peak is always mmrSize itself.
//
// So given the example below, which has an mmrSize of 18, the peaks are
// [15, 18]
//
//	3            15
//	           /    \
//	          /      \
//	         /        \
//	2       7          14
//	      /   \       /   \
//	1    3     6    10     13      18
//	    / \  /  \   / \   /  \    /  \
//	0  1   2 4   5 8   9 11   12 16   17
func Peaks(mmrSize uint64) []uint64 {
	if mmrSize == 0 {
		return nil
	}

	// Greedily consume the largest perfect subtree which still fits the
	// remaining node count, recording the position of its peak. Each rung of
	// the ladder is an all ones value, ie a subtree of size 2^k - 1.
	peakSize := topPeakSize(mmrSize)
	nodesLeft := mmrSize
	prevPeak := uint64(0)

	var peaks []uint64

	for peakSize != 0 {
		if nodesLeft >= peakSize {
			peaks = append(peaks, prevPeak+peakSize)
			prevPeak += peakSize
			nodesLeft -= peakSize
		}
		peakSize >>= 1
	}

	// any nodes left over mean a sibling pair is waiting on its parent
	if nodesLeft > 0 {
		return nil
	}

	return peaks
}
