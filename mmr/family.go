package mmr

// PosPair names a parent position together with the sibling position whose
// hash is needed in order to compute that parent.
type PosPair struct {
	Parent  uint64
	Sibling uint64
}

// Family returns the positions of the parent and the sibling for the node
// at position pos. The sibling is whichever of the two children is not pos.
//
// A right child is stored immediately before its parent, so its parent is
// at pos + 1 and its sibling is a full subtree and a parent slot back down
// range. For a left child both parent and sibling lie up range, with the
// sibling stored immediately before the parent.
//
// Note that the forest size plays no part here. For a pos whose parent has
// not been appended yet the result is arithmetically well formed but names
// nodes that do not exist yet, see the package documentation remark on the
// burden of knowledge.
func Family(pos uint64) (uint64, uint64) {
	i := pos
	if i > 0 {
		i--
	}
	peakMap, height := PeakHeightMap(i)
	peak := uint64(1) << height

	if (peakMap & peak) != 0 {
		return pos + 1, pos + 1 - 2*peak
	}

	return pos + 2*peak, pos + 2*peak - 1
}

// FamilyPath returns the (parent, sibling) pairs on the path from the node
// at position pos up to, and including, the peak which subsumes it in the
// MMR bounded by endPos. The siblings on the path are exactly the hashes
// needed to prove membership of pos, and endPos pins the proof to a
// historical mmr size, supporting proofs against past roots.
//
// Given the tree below, FamilyPath(8, 15) is [(10, 9), (14, 13), (15, 7)]
//
//	           15
//	        /      \
//	       7        14
//	     /   \     /   \
//	    3     6   10    13
//	   / \   / \  / \   / \
//	  1   2 4   5 8  9 11  12
//
// The moment a candidate parent would exceed endPos the walk stops and the
// path accumulated so far is returned, without that pair. Degenerate inputs
// (pos == 0, or pos >= endPos) yield an empty path.
func FamilyPath(pos, endPos uint64) []PosPair {
	if pos == 0 {
		return nil
	}

	peakMap, height := PeakHeightMap(pos - 1)
	parentHeight := uint64(1) << height
	node := pos

	var path []PosPair

	for node < endPos {
		// Once the parent offset saturates the 64 bit domain no further
		// parent can exist below any endPos, stop rather than wrap.
		if parentHeight == 0 || parentHeight > maxUint64>>1 {
			break
		}

		var sibling uint64

		if (peakMap & parentHeight) != 0 {
			node += 1
			sibling = node - 2*parentHeight
		} else {
			if node > maxUint64-2*parentHeight {
				break
			}
			node += 2 * parentHeight
			sibling = node - 1
		}

		if node > endPos {
			break
		}

		path = append(path, PosPair{Parent: node, Sibling: sibling})
		parentHeight <<= 1
	}

	return path
}
