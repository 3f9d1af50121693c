package mmr

import "math/bits"

func BitLength64(num uint64) uint64 {
	return uint64(bits.Len64(num))
}

// AllOnes reports whether num is of the form 2^n - 1, which is the form
// taken by every node on the left most branch of a postorder tree when
// counting from 1.
func AllOnes(num uint64) bool {
	return (1<<bits.OnesCount64(num) - 1) == num
}

// topPeakSize returns the size of the largest perfect subtree which fits
// num, which is the all ones value with the same bit length as num. It is
// the first rung of the descending ladder walked by the navigation
// functions. Zero in, zero out: a shift by 64 is well defined in go, so the
// empty ladder falls out of the arithmetic.
func topPeakSize(num uint64) uint64 {
	return (uint64(1) << BitLength64(num)) - 1
}

const maxUint64 = ^uint64(0)
