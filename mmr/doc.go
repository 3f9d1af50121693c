/*
Package mmr provides the position arithmetic for navigating a Merkle
Mountain Range realised as a flat, strictly append only sequence of nodes.

A Merkle Mountain Range is a forest of perfect binary merkle trees. Trees
only grow to the right and nothing is ever inserted, so the postorder
traversal (children first, left to right) of the forest is identical to the
natural append order of the nodes. Flattening the 7 node tree

	     g
	  c    f
	a   b d  e

in post order yields

	[a, b, c, d, e, f, g]
	[1, 2, 3, 4, 5, 6, 7]

Because the forest is binary, navigation from any position to its parent,
sibling or peak is simple binary arithmetic on the position value. The jump
is always some power of 2 relationship, independent of the size or height of
the forest, so the tree is never materialised. Every function in this
package is a pure, total computation over 64 bit positions. None of them
touch storage.

Positions count from 1. The degenerate position 0 always yields the empty or
zero result rather than an error, which keeps call sites computing pos - 1
simple. The functions place a burden of knowledge on the caller in the
interests of simplicity and efficiency: asking for the family of a position
that has no sibling in a particular forest yields a well defined but
meaningless answer, and the error is not detected here. The storage layer
detects it instead, when the caller asks for a hash that was never written.

This implementation follows the approach of the mimblewimble rust
implementation and its derivatives:

  - https://github.com/mimblewimble/grin/blob/0ff6763ee64e5a14e70ddd4642b99789a1648a32/core/src/core/pmmr.rs#L606
  - https://github.com/proofchains/python-proofmarshal/blob/master/proofmarshal/mmr.py
  - https://github.com/jjyr/mmr.py/blob/master/mmr/mmr.py#L145

Good general backgrounders:

  - https://docs.grin.mw/wiki/chain-state/merkle-mountain-range/
  - https://lists.linuxfoundation.org/pipermail/bitcoin-dev/2016-May/012715.html
*/
package mmr
