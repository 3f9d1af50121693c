// Package storage holds the append only backing stores for an MMR.
//
// A store keeps one hash value for every node, leaves and interior parents
// alike, indexed by the node's postorder position. Optionally it also keeps
// the original leaf payloads. The store performs no tree arithmetic at all,
// that lives in the mmr package; keeping the two apart lets the same
// arithmetic run against any storage medium.
//
// Stores grow strictly monotonically. Nothing is ever removed and written
// entries are never mutated, so concurrent readers of existing positions
// need no synchronisation. Writers must be serialised externally, a single
// exclusive appender is assumed throughout.
package storage

// Store is the append only capability interface consumed by callers
// maintaining an MMR.
//
// Positions count from 1, matching the mmr package, and are mapped to the
// 0 based backing index internally. Hash values are opaque byte strings,
// the store never inspects them and implementations copy them on append so
// the caller may reuse its buffers.
//
// One append call carries one leaf payload together with the leaf hash and
// the hashes of every parent the insertion completed, in position order.
// Computing those hashes is the caller's business.
type Store[T any] interface {
	// Append pushes elem (where payloads are retained at all) and appends
	// the supplied hashes in order.
	Append(elem T, hashes [][]byte) error

	// HashAt returns the hash of the node at position pos. Positions that
	// have not been written yet fail with ErrMissingHashAtIndex, never a
	// default hash.
	HashAt(pos uint64) ([]byte, error)

	// PeakHashAt returns the hash of the peak at position pos. Callers ask
	// for peaks by name when assembling roots and accumulator states; the
	// contract is otherwise identical to HashAt.
	PeakHashAt(pos uint64) ([]byte, error)
}
