package storage

import "fmt"

// VecStore is the slice backed reference implementation of Store. It holds
// the MMR hashes for both leaves and parents, and, unless constructed with
// WithoutPayloads, the original leaf payloads.
//
// The hash sequence length always equals the current MMR size. When
// payloads are retained their count equals the number of leaves appended,
// which is *not* the MMR size, callers must not assume parity between the
// two sequences.
type VecStore[T any] struct {
	data   []T
	retain bool
	hashes [][]byte
}

// NewVecStore returns an empty in memory store. Payloads are retained
// unless the WithoutPayloads option is given.
func NewVecStore[T any](opts ...Option) *VecStore[T] {
	o := newStoreOptions(opts...)

	return &VecStore[T]{retain: o.RetainPayloads}
}

// Append pushes elem and the supplied hashes. The reference implementation
// has no capacity limits and never fails.
func (s *VecStore[T]) Append(elem T, hashes [][]byte) error {
	if s.retain {
		s.data = append(s.data, elem)
	}

	for _, h := range hashes {
		value := make([]byte, len(h))
		copy(value, h)
		s.hashes = append(s.hashes, value)
	}

	return nil
}

func (s *VecStore[T]) HashAt(pos uint64) ([]byte, error) {
	if pos < 1 || pos > uint64(len(s.hashes)) {
		return nil, fmt.Errorf("%w: %d", ErrMissingHashAtIndex, pos)
	}

	// hand out a copy, written entries are immutable
	stored := s.hashes[pos-1]
	value := make([]byte, len(stored))
	copy(value, stored)

	return value, nil
}

func (s *VecStore[T]) PeakHashAt(pos uint64) ([]byte, error) {
	return s.HashAt(pos)
}

// Size returns the count of nodes stored, which is the MMR size and the
// position of the most recently appended node.
func (s *VecStore[T]) Size() uint64 {
	return uint64(len(s.hashes))
}

// Payloads returns the retained leaf payloads in append order, nil when the
// store was constructed with WithoutPayloads.
func (s *VecStore[T]) Payloads() []T {
	if !s.retain {
		return nil
	}
	return s.data
}
