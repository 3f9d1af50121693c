// Package mmrtesting provides deterministic test data generation and the
// caller side of the MMR append contract, for use by the storage and proof
// round trip tests.
package mmrtesting

import (
	"fmt"
	"hash"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/adoerr/arber/mmr"
	"github.com/adoerr/arber/storage"
)

type TestConfig struct {
	// We seed the RNG with Seed. It is normal to force it to some fixed
	// value so that the generated data is the same from run to run.
	Seed            int64
	TestLabelPrefix string
	// LeafSize is the generated payload length, a uuid plus padding. The
	// minimum of 16 is applied when it is left zero.
	LeafSize int
}

type TestContext struct {
	T    *testing.T
	Log  *zap.Logger
	Rand *rand.Rand
	Cfg  TestConfig
}

func NewTestContext(t *testing.T, cfg TestConfig) *TestContext {
	if cfg.LeafSize < 16 {
		cfg.LeafSize = 16
	}

	return &TestContext{
		T:    t,
		Log:  zaptest.NewLogger(t).Named(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		Cfg:  cfg,
	}
}

// GenerateLeaf returns the next deterministic leaf payload: a uuid drawn
// from the seeded RNG followed by random padding up to LeafSize.
func (c *TestContext) GenerateLeaf() []byte {
	id, err := uuid.NewRandomFromReader(c.Rand)
	if err != nil {
		c.T.Fatalf("generating leaf id: %v", err)
	}

	leaf := make([]byte, c.Cfg.LeafSize)
	copy(leaf, id[:])
	c.Rand.Read(leaf[16:])

	return leaf
}

// AppendStore is the store capability AddLeaf requires: any Store which
// also reports the current MMR size.
type AppendStore[T any] interface {
	storage.Store[T]
	Size() uint64
}

// AddLeaf plays the caller role of the append contract: given the hash of
// a new leaf it back fills every parent node the insertion completes and
// submits the leaf payload plus all new hashes to the store in a single
// append, in position order.
//
// Parents are combined as H(left || right). Returns the MMR size after the
// append, which is also the position of the last node written.
func AddLeaf[T any](store AppendStore[T], hasher hash.Hash, elem T, leafHash []byte) (uint64, error) {
	size := store.Size()

	// the leaf lands at the next free position
	pos := size + 1
	height := uint64(0)

	batch := make([][]byte, 1, 2)
	batch[0] = append([]byte(nil), leafHash...)

	// While the node at the position after the one just placed is higher in
	// the tree, the placement completed a parent whose children are both
	// already known: the left child a full subtree and a parent slot back,
	// the right child immediately before the parent.
	for mmr.NodeHeight(pos+1) > height {
		pos++

		left, err := nodeHash(store, batch, size, pos-(2<<height))
		if err != nil {
			return 0, err
		}
		right, err := nodeHash(store, batch, size, pos-1)
		if err != nil {
			return 0, err
		}

		hasher.Reset()
		hasher.Write(left)
		hasher.Write(right)
		batch = append(batch, hasher.Sum(nil))

		height++
	}

	if err := store.Append(elem, batch); err != nil {
		return 0, fmt.Errorf("appending leaf batch: %w", err)
	}

	return pos, nil
}

// AddLeaves generates and appends count deterministic leaves, hashing each
// payload with hasher. Returns the leaf positions in append order.
func (c *TestContext) AddLeaves(store AppendStore[[]byte], hasher hash.Hash, count int) []uint64 {
	var positions []uint64

	for i := 0; i < count; i++ {
		payload := c.GenerateLeaf()

		hasher.Reset()
		hasher.Write(payload)
		leafHash := hasher.Sum(nil)

		// the leaf goes at the next free position, AddLeaf returns the
		// position of the last back filled parent
		leafPos := store.Size() + 1

		if _, err := AddLeaf(store, hasher, payload, leafHash); err != nil {
			c.T.Fatalf("adding leaf at %d: %v", leafPos, err)
		}

		positions = append(positions, leafPos)
	}

	return positions
}

// nodeHash resolves a child hash either from the store or, for nodes newer
// than the stored size, from the pending batch.
func nodeHash[T any](store AppendStore[T], batch [][]byte, size, pos uint64) ([]byte, error) {
	if pos <= size {
		return store.HashAt(pos)
	}
	return batch[pos-size-1], nil
}
