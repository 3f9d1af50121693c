package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"go.uber.org/zap"
)

const (
	storeHeadFile = "mmr.head"
	storeLogFile  = "mmr.log"

	storeVersion = uint32(1)
)

// storeHead is the CBOR framed sidecar describing the record log. The log
// itself is nothing but concatenated fixed size hash records, so the record
// size must be pinned somewhere once, and a store opened with a mismatched
// hash size must refuse to run rather than serve misaligned reads.
type storeHead struct {
	Version  uint32 `cbor:"1,keyasint"`
	HashSize uint32 `cbor:"2,keyasint"`
}

// FileStore is the disk backed implementation of Store. It keeps hashes
// only, one fixed size record per node, appended to a single log file in a
// directory of the caller's choosing. It honors the identical contract as
// VecStore: append only, 1 based positions, and the same missing index
// error for out of range reads.
//
// Reads go through ReadAt and share no file offset, so concurrent readers
// are safe. Appends assume the single exclusive writer the design calls
// for. Append and HashAt are the only operations which block on I/O.
type FileStore[T any] struct {
	dir      string
	hashSize uint64
	mmrSize  uint64
	f        *os.File
	log      *zap.Logger
}

// NewFileStore opens, or creates, the store in dir holding hashes of
// hashSize bytes. An existing store is validated against the requested
// hash size and its node count is recovered from the log length.
func NewFileStore[T any](dir string, hashSize int, opts ...Option) (*FileStore[T], error) {
	o := newStoreOptions(opts...)

	if hashSize <= 0 {
		return nil, fmt.Errorf("%w: record size %d", ErrHashSizeInvalid, hashSize)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	s := &FileStore[T]{
		dir:      dir,
		hashSize: uint64(hashSize),
		log:      o.Log,
	}

	if err := s.readHead(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, storeLogFile), os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening store log: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading store log length: %w", err)
	}
	if uint64(info.Size())%s.hashSize != 0 {
		f.Close()
		return nil, fmt.Errorf("%w: log length %d is not a whole number of %d byte records",
			ErrStoreCorrupt, info.Size(), s.hashSize)
	}

	s.f = f
	s.mmrSize = uint64(info.Size()) / s.hashSize

	s.log.Debug("filestore open",
		zap.String("dir", dir),
		zap.Uint64("hashSize", s.hashSize),
		zap.Uint64("mmrSize", s.mmrSize),
	)

	return s, nil
}

// readHead loads and validates the header sidecar, writing a fresh one for
// a new store.
func (s *FileStore[T]) readHead() error {
	name := filepath.Join(s.dir, storeHeadFile)

	data, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		data, err = cbor.Marshal(storeHead{Version: storeVersion, HashSize: uint32(s.hashSize)})
		if err != nil {
			return fmt.Errorf("encoding store head: %w", err)
		}
		if err = os.WriteFile(name, data, 0o644); err != nil {
			return fmt.Errorf("writing store head: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading store head: %w", err)
	}

	var head storeHead
	if err = cbor.Unmarshal(data, &head); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreCorrupt, err)
	}
	if head.Version != storeVersion {
		return fmt.Errorf("%w: unsupported store version %d", ErrStoreCorrupt, head.Version)
	}
	if uint64(head.HashSize) != s.hashSize {
		return fmt.Errorf("%w: store holds %d byte records, caller expects %d",
			ErrHashSizeInvalid, head.HashSize, s.hashSize)
	}

	return nil
}

// Append appends the supplied hashes to the record log. The payload elem is
// discarded, a FileStore always runs in the hashes only deployment mode.
//
// The records are written with a single write so a crash part way through
// an append is detectable as a torn tail on the next open.
func (s *FileStore[T]) Append(_ T, hashes [][]byte) error {
	if s.f == nil {
		return ErrStoreClosed
	}

	buf := make([]byte, 0, uint64(len(hashes))*s.hashSize)
	for _, h := range hashes {
		if uint64(len(h)) != s.hashSize {
			return fmt.Errorf("%w: got %d bytes, want %d", ErrHashSizeInvalid, len(h), s.hashSize)
		}
		buf = append(buf, h...)
	}

	if _, err := s.f.WriteAt(buf, int64(s.mmrSize*s.hashSize)); err != nil {
		return fmt.Errorf("appending store records: %w", err)
	}
	s.mmrSize += uint64(len(hashes))

	s.log.Debug("filestore append",
		zap.Int("hashes", len(hashes)),
		zap.Uint64("mmrSize", s.mmrSize),
	)

	return nil
}

func (s *FileStore[T]) HashAt(pos uint64) ([]byte, error) {
	if s.f == nil {
		return nil, ErrStoreClosed
	}
	if pos < 1 || pos > s.mmrSize {
		return nil, fmt.Errorf("%w: %d", ErrMissingHashAtIndex, pos)
	}

	value := make([]byte, s.hashSize)
	if _, err := s.f.ReadAt(value, int64((pos-1)*s.hashSize)); err != nil {
		return nil, fmt.Errorf("reading record %d: %w", pos, err)
	}

	return value, nil
}

func (s *FileStore[T]) PeakHashAt(pos uint64) ([]byte, error) {
	return s.HashAt(pos)
}

// Size returns the count of nodes stored.
func (s *FileStore[T]) Size() uint64 {
	return s.mmrSize
}

// Close syncs and releases the record log. The store refuses further use.
func (s *FileStore[T]) Close() error {
	if s.f == nil {
		return nil
	}

	err := s.f.Sync()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	s.f = nil

	return err
}
