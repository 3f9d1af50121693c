package storage

import "errors"

var (
	ErrMissingHashAtIndex = errors.New("missing hash at index")
	ErrHashSizeInvalid    = errors.New("hash length does not match the store record size")
	ErrStoreCorrupt       = errors.New("store file framing is damaged")
	ErrStoreClosed        = errors.New("store is closed")
)
