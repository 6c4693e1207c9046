package store

import "errors"

var (
	// ErrNotFound means the requested record is not in the local cache.
	ErrNotFound = errors.New("record not found in local cache")
)
