package storage

import "errors"

// ErrNotFound is returned when no record is stored under a key.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when an invocation could not commit because a concurrent
// invocation wrote one of the keys it read.
var ErrConflict = errors.New("transaction conflict")

// ErrCommit is returned when the substrate failed to commit an invocation's writes.
var ErrCommit = errors.New("transaction commit failed")

// ErrTxClosed is returned when a handle is used after its invocation ended.
var ErrTxClosed = errors.New("transaction handle used outside its invocation")
