package store

import (
	"errors"
	"fmt"
)

// InvalidAddressError is returned for malformed addresses, before any storage access.
type InvalidAddressError struct {
	Address     string
	BadChecksum bool
}

func (e *InvalidAddressError) Error() string {
	if e.BadChecksum {
		return fmt.Sprintf("invalid address %q: checksum mismatch", e.Address)
	}
	return fmt.Sprintf("invalid address %q", e.Address)
}

// DatabaseErrorKind classifies storage failures.
type DatabaseErrorKind string

const (
	KindValidation DatabaseErrorKind = "validation"
	KindDuplicate  DatabaseErrorKind = "duplicate"
	KindConnection DatabaseErrorKind = "connection"
	KindUnknown    DatabaseErrorKind = "unknown"
)

// DatabaseError wraps a backend failure.
type DatabaseError struct {
	Op   string
	Kind DatabaseErrorKind
	Err  error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database %s error during %s: %v", e.Kind, e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// NewDatabaseError wraps err, keeping an existing DatabaseError untouched.
func NewDatabaseError(op string, kind DatabaseErrorKind, err error) error {
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DatabaseError{Op: op, Kind: kind, Err: err}
}

// StopAlreadySetError is returned when the auto-whitelist stop block is written twice.
type StopAlreadySetError struct {
	Existing int64
}

func (e *StopAlreadySetError) Error() string {
	return fmt.Sprintf("auto-whitelist stop block already set to %d", e.Existing)
}

// IsConnectionError reports whether err is a storage connectivity failure.
func IsConnectionError(err error) bool {
	var dbErr *DatabaseError
	return errors.As(err, &dbErr) && dbErr.Kind == KindConnection
}
