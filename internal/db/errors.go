package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/goran-ethernal/QuorumEventGate/pkg/store"
	"github.com/mattn/go-sqlite3"
)

// ClassifyError maps a SQLite failure to a store.DatabaseError.
// nil stays nil and sql.ErrNoRows is returned unchanged.
func ClassifyError(op string, err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}

	return store.NewDatabaseError(op, kindOf(err), err)
}

func kindOf(err error) store.DatabaseErrorKind {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return store.KindConnection
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return store.KindUnknown
	}

	switch sqliteErr.Code {
	case sqlite3.ErrConstraint:
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return store.KindDuplicate
		default:
			return store.KindValidation
		}
	case sqlite3.ErrMismatch, sqlite3.ErrRange, sqlite3.ErrTooBig:
		return store.KindValidation
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen, sqlite3.ErrIoErr,
		sqlite3.ErrNotADB, sqlite3.ErrCorrupt, sqlite3.ErrFull, sqlite3.ErrReadonly:
		return store.KindConnection
	default:
		return store.KindUnknown
	}
}
