package db

import (
	"errors"
	"strings"
)

// Caller-input errors: reported synchronously, never retried.
var (
	ErrBookNotFound        = errors.New("book not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNoCopiesAvailable   = errors.New("no copies available for borrowing")
	ErrMemberInactive      = errors.New("member account is not active")
	ErrDuplicateLoan       = errors.New("member has already borrowed this book")
	ErrAlreadyReturned     = errors.New("book already returned")
	ErrInvalidDueOffset    = errors.New("due offset must be between 1 and 90 days")
	ErrISBNExists          = errors.New("book with this isbn already exists")
	ErrEmailExists         = errors.New("member with this email already exists")
	ErrBookHasOpenLoans    = errors.New("cannot delete book with active borrowings")
	ErrMemberHasOpenLoans  = errors.New("cannot delete member with active borrowings")
	ErrTotalBelowOpenLoans = errors.New("total copies cannot be below the open loan count")
)

// Server-side errors.
var (
	// ErrInvariantViolation means the copy-count invariant was about to break.
	// It is always logged where raised and must surface as a 5xx, never as
	// a user input error.
	ErrInvariantViolation = errors.New("inventory invariant violation")

	// ErrTransientConflict wraps store-level serialization failures; safe to
	// retry with backoff.
	ErrTransientConflict = errors.New("transient store conflict, retry")
)

// translateError folds driver-specific failures onto the package taxonomy.
// uniqueErr is what a unique violation on the statement should mean to the
// caller (e.g. ErrDuplicateLoan for the loan insert, ErrISBNExists for books).
func translateError(err error, uniqueErr error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	// postgres 23505 / sqlite
	if strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed") {
		return uniqueErr
	}
	// postgres serialization_failure / deadlock_detected
	if strings.Contains(msg, "SQLSTATE 40001") || strings.Contains(msg, "SQLSTATE 40P01") {
		return ErrTransientConflict
	}
	return err
}
