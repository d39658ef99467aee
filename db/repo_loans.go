package db

import (
	"context"
	"errors"
	"time"

	"library-management-system/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultLoanPeriodDays = 14
	MinDueOffsetDays      = 1
	MaxDueOffsetDays      = 90
)

// checkEligibility runs the borrow preconditions in order, short-circuiting
// on the first failure. Pure reads on the transaction snapshot; the caller
// holds the book row lock so check-then-act cannot race the decrement.
func checkEligibility(tx *gorm.DB, book *models.Book, memberID string) error {
	if book.AvailableCopies <= 0 {
		return ErrNoCopiesAvailable
	}

	var member models.Member
	if err := tx.First(&member, "id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	if member.Status != models.MemberActive {
		return ErrMemberInactive
	}

	var n int64
	if err := tx.Model(&models.Transaction{}).
		Where("book_id = ? AND member_id = ? AND status = ?", book.ID, memberID, models.StatusBorrowed).
		Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrDuplicateLoan
	}
	return nil
}

// BorrowBook creates a loan: lock the book row, run the eligibility guards,
// insert the transaction, take one copy off the shelf. All of it commits or
// none of it does. dueOffsetDays must already be resolved by the caller
// (handlers substitute the configured default when the client omits it).
func (r *Repo) BorrowBook(ctx context.Context, bookID, memberID string, dueOffsetDays int) (*models.Transaction, error) {
	if dueOffsetDays < MinDueOffsetDays || dueOffsetDays > MaxDueOffsetDays {
		return nil, ErrInvalidDueOffset
	}

	unlock := r.locks.lock(bookID)
	defer unlock()

	var loan *models.Transaction
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if r.supportsRowLocks() {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var book models.Book
		if err := q.First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		if err := checkEligibility(tx, &book, memberID); err != nil {
			return err
		}

		now := time.Now().UTC()
		l := &models.Transaction{
			ID:         uuid.NewString(),
			BookID:     book.ID,
			MemberID:   memberID,
			BorrowDate: now,
			DueDate:    now.Add(time.Duration(dueOffsetDays) * 24 * time.Hour),
			Status:     models.StatusBorrowed,
		}
		// the partial unique index backstops the duplicate check under
		// concurrency
		if err := tx.Create(l).Error; err != nil {
			return translateError(err, ErrDuplicateLoan)
		}

		if err := decrementAvailable(tx, book.ID); err != nil {
			return err
		}
		loan = l
		return nil
	})
	if err != nil {
		return nil, translateError(err, ErrDuplicateLoan)
	}
	return loan, nil
}

// ReturnBook closes a loan: status flips borrowed -> returned exactly once,
// and the copy goes back on the shelf in the same unit of work. Returning an
// already-returned loan is rejected, which also makes the increment
// double-apply-safe.
func (r *Repo) ReturnBook(ctx context.Context, transactionID string) (*models.Transaction, error) {
	var loan models.Transaction
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if r.supportsRowLocks() {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := q.First(&loan, "id = ?", transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}
		if loan.Status == models.StatusReturned {
			return ErrAlreadyReturned
		}

		now := time.Now().UTC()
		loan.ReturnDate = &now
		loan.Status = models.StatusReturned
		if err := tx.Model(&models.Transaction{}).
			Where("id = ?", loan.ID).
			Updates(map[string]any{
				"return_date": now,
				"status":      models.StatusReturned,
			}).Error; err != nil {
			return err
		}

		return incrementAvailable(tx, loan.BookID)
	})
	if err != nil {
		return nil, translateError(err, err)
	}
	return &loan, nil
}
