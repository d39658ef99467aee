package db

import (
	"log"

	"library-management-system/models"

	"gorm.io/gorm"
)

// Inventory ledger: the only writers of available_copies. Both run on the
// caller's transaction handle so the count moves in the same unit of work as
// the loan row. The WHERE guards keep the count inside [0, total_copies] even
// if a caller slips through the eligibility gate; zero rows affected means
// the invariant was about to break and the whole unit of work must abort.

func decrementAvailable(tx *gorm.DB, bookID string) error {
	res := tx.Model(&models.Book{}).
		Where("id = ? AND available_copies > 0", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("ledger: decrement blocked for book %s, available_copies would go negative", bookID)
		return ErrInvariantViolation
	}
	return nil
}

func incrementAvailable(tx *gorm.DB, bookID string) error {
	res := tx.Model(&models.Book{}).
		Where("id = ? AND available_copies < total_copies", bookID).
		UpdateColumn("available_copies", gorm.Expr("available_copies + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		log.Printf("ledger: increment blocked for book %s, available_copies would exceed total_copies", bookID)
		return ErrInvariantViolation
	}
	return nil
}
