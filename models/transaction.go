package models

import "time"

const TransactionTable = "transactions"

const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
)

// Transaction is one borrow-to-return lifecycle for a single book copy.
// Status moves exactly once, borrowed -> returned; rows are never deleted.
type Transaction struct {
	ID         string     `gorm:"type:uuid;primaryKey" json:"id"`
	BookID     string     `gorm:"type:uuid;index;not null" json:"bookId"`
	MemberID   string     `gorm:"type:uuid;index;not null" json:"memberId"`
	BorrowDate time.Time  `gorm:"index;not null" json:"borrowDate"`
	DueDate    time.Time  `gorm:"not null" json:"dueDate"`
	ReturnDate *time.Time `json:"returnDate,omitempty"`
	Status     string     `gorm:"size:20;not null;default:'borrowed'" json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

func (Transaction) TableName() string { return TransactionTable }
