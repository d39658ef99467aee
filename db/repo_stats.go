package db

import (
	"context"
	"time"

	"library-management-system/models"

	"gorm.io/gorm"
)

// LoanRow is a transaction joined with book and member display fields.
type LoanRow struct {
	ID          string     `json:"id"`
	BookID      string     `json:"bookId"`
	MemberID    string     `json:"memberId"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        string     `json:"isbn"`
	MemberName  string     `json:"memberName"`
	MemberEmail string     `json:"memberEmail"`
	BorrowDate  time.Time  `json:"borrowDate"`
	DueDate     time.Time  `json:"dueDate"`
	ReturnDate  *time.Time `json:"returnDate,omitempty"`
	Status      string     `json:"status"`
}

type PopularBook struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	Category        string `json:"category,omitempty"`
	TotalCopies     int    `json:"totalCopies"`
	AvailableCopies int    `json:"availableCopies"`
	BorrowCount     int64  `json:"borrowCount"`
}

type Snapshot struct {
	TotalBooks         int64         `json:"totalBooks"`
	TotalCopies        int64         `json:"totalCopies"`
	ActiveMembers      int64         `json:"activeMembers"`
	BorrowedBooks      int64         `json:"borrowedBooks"`
	OverdueBooks       int64         `json:"overdueBooks"`
	AvailableBooks     int64         `json:"availableBooks"`
	RecentTransactions []LoanRow     `json:"recentTransactions"`
	PopularBooks       []PopularBook `json:"popularBooks"`
}

const loanRowSelect = `
	t.id, t.book_id, t.member_id,
	b.title, b.author, b.isbn,
	m.name AS member_name, m.email AS member_email,
	t.borrow_date, t.due_date, t.return_date, t.status
`

func loanRowQuery(tx *gorm.DB) *gorm.DB {
	return tx.
		Table(models.TransactionTable + " t").
		Select(loanRowSelect).
		Joins("JOIN " + models.BookTable + " b ON b.id = t.book_id").
		Joins("JOIN " + models.MemberTable + " m ON m.id = t.member_id")
}

// ListOverdue returns open loans whose due date has passed as of the given
// time, earliest-overdue first.
func (r *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]LoanRow, error) {
	var rows []LoanRow
	err := loanRowQuery(r.DB.WithContext(ctx)).
		Where("t.status = ? AND t.due_date < ?", models.StatusBorrowed, asOf.UTC()).
		Order("t.due_date ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *Repo) ListTransactions(ctx context.Context, status string) ([]LoanRow, error) {
	q := loanRowQuery(r.DB.WithContext(ctx))
	if status != "" {
		q = q.Where("t.status = ?", status)
	}
	var rows []LoanRow
	err := q.Order("t.borrow_date DESC").Scan(&rows).Error
	return rows, err
}

func (r *Repo) GetTransaction(ctx context.Context, id string) (*LoanRow, error) {
	var rows []LoanRow
	err := loanRowQuery(r.DB.WithContext(ctx)).
		Where("t.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrTransactionNotFound
	}
	return &rows[0], nil
}

// DashboardSnapshot computes every dashboard figure from one read
// transaction so the numbers are mutually consistent.
func (r *Repo) DashboardSnapshot(ctx context.Context, asOf time.Time) (*Snapshot, error) {
	var s Snapshot
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Book{}).Count(&s.TotalBooks).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Book{}).
			Select("COALESCE(SUM(total_copies), 0)").
			Scan(&s.TotalCopies).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Book{}).
			Select("COALESCE(SUM(available_copies), 0)").
			Scan(&s.AvailableBooks).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Member{}).
			Where("status = ?", models.MemberActive).
			Count(&s.ActiveMembers).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Transaction{}).
			Where("status = ?", models.StatusBorrowed).
			Count(&s.BorrowedBooks).Error; err != nil {
			return err
		}
		// same predicate as ListOverdue
		if err := tx.Model(&models.Transaction{}).
			Where("status = ? AND due_date < ?", models.StatusBorrowed, asOf.UTC()).
			Count(&s.OverdueBooks).Error; err != nil {
			return err
		}

		if err := loanRowQuery(tx).
			Order("t.borrow_date DESC").
			Limit(5).
			Scan(&s.RecentTransactions).Error; err != nil {
			return err
		}

		// historical borrow count; id tie-break keeps the ranking stable
		return tx.
			Table(models.BookTable+" b").
			Select(`b.id, b.title, b.author, b.isbn, b.category,
				b.total_copies, b.available_copies, COUNT(t.id) AS borrow_count`).
			Joins("LEFT JOIN "+models.TransactionTable+" t ON t.book_id = b.id").
			Group("b.id").
			Order("borrow_count DESC, b.id ASC").
			Limit(5).
			Scan(&s.PopularBooks).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
