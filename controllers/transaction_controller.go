package controllers

import (
	"net/http"
	"time"

	"library-management-system/app"
)

type TransactionController struct{ *Srv }

func NewTransactionController(s *Srv) *TransactionController { return &TransactionController{Srv: s} }

type BorrowReq struct {
	BookID   string `json:"bookId" binding:"required"`
	MemberID string `json:"memberId" binding:"required"`
	// omitted or 0 means "use the configured loan period"
	DueDays *int `json:"dueDays,omitempty"`
}

func (tc *TransactionController) Borrow(c *app.Ctx) {
	var req BorrowReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Book ID and Member ID are required"})
		return
	}

	dueDays := tc.Cfg.LoanPeriodDays
	if req.DueDays != nil {
		dueDays = *req.DueDays
	}

	loan, err := tc.Repo.BorrowBook(c.Request.Context(), req.BookID, req.MemberID, dueDays)
	if err != nil {
		fail(c, err)
		return
	}
	tc.invalidateSnapshot(c)

	c.JSON(http.StatusCreated, app.H{
		"message":     "Book borrowed successfully",
		"transaction": loan,
	})
}

func (tc *TransactionController) Return(c *app.Ctx) {
	id := c.Param("id")
	loan, err := tc.Repo.ReturnBook(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	tc.invalidateSnapshot(c)

	c.JSON(http.StatusOK, app.H{
		"message":    "Book returned successfully",
		"returnDate": loan.ReturnDate,
	})
}

func (tc *TransactionController) ListTransactions(c *app.Ctx) {
	rows, err := tc.Repo.ListTransactions(c.Request.Context(), c.Query("status"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"transactions": rows})
}

func (tc *TransactionController) GetTransaction(c *app.Ctx) {
	row, err := tc.Repo.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"transaction": row})
}

// ListOverdue evaluates the overdue predicate as of "now" unless the caller
// pins a time with ?asOf=RFC3339.
func (tc *TransactionController) ListOverdue(c *app.Ctx) {
	asOf := time.Now().UTC()
	if v := c.Query("asOf"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "asOf must be RFC3339"})
			return
		}
		asOf = t.UTC()
	}

	rows, err := tc.Repo.ListOverdue(c.Request.Context(), asOf)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"overdue": rows})
}
