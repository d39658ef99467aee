package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"library-management-system/app"
	"library-management-system/controllers"
	"library-management-system/db"
	"library-management-system/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) (*gin.Engine, *db.Repo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	g, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := g.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(g))

	repo := db.NewRepo(g)
	s := &controllers.Srv{
		Repo: repo,
		Cfg:  app.Config{LoanPeriodDays: db.DefaultLoanPeriodDays},
	}
	txnCtl := controllers.NewTransactionController(s)

	r := gin.New()
	r.POST("/api/transactions/borrow", txnCtl.Borrow)
	r.POST("/api/transactions/:id/return", txnCtl.Return)
	r.GET("/api/transactions", txnCtl.ListTransactions)
	r.GET("/api/transactions/:id", txnCtl.GetTransaction)
	r.GET("/api/transactions/overdue", txnCtl.ListOverdue)
	return r, repo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func Test_BorrowReturn_OverHTTP(t *testing.T) {
	r, repo := newTestRouter(t)
	ctx := context.Background()

	book := &models.Book{
		ID: uuid.NewString(), Title: "HTTP Book", Author: "A", ISBN: "isbn-" + uuid.NewString(), TotalCopies: 1,
	}
	require.NoError(t, repo.CreateBook(ctx, book))
	member := &models.Member{ID: uuid.NewString(), Name: "Caller", Email: uuid.NewString() + "@example.com"}
	require.NoError(t, repo.CreateMember(ctx, member))

	// borrow
	w := doJSON(t, r, http.MethodPost, "/api/transactions/borrow", gin.H{
		"bookId":   book.ID,
		"memberId": member.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Transaction models.Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.StatusBorrowed, created.Transaction.Status)

	// duplicate of the same pair
	w = doJSON(t, r, http.MethodPost, "/api/transactions/borrow", gin.H{
		"bookId":   book.ID,
		"memberId": member.ID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// return
	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/transactions/%s/return", created.Transaction.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// returning twice
	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/api/transactions/%s/return", created.Transaction.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	b, err := repo.FindBookByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.AvailableCopies)
}

func Test_Borrow_ErrorStatuses(t *testing.T) {
	r, repo := newTestRouter(t)
	ctx := context.Background()

	book := &models.Book{
		ID: uuid.NewString(), Title: "Status Book", Author: "A", ISBN: "isbn-" + uuid.NewString(), TotalCopies: 1,
	}
	require.NoError(t, repo.CreateBook(ctx, book))
	member := &models.Member{ID: uuid.NewString(), Name: "Caller", Email: uuid.NewString() + "@example.com"}
	require.NoError(t, repo.CreateMember(ctx, member))

	tests := []struct {
		name string
		body gin.H
		want int
	}{
		{
			name: "missing_fields",
			body: gin.H{"bookId": book.ID},
			want: http.StatusBadRequest,
		},
		{
			name: "unknown_book",
			body: gin.H{"bookId": uuid.NewString(), "memberId": member.ID},
			want: http.StatusNotFound,
		},
		{
			name: "unknown_member",
			body: gin.H{"bookId": book.ID, "memberId": uuid.NewString()},
			want: http.StatusNotFound,
		},
		{
			name: "invalid_due_offset",
			body: gin.H{"bookId": book.ID, "memberId": member.ID, "dueDays": 91},
			want: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/transactions/borrow", tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	// nothing above should have touched the shelf
	b, err := repo.FindBookByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.AvailableCopies)
}

func Test_GetTransaction_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/transactions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
