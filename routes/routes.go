package routes

import (
	"library-management-system/app"
	"library-management-system/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	bookCtl := controllers.NewBookController(s)
	memberCtl := controllers.NewMemberController(s)
	txnCtl := controllers.NewTransactionController(s)
	statsCtl := controllers.NewStatsController(s)

	books := r.Group("/api/books")
	{
		books.GET("", bookCtl.ListBooks) // ?search=&category=
		books.GET("/categories", bookCtl.ListCategories)
		books.GET("/:id", bookCtl.GetBook)
		books.POST("", bookCtl.AddBook)
		books.PUT("/:id", bookCtl.UpdateBook)
		books.DELETE("/:id", bookCtl.DeleteBook)
	}

	members := r.Group("/api/members")
	{
		members.GET("", memberCtl.ListMembers) // ?search=&status=
		members.GET("/:id", memberCtl.GetMember)
		members.POST("", memberCtl.AddMember)
		members.PUT("/:id", memberCtl.UpdateMember)
		members.DELETE("/:id", memberCtl.DeleteMember)
	}

	txns := r.Group("/api/transactions")
	{
		txns.GET("", txnCtl.ListTransactions) // ?status=borrowed|returned
		txns.GET("/overdue", txnCtl.ListOverdue)
		txns.GET("/:id", txnCtl.GetTransaction)
		txns.POST("/borrow", txnCtl.Borrow)
		txns.POST("/:id/return", txnCtl.Return)
	}

	r.GET("/api/stats", statsCtl.GetStats)
}
