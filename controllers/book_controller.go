package controllers

import (
	"net/http"

	"library-management-system/app"
	"library-management-system/db"
	"library-management-system/models"

	"github.com/google/uuid"
)

type BookController struct{ *Srv }

func NewBookController(s *Srv) *BookController { return &BookController{Srv: s} }

func (bc *BookController) ListBooks(c *app.Ctx) {
	books, err := bc.Repo.ListBooks(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"books": books})
}

func (bc *BookController) GetBook(c *app.Ctx) {
	b, err := bc.Repo.FindBookByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"book": b})
}

func (bc *BookController) AddBook(c *app.Ctx) {
	var in struct {
		Title       string `json:"title" binding:"required"`
		Author      string `json:"author" binding:"required"`
		ISBN        string `json:"isbn" binding:"required"`
		Category    string `json:"category"`
		TotalCopies int    `json:"totalCopies"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Title, author, and ISBN are required"})
		return
	}

	b := &models.Book{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Author:      in.Author,
		ISBN:        in.ISBN,
		Category:    in.Category,
		TotalCopies: in.TotalCopies,
	}
	if err := bc.Repo.CreateBook(c.Request.Context(), b); err != nil {
		fail(c, err)
		return
	}
	bc.invalidateSnapshot(c)
	c.JSON(http.StatusCreated, app.H{"message": "Book added successfully", "book": b})
}

func (bc *BookController) UpdateBook(c *app.Ctx) {
	var in struct {
		Title       string `json:"title" binding:"required"`
		Author      string `json:"author" binding:"required"`
		Category    string `json:"category"`
		TotalCopies int    `json:"totalCopies"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	b, err := bc.Repo.UpdateBook(c.Request.Context(), c.Param("id"), db.UpdateBookInput{
		Title:       in.Title,
		Author:      in.Author,
		Category:    in.Category,
		TotalCopies: in.TotalCopies,
	})
	if err != nil {
		fail(c, err)
		return
	}
	bc.invalidateSnapshot(c)
	c.JSON(http.StatusOK, app.H{"message": "Book updated successfully", "book": b})
}

func (bc *BookController) DeleteBook(c *app.Ctx) {
	if err := bc.Repo.DeleteBook(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	bc.invalidateSnapshot(c)
	c.JSON(http.StatusOK, app.H{"message": "Book deleted successfully"})
}

func (bc *BookController) ListCategories(c *app.Ctx) {
	cats, err := bc.Repo.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"categories": cats})
}
