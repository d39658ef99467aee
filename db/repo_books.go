package db

import (
	"context"
	"errors"
	"strings"

	"library-management-system/models"

	"gorm.io/gorm"
)

// Books

func (r *Repo) CreateBook(ctx context.Context, b *models.Book) error {
	if b.TotalCopies <= 0 {
		b.TotalCopies = 1
	}
	// a new catalog entry starts fully on the shelf
	b.AvailableCopies = b.TotalCopies
	if err := r.DB.WithContext(ctx).Create(b).Error; err != nil {
		return translateError(err, ErrISBNExists)
	}
	return nil
}

func (r *Repo) FindBookByID(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := r.DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *Repo) ListBooks(ctx context.Context, search, category string) ([]models.Book, error) {
	q := r.DB.WithContext(ctx).Model(&models.Book{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(isbn) LIKE ?", like, like, like)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var books []models.Book
	err := q.Order("created_at DESC").Find(&books).Error
	return books, err
}

type UpdateBookInput struct {
	Title       string
	Author      string
	Category    string
	TotalCopies int
}

// UpdateBook edits catalog fields. ISBN is the immutable business key and is
// not editable. Changing total_copies reconciles available_copies against the
// open-loan count inside the same transaction; a total below the open-loan
// count would force available negative and is rejected.
func (r *Repo) UpdateBook(ctx context.Context, id string, in UpdateBookInput) (*models.Book, error) {
	var b models.Book
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		updates := map[string]any{
			"title":    in.Title,
			"author":   in.Author,
			"category": in.Category,
		}
		if in.TotalCopies > 0 && in.TotalCopies != b.TotalCopies {
			var open int64
			if err := tx.Model(&models.Transaction{}).
				Where("book_id = ? AND status = ?", id, models.StatusBorrowed).
				Count(&open).Error; err != nil {
				return err
			}
			if int64(in.TotalCopies) < open {
				return ErrTotalBelowOpenLoans
			}
			updates["total_copies"] = in.TotalCopies
			updates["available_copies"] = in.TotalCopies - int(open)
		}

		if err := tx.Model(&models.Book{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&b, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *Repo) DeleteBook(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var open int64
		if err := tx.Model(&models.Transaction{}).
			Where("book_id = ? AND status = ?", id, models.StatusBorrowed).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrBookHasOpenLoans
		}
		res := tx.Delete(&models.Book{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBookNotFound
		}
		return nil
	})
}

func (r *Repo) ListCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := r.DB.WithContext(ctx).Model(&models.Book{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &cats).Error
	return cats, err
}
