package db

import (
	"context"
	"log"

	"library-management-system/models"

	"github.com/google/uuid"
)

// SeedSampleData inserts a starter catalog when the tables are empty so a
// fresh deployment has something to show. No-op otherwise.
func (r *Repo) SeedSampleData(ctx context.Context) error {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Book{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		books := []models.Book{
			{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", ISBN: "978-0743273565", Category: "Fiction", TotalCopies: 3},
			{Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "978-0061120084", Category: "Fiction", TotalCopies: 2},
			{Title: "1984", Author: "George Orwell", ISBN: "978-0451524935", Category: "Science Fiction", TotalCopies: 4},
			{Title: "Pride and Prejudice", Author: "Jane Austen", ISBN: "978-0141439518", Category: "Romance", TotalCopies: 2},
			{Title: "The Catcher in the Rye", Author: "J.D. Salinger", ISBN: "978-0316769174", Category: "Fiction", TotalCopies: 3},
			{Title: "Harry Potter and the Sorcerer's Stone", Author: "J.K. Rowling", ISBN: "978-0439708180", Category: "Fantasy", TotalCopies: 5},
			{Title: "The Hobbit", Author: "J.R.R. Tolkien", ISBN: "978-0547928227", Category: "Fantasy", TotalCopies: 3},
			{Title: "Fahrenheit 451", Author: "Ray Bradbury", ISBN: "978-1451673319", Category: "Science Fiction", TotalCopies: 2},
		}
		for i := range books {
			books[i].ID = uuid.NewString()
			if err := r.CreateBook(ctx, &books[i]); err != nil {
				return err
			}
		}
		log.Println("Sample books inserted")
	}

	if err := r.DB.WithContext(ctx).Model(&models.Member{}).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		members := []models.Member{
			{Name: "John Doe", Email: "john.doe@email.com", Phone: "555-0101", Address: "123 Main St"},
			{Name: "Jane Smith", Email: "jane.smith@email.com", Phone: "555-0102", Address: "456 Oak Ave"},
			{Name: "Bob Johnson", Email: "bob.johnson@email.com", Phone: "555-0103", Address: "789 Pine Rd"},
			{Name: "Alice Williams", Email: "alice.w@email.com", Phone: "555-0104", Address: "321 Elm St"},
		}
		for i := range members {
			members[i].ID = uuid.NewString()
			if err := r.CreateMember(ctx, &members[i]); err != nil {
				return err
			}
		}
		log.Println("Sample members inserted")
	}
	return nil
}
