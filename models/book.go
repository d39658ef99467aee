package models

import "time"

const BookTable = "books"

type Book struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string    `gorm:"size:255;not null" json:"title"`
	Author          string    `gorm:"size:255;not null" json:"author"`
	ISBN            string    `gorm:"size:32;uniqueIndex;not null" json:"isbn"` // immutable business key
	Category        string    `gorm:"size:120" json:"category,omitempty"`
	TotalCopies     int       `gorm:"not null;default:1" json:"totalCopies"`
	AvailableCopies int       `gorm:"not null;default:1" json:"availableCopies"` // only the ledger touches this
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Book) TableName() string { return BookTable }
