package db

import (
	"fmt"
	"log"
	"os"

	"library-management-system/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	if err = Migrate(DB); err != nil {
		log.Fatal("Failed to migrate models: ", err)
	}
	log.Println("Database connected")
	return DB
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Book{}, &models.Member{}, &models.Transaction{}); err != nil {
		return err
	}

	// at most one open loan per (book, member) — backstop for the duplicate-loan check
	if err := db.Exec(fmt.Sprintf(`
	  CREATE UNIQUE INDEX IF NOT EXISTS %s_one_open_per_pair
	  ON %s (book_id, member_id)
	  WHERE status = 'borrowed';
	`, models.TransactionTable, models.TransactionTable)).Error; err != nil {
		return err
	}

	// overdue scans filter on status and compare due_date
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_status_duedate
	  ON %s (status, due_date);
	`, models.TransactionTable, models.TransactionTable)).Error; err != nil {
		return err
	}

	// recent-transactions list
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_borrowdate_desc
	  ON %s (borrow_date DESC);
	`, models.TransactionTable, models.TransactionTable)).Error; err != nil {
		return err
	}

	return nil
}
