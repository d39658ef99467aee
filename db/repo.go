package db

import (
	"gorm.io/gorm"
)

type Repo struct {
	DB *gorm.DB

	locks *bookLocks
}

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db, locks: newBookLocks()} }

// supportsRowLocks reports whether the dialect honors SELECT ... FOR UPDATE.
// sqlite (tests) serializes writers on its own and rejects the clause.
func (r *Repo) supportsRowLocks() bool {
	return r.DB.Dialector.Name() == "postgres"
}
