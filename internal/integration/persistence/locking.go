// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate adds a row-level write lock to the query on databases that
// support it. SQLite serializes writers on its own and rejects FOR UPDATE,
// so the clause is skipped there.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
