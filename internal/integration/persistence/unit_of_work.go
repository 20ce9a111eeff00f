package persistence

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// unitOfWork implements adapter.UnitOfWork on top of a gorm database
// transaction. Every repository handed to the work function is bound to the
// same transaction, so the unit commits or rolls back as a whole.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work instance.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Execute runs work inside a database transaction.
func (u *unitOfWork) Execute(ctx context.Context, work func(ctx context.Context, repos adapter.Repositories) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return work(ctx, NewRepositories(tx))
	})
	if err != nil && isSerializationFailure(err) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeConcurrencyConflict,
			"concurrent modification detected, retry the operation",
			domainerror.ErrConcurrencyConflict,
		)
	}
	return err
}

// NewRepositories builds the repository bundle bound to the given handle,
// which may be a transaction or the root connection.
func NewRepositories(db *gorm.DB) adapter.Repositories {
	return adapter.Repositories{
		Users:         NewUserRepository(db),
		Accounts:      NewAccountRepository(db),
		BudgetPeriods: NewBudgetPeriodRepository(db),
		Categories:    NewCategoryRepository(db),
		Transactions:  NewTransactionRepository(db),
	}
}

// isSerializationFailure reports whether the error is a database-level
// conflict between concurrent transactions: a serialization failure
// (SQLSTATE 40001), a deadlock (40P01), or SQLite's table lock contention.
func isSerializationFailure(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40P01") ||
		strings.Contains(msg, "deadlock detected") ||
		strings.Contains(msg, "database is locked")
}
