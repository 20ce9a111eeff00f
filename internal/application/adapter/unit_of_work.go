// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Repositories bundles the repository set bound to one transactional handle.
// Inside a unit of work every repository operates on the same database
// transaction; outside, the same interfaces run in auto-commit mode.
type Repositories struct {
	Users         UserRepository
	Accounts      AccountRepository
	BudgetPeriods BudgetPeriodRepository
	Categories    CategoryRepository
	Transactions  TransactionRepository
}

// UnitOfWork executes work as a single atomic unit against the persistence
// layer: every read and write inside work commits together, or none do. A
// non-nil error from work rolls the whole unit back.
//
// Row reads that precede conditional writes must use the ForUpdate repository
// variants so concurrent units touching the same rows serialize.
type UnitOfWork interface {
	Execute(ctx context.Context, work func(ctx context.Context, repos Repositories) error) error
}
