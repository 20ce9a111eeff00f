// Package mock provides test doubles for the persistence layer.
package mock

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
)

// MemStore is an in-memory stand-in for the persistence layer, used to
// exercise use cases without a database. It is not safe for concurrent use.
type MemStore struct {
	Users        map[uuid.UUID]entity.User
	Accounts     map[uuid.UUID]entity.Account
	Periods      map[uuid.UUID]entity.BudgetPeriod
	Categories   map[uuid.UUID]entity.Category
	Transactions map[uuid.UUID]entity.Transaction
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		Users:        make(map[uuid.UUID]entity.User),
		Accounts:     make(map[uuid.UUID]entity.Account),
		Periods:      make(map[uuid.UUID]entity.BudgetPeriod),
		Categories:   make(map[uuid.UUID]entity.Category),
		Transactions: make(map[uuid.UUID]entity.Transaction),
	}
}

// Clone returns a deep copy of the store.
func (s *MemStore) Clone() *MemStore {
	c := NewMemStore()
	for k, v := range s.Users {
		c.Users[k] = v
	}
	for k, v := range s.Accounts {
		c.Accounts[k] = v
	}
	for k, v := range s.Periods {
		c.Periods[k] = v
	}
	for k, v := range s.Categories {
		c.Categories[k] = v
	}
	for k, v := range s.Transactions {
		c.Transactions[k] = v
	}
	return c
}

// Repos returns a repository bundle operating directly on the store.
func (s *MemStore) Repos() adapter.Repositories {
	return adapter.Repositories{
		Users:         &memUserRepo{s},
		Accounts:      &memAccountRepo{s},
		BudgetPeriods: &memPeriodRepo{s},
		Categories:    &memCategoryRepo{s},
		Transactions:  &memTransactionRepo{s},
	}
}

// MemUnitOfWork runs work against a copy of the store and commits the copy
// only on success, mirroring transactional rollback.
type MemUnitOfWork struct {
	Store *MemStore
}

// Execute implements adapter.UnitOfWork.
func (u *MemUnitOfWork) Execute(ctx context.Context, work func(ctx context.Context, repos adapter.Repositories) error) error {
	scratch := u.Store.Clone()
	if err := work(ctx, scratch.Repos()); err != nil {
		return err
	}
	*u.Store = *scratch
	return nil
}

type memUserRepo struct{ s *MemStore }

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.Users[user.ID] = *user
	return nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.s.Users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	out := u
	return &out, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.s.Users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.s.Users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

type memAccountRepo struct{ s *MemStore }

func (r *memAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.s.Accounts[account.ID] = *account
	return nil
}

func (r *memAccountRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	a, ok := r.s.Accounts[id]
	if !ok || a.UserID != userID || a.DeletedAt != nil {
		return nil, domainerror.ErrAccountNotFound
	}
	out := a
	return &out, nil
}

func (r *memAccountRepo) FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	return r.FindByIDAndUser(ctx, id, userID)
}

func (r *memAccountRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var out []*entity.Account
	for _, a := range r.s.Accounts {
		if a.UserID == userID && a.DeletedAt == nil {
			item := a
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memAccountRepo) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, a := range r.s.Accounts {
		if a.UserID == userID && a.Name == name && a.DeletedAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *memAccountRepo) AddToBalance(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	a, ok := r.s.Accounts[id]
	if !ok {
		return domainerror.ErrAccountNotFound
	}
	a.Balance = a.Balance.Add(delta)
	r.s.Accounts[id] = a
	return nil
}

type memPeriodRepo struct{ s *MemStore }

func (r *memPeriodRepo) Create(ctx context.Context, period *entity.BudgetPeriod) error {
	r.s.Periods[period.ID] = *period
	return nil
}

func (r *memPeriodRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error) {
	p, ok := r.s.Periods[id]
	if !ok {
		return nil, domainerror.ErrBudgetPeriodNotFound
	}
	out := p
	return &out, nil
}

func (r *memPeriodRepo) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	for _, p := range r.s.Periods {
		if p.UserID == userID && p.Month == month {
			out := p
			return &out, nil
		}
	}
	return nil, domainerror.ErrBudgetPeriodNotFound
}

func (r *memPeriodRepo) FindByUserAndMonthForUpdate(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	return r.FindByUserAndMonth(ctx, userID, month)
}

func (r *memPeriodRepo) FindLatestBeforeMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	var latest *entity.BudgetPeriod
	for _, p := range r.s.Periods {
		if p.UserID != userID || p.Month >= month {
			continue
		}
		if latest == nil || p.Month > latest.Month {
			out := p
			latest = &out
		}
	}
	if latest == nil {
		return nil, domainerror.ErrBudgetPeriodNotFound
	}
	return latest, nil
}

func (r *memPeriodRepo) UpdateAvailableToBudget(ctx context.Context, id uuid.UUID, available decimal.Decimal) error {
	p, ok := r.s.Periods[id]
	if !ok {
		return domainerror.ErrBudgetPeriodNotFound
	}
	p.AvailableToBudget = available
	r.s.Periods[id] = p
	return nil
}

func (r *memPeriodRepo) AddToAvailableToBudget(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	p, ok := r.s.Periods[id]
	if !ok {
		return domainerror.ErrBudgetPeriodNotFound
	}
	p.AvailableToBudget = p.AvailableToBudget.Add(delta)
	r.s.Periods[id] = p
	return nil
}

type memCategoryRepo struct{ s *MemStore }

func (r *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.s.Categories[category.ID] = *category
	return nil
}

func (r *memCategoryRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	c, ok := r.s.Categories[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	out := c
	return &out, nil
}

func (r *memCategoryRepo) FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	return r.FindByIDAndUser(ctx, id, userID)
}

func (r *memCategoryRepo) FindByPeriod(ctx context.Context, periodID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.Categories {
		if c.PeriodID == periodID {
			item := c
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCategoryRepo) ExistsByNameAndPeriod(ctx context.Context, name string, periodID uuid.UUID) (bool, error) {
	for _, c := range r.s.Categories {
		if c.PeriodID == periodID && c.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCategoryRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	c, ok := r.s.Categories[id]
	if !ok {
		return domainerror.ErrCategoryNotFound
	}
	c.Name = name
	r.s.Categories[id] = c
	return nil
}

func (r *memCategoryRepo) UpdateAssigned(ctx context.Context, id uuid.UUID, assigned decimal.Decimal) error {
	c, ok := r.s.Categories[id]
	if !ok {
		return domainerror.ErrCategoryNotFound
	}
	c.Assigned = assigned
	r.s.Categories[id] = c
	return nil
}

func (r *memCategoryRepo) AddToSpent(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	c, ok := r.s.Categories[id]
	if !ok {
		return domainerror.ErrCategoryNotFound
	}
	c.Spent = c.Spent.Add(delta)
	r.s.Categories[id] = c
	return nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.s.Categories, id)
	return nil
}

type memTransactionRepo struct{ s *MemStore }

func (r *memTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.s.Transactions[transaction.ID] = *transaction
	return nil
}

func (r *memTransactionRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	t, ok := r.s.Transactions[id]
	if !ok || t.UserID != userID || t.DeletedAt != nil {
		return nil, domainerror.ErrTransactionNotFound
	}
	out := t
	return &out, nil
}

func (r *memTransactionRepo) FindByIDAndUserForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	return r.FindByIDAndUser(ctx, id, userID)
}

func (r *memTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*adapter.TransactionListResult, error) {
	var matched []*entity.Transaction
	for _, t := range r.s.Transactions {
		if t.UserID != filter.UserID || t.DeletedAt != nil {
			continue
		}
		if filter.AccountID != nil && t.AccountID != *filter.AccountID {
			continue
		}
		if filter.CategoryID != nil && (t.CategoryID == nil || *t.CategoryID != *filter.CategoryID) {
			continue
		}
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		item := t
		matched = append(matched, &item)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Date.After(matched[j].Date) })

	total := int64(len(matched))
	start := (pagination.Page - 1) * pagination.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pagination.Limit
	if end > len(matched) {
		end = len(matched)
	}
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	return &adapter.TransactionListResult{
		Transactions: matched[start:end],
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *memTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	if _, ok := r.s.Transactions[transaction.ID]; !ok {
		return domainerror.ErrTransactionNotFound
	}
	r.s.Transactions[transaction.ID] = *transaction
	return nil
}

func (r *memTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	t, ok := r.s.Transactions[id]
	if !ok {
		return domainerror.ErrTransactionNotFound
	}
	now := time.Now().UTC()
	t.DeletedAt = &now
	r.s.Transactions[id] = t
	return nil
}

func (r *memTransactionRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var n int64
	for _, t := range r.s.Transactions {
		if t.DeletedAt == nil && t.CategoryID != nil && *t.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}
