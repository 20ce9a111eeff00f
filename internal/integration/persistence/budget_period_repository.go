package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetbook/backend/internal/application/adapter"
	"github.com/budgetbook/backend/internal/domain/entity"
	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/persistence/model"
)

// budgetPeriodRepository implements the adapter.BudgetPeriodRepository interface.
type budgetPeriodRepository struct {
	db *gorm.DB
}

// NewBudgetPeriodRepository creates a new budget period repository instance.
func NewBudgetPeriodRepository(db *gorm.DB) adapter.BudgetPeriodRepository {
	return &budgetPeriodRepository{
		db: db,
	}
}

// Create creates a new budget period in the database.
func (r *budgetPeriodRepository) Create(ctx context.Context, period *entity.BudgetPeriod) error {
	periodModel := model.BudgetPeriodFromEntity(period)
	result := r.db.WithContext(ctx).Create(periodModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget period by its ID.
func (r *budgetPeriodRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BudgetPeriod, error) {
	var periodModel model.BudgetPeriodModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// FindByUserAndMonth retrieves the period for a (user, month) pair.
func (r *budgetPeriodRepository) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	return r.findByUserAndMonth(r.db.WithContext(ctx), userID, month)
}

// FindByUserAndMonthForUpdate retrieves the period for a (user, month) pair
// and locks its row for the remainder of the enclosing unit of work.
func (r *budgetPeriodRepository) FindByUserAndMonthForUpdate(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	return r.findByUserAndMonth(forUpdate(r.db.WithContext(ctx)), userID, month)
}

func (r *budgetPeriodRepository) findByUserAndMonth(db *gorm.DB, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	var periodModel model.BudgetPeriodModel
	result := db.Where("user_id = ? AND month = ?", userID, month).First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// FindLatestBeforeMonth retrieves the user's most recent period strictly
// before the given month. YYYY-MM keys sort chronologically as strings.
func (r *budgetPeriodRepository) FindLatestBeforeMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.BudgetPeriod, error) {
	var periodModel model.BudgetPeriodModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month < ?", userID, month).
		Order("month DESC").
		First(&periodModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetPeriodNotFound
		}
		return nil, result.Error
	}
	return periodModel.ToEntity(), nil
}

// UpdateAvailableToBudget sets a period's unassigned pool to a new value.
func (r *budgetPeriodRepository) UpdateAvailableToBudget(ctx context.Context, id uuid.UUID, available decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetPeriodModel{}).
		Where("id = ?", id).
		Update("available_to_budget", available)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetPeriodNotFound
	}
	return nil
}

// AddToAvailableToBudget adjusts a period's unassigned pool by a signed delta.
func (r *budgetPeriodRepository) AddToAvailableToBudget(ctx context.Context, id uuid.UUID, delta decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetPeriodModel{}).
		Where("id = ?", id).
		Update("available_to_budget", gorm.Expr("available_to_budget + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetPeriodNotFound
	}
	return nil
}
