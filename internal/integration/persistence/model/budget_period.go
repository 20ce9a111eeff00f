package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// BudgetPeriodModel represents the budget_periods table in the database.
// The (user_id, month) pair is unique; a user has at most one period per month.
type BudgetPeriodModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budget_periods_user_month"`
	Month                 string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_periods_user_month"`
	AvailableToBudget     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CarryoverFromPrevious decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BudgetPeriodModel.
func (BudgetPeriodModel) TableName() string {
	return "budget_periods"
}

// ToEntity converts a BudgetPeriodModel to a domain BudgetPeriod entity.
func (m *BudgetPeriodModel) ToEntity() *entity.BudgetPeriod {
	return &entity.BudgetPeriod{
		ID:                    m.ID,
		UserID:                m.UserID,
		Month:                 m.Month,
		AvailableToBudget:     m.AvailableToBudget,
		CarryoverFromPrevious: m.CarryoverFromPrevious,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

// BudgetPeriodFromEntity creates a BudgetPeriodModel from a domain BudgetPeriod entity.
func BudgetPeriodFromEntity(period *entity.BudgetPeriod) *BudgetPeriodModel {
	return &BudgetPeriodModel{
		ID:                    period.ID,
		UserID:                period.UserID,
		Month:                 period.Month,
		AvailableToBudget:     period.AvailableToBudget,
		CarryoverFromPrevious: period.CarryoverFromPrevious,
		CreatedAt:             period.CreatedAt,
		UpdatedAt:             period.UpdatedAt,
	}
}
