package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetbook/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// Category names are unique within their budget period.
type CategoryModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodID  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_categories_period_name"`
	Name      string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_categories_period_name"`
	Assigned  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Spent     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`

	Period *BudgetPeriodModel `gorm:"foreignKey:PeriodID;references:ID"`
	User   *UserModel         `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		UserID:    m.UserID,
		PeriodID:  m.PeriodID,
		Name:      m.Name,
		Assigned:  m.Assigned,
		Spent:     m.Spent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		UserID:    category.UserID,
		PeriodID:  category.PeriodID,
		Name:      category.Name,
		Assigned:  category.Assigned,
		Spent:     category.Spent,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
