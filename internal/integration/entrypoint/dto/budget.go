// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetbook/backend/internal/application/usecase/budget"
)

// AssignMoneyRequest represents the request body for assigning money to a
// category. The amount is added to the category's existing assignment.
type AssignMoneyRequest struct {
	CategoryID string  `json:"category_id" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
}

// AssignMoneyResponse represents the state after an assignment.
type AssignMoneyResponse struct {
	CategoryID        string `json:"category_id"`
	Assigned          string `json:"assigned"`
	Available         string `json:"available"`
	AvailableToBudget string `json:"available_to_budget"`
}

// CategoryBudgetResponse represents one category's budget state within a month.
type CategoryBudgetResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Assigned  string `json:"assigned"`
	Spent     string `json:"spent"`
	Available string `json:"available"`
}

// MonthBudgetResponse represents the response for reading a month's budget.
type MonthBudgetResponse struct {
	Month                 string                   `json:"month"`
	AvailableToBudget     string                   `json:"available_to_budget"`
	CarryoverFromPrevious string                   `json:"carryover_from_previous"`
	TotalAssigned         string                   `json:"total_assigned"`
	TotalSpent            string                   `json:"total_spent"`
	Categories            []CategoryBudgetResponse `json:"categories"`
}

// ToAssignMoneyResponse converts an AssignMoneyOutput to an AssignMoneyResponse DTO.
func ToAssignMoneyResponse(output *budget.AssignMoneyOutput) AssignMoneyResponse {
	return AssignMoneyResponse{
		CategoryID:        output.CategoryID.String(),
		Assigned:          output.Assigned.String(),
		Available:         output.Available.String(),
		AvailableToBudget: output.AvailableToBudget.String(),
	}
}

// ToMonthBudgetResponse converts a GetMonthOutput to a MonthBudgetResponse DTO.
func ToMonthBudgetResponse(output *budget.GetMonthOutput) MonthBudgetResponse {
	categories := make([]CategoryBudgetResponse, len(output.Categories))
	for i, cat := range output.Categories {
		categories[i] = CategoryBudgetResponse{
			ID:        cat.ID.String(),
			Name:      cat.Name,
			Assigned:  cat.Assigned.String(),
			Spent:     cat.Spent.String(),
			Available: cat.Available.String(),
		}
	}
	return MonthBudgetResponse{
		Month:                 output.Month,
		AvailableToBudget:     output.AvailableToBudget.String(),
		CarryoverFromPrevious: output.CarryoverFromPrevious.String(),
		TotalAssigned:         output.TotalAssigned.String(),
		TotalSpent:            output.TotalSpent.String(),
		Categories:            categories,
	}
}
