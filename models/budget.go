package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget — бюджет на период; category_id может отсутствовать,
// тогда бюджет общий, а не по категории.
type Budget struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Amount     float64    `json:"amount" db:"amount"`
	StartDate  time.Time  `json:"start_date" db:"start_date"`
	EndDate    time.Time  `json:"end_date" db:"end_date"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	CategoryID *uuid.UUID `json:"category_id" db:"category_id"`
}

type BudgetInput struct {
	Name       string     `json:"name" binding:"required"`
	Amount     float64    `json:"amount"`
	StartDate  time.Time  `json:"start_date" binding:"required"`
	EndDate    time.Time  `json:"end_date" binding:"required"`
	UserID     uuid.UUID  `json:"user_id" binding:"required"`
	CategoryID *uuid.UUID `json:"category_id"`
}

type BudgetOutput struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Amount     float64    `json:"amount"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    time.Time  `json:"end_date"`
	UserID     uuid.UUID  `json:"user_id"`
	CategoryID *uuid.UUID `json:"category_id"`
}

func (b *Budget) ToOutput() BudgetOutput {
	return BudgetOutput{
		ID:         b.ID,
		Name:       b.Name,
		Amount:     b.Amount,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
	}
}
