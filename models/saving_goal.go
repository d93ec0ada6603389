package models

import (
	"time"

	"github.com/google/uuid"
)

type SavingGoal struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"`
	TargetAmount  float64   `json:"target_amount" db:"target_amount"`
	CurrentAmount float64   `json:"current_amount" db:"current_amount"`
	Deadline      Date      `json:"deadline" db:"deadline"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// SavingGoalInput — created_at/updated_at клиент не передает,
// они выставляются на сервере при вставке и обновлении.
type SavingGoalInput struct {
	Title         string    `json:"title" binding:"required"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      Date      `json:"deadline" binding:"required"`
	UserID        uuid.UUID `json:"user_id" binding:"required"`
}

type SavingGoalOutput struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Deadline      Date      `json:"deadline"`
	UserID        uuid.UUID `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (g *SavingGoal) ToOutput() SavingGoalOutput {
	return SavingGoalOutput{
		ID:            g.ID,
		Title:         g.Title,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		UserID:        g.UserID,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}
