package models

import (
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID           uuid.UUID `json:"id" db:"id"`
	GoalID       uuid.UUID `json:"goal_id" db:"goal_id"`
	DateAchieved time.Time `json:"date_achieved" db:"date_achieved"`
	AmountSaved  float64   `json:"amount_saved" db:"amount_saved"`
}

type AchievementInput struct {
	GoalID       uuid.UUID `json:"goal_id" binding:"required"`
	DateAchieved time.Time `json:"date_achieved" binding:"required"`
	AmountSaved  float64   `json:"amount_saved"`
}

type AchievementOutput struct {
	ID           uuid.UUID `json:"id"`
	GoalID       uuid.UUID `json:"goal_id"`
	DateAchieved time.Time `json:"date_achieved"`
	AmountSaved  float64   `json:"amount_saved"`
}

func (a *Achievement) ToOutput() AchievementOutput {
	return AchievementOutput{
		ID:           a.ID,
		GoalID:       a.GoalID,
		DateAchieved: a.DateAchieved,
		AmountSaved:  a.AmountSaved,
	}
}
