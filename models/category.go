package models

import "github.com/google/uuid"

type Category struct {
	ID     uuid.UUID `json:"id" db:"id"`
	Name   string    `json:"name" db:"name"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`
}

type CategoryInput struct {
	Name   string    `json:"name" binding:"required"`
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

type CategoryOutput struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	UserID uuid.UUID `json:"user_id"`
}

func (c *Category) ToOutput() CategoryOutput {
	return CategoryOutput{
		ID:     c.ID,
		Name:   c.Name,
		UserID: c.UserID,
	}
}
