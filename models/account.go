package models

import "github.com/google/uuid"

type Account struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	AccountType AccountType `json:"account_type" db:"account_type"`
	Balance     float64     `json:"balance" db:"balance"`
	UserID      uuid.UUID   `json:"user_id" db:"user_id"`
}

type AccountInput struct {
	Name        string      `json:"name" binding:"required"`
	AccountType AccountType `json:"account_type" binding:"required"`
	Balance     float64     `json:"balance"`
	UserID      uuid.UUID   `json:"user_id" binding:"required"`
}

type AccountOutput struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"account_type"`
	Balance     float64     `json:"balance"`
	UserID      uuid.UUID   `json:"user_id"`
}

func (a *Account) ToOutput() AccountOutput {
	return AccountOutput{
		ID:          a.ID,
		Name:        a.Name,
		AccountType: a.AccountType,
		Balance:     a.Balance,
		UserID:      a.UserID,
	}
}
