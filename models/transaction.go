package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Title           string          `json:"title" db:"title"`
	Amount          float64         `json:"amount" db:"amount"`
	Date            time.Time       `json:"date" db:"date"`
	CategoryID      uuid.UUID       `json:"category_id" db:"category_id"`
	TransactionType TransactionType `json:"transaction_type" db:"transaction_type"`
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	AccountID       uuid.UUID       `json:"account_id" db:"account_id"`
}

type TransactionInput struct {
	Title           string          `json:"title" binding:"required"`
	Amount          float64         `json:"amount"`
	Date            time.Time       `json:"date" binding:"required"`
	CategoryID      uuid.UUID       `json:"category_id" binding:"required"`
	TransactionType TransactionType `json:"transaction_type" binding:"required"`
	UserID          uuid.UUID       `json:"user_id" binding:"required"`
	AccountID       uuid.UUID       `json:"account_id" binding:"required"`
}

type TransactionOutput struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Amount          float64         `json:"amount"`
	Date            time.Time       `json:"date"`
	CategoryID      uuid.UUID       `json:"category_id"`
	TransactionType TransactionType `json:"transaction_type"`
	UserID          uuid.UUID       `json:"user_id"`
	AccountID       uuid.UUID       `json:"account_id"`
}

func (t *Transaction) ToOutput() TransactionOutput {
	return TransactionOutput{
		ID:              t.ID,
		Title:           t.Title,
		Amount:          t.Amount,
		Date:            t.Date,
		CategoryID:      t.CategoryID,
		TransactionType: t.TransactionType,
		UserID:          t.UserID,
		AccountID:       t.AccountID,
	}
}
