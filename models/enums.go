package models

import "fmt"

// AccountType — тип счета (колонка account_type в БД).
type AccountType string

const (
	AccountTypeBank AccountType = "Bank"
	AccountTypeCash AccountType = "Cash"
	AccountTypeCard AccountType = "Card"
)

// TransactionType — тип транзакции (колонка transaction_type в БД).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "Income"
	TransactionTypeExpense TransactionType = "Expense"
)

// ParseAccountType разбирает текстовое значение типа счета.
// Канонический формат — PascalCase; строчные варианты ("bank", "cash",
// "card") принимаются для совместимости со старыми данными.
func ParseAccountType(s string) (AccountType, error) {
	switch s {
	case "Bank", "bank":
		return AccountTypeBank, nil
	case "Cash", "cash":
		return AccountTypeCash, nil
	case "Card", "card":
		return AccountTypeCard, nil
	}
	return "", fmt.Errorf("неизвестный тип счета: %q", s)
}

// AccountTypeOrDefault разбирает текстовое значение, подставляя Bank
// вместо ошибки. Историческое поведение пути поиска по id.
func AccountTypeOrDefault(s string) AccountType {
	t, err := ParseAccountType(s)
	if err != nil {
		return AccountTypeBank
	}
	return t
}

// ParseTransactionType разбирает текстовое значение типа транзакции.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "Income":
		return TransactionTypeIncome, nil
	case "Expense":
		return TransactionTypeExpense, nil
	}
	return "", fmt.Errorf("неизвестный тип транзакции: %q", s)
}

// TransactionTypeOrDefault подставляет Income вместо ошибки разбора.
func TransactionTypeOrDefault(s string) TransactionType {
	t, err := ParseTransactionType(s)
	if err != nil {
		return TransactionTypeIncome
	}
	return t
}
