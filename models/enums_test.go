package models_test

import (
	"testing"

	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestParseAccountType(t *testing.T) {
	cases := map[string]models.AccountType{
		"Bank": models.AccountTypeBank,
		"Cash": models.AccountTypeCash,
		"Card": models.AccountTypeCard,
		// наследие старой схемы со строчными значениями
		"bank": models.AccountTypeBank,
		"cash": models.AccountTypeCash,
		"card": models.AccountTypeCard,
	}
	for input, want := range cases {
		got, err := models.ParseAccountType(input)
		if err != nil {
			t.Errorf("ParseAccountType(%q): неожиданная ошибка %v", input, err)
		}
		if got != want {
			t.Errorf("ParseAccountType(%q) = %q, хотели %q", input, got, want)
		}
	}
}

func TestParseAccountTypeUnknown(t *testing.T) {
	for _, input := range []string{"", "Savings", "BANK", "bAnk"} {
		if _, err := models.ParseAccountType(input); err == nil {
			t.Errorf("ParseAccountType(%q): ожидали ошибку", input)
		}
	}
}

// Историческое поведение: неизвестный текст молча превращается в Bank.
func TestAccountTypeOrDefault(t *testing.T) {
	if got := models.AccountTypeOrDefault("Cash"); got != models.AccountTypeCash {
		t.Errorf("AccountTypeOrDefault(\"Cash\") = %q", got)
	}
	for _, input := range []string{"", "Savings", "garbage"} {
		if got := models.AccountTypeOrDefault(input); got != models.AccountTypeBank {
			t.Errorf("AccountTypeOrDefault(%q) = %q, хотели Bank", input, got)
		}
	}
}

func TestParseTransactionType(t *testing.T) {
	if got, err := models.ParseTransactionType("Income"); err != nil || got != models.TransactionTypeIncome {
		t.Errorf("ParseTransactionType(\"Income\") = %q, %v", got, err)
	}
	if got, err := models.ParseTransactionType("Expense"); err != nil || got != models.TransactionTypeExpense {
		t.Errorf("ParseTransactionType(\"Expense\") = %q, %v", got, err)
	}
	for _, input := range []string{"", "income", "Transfer"} {
		if _, err := models.ParseTransactionType(input); err == nil {
			t.Errorf("ParseTransactionType(%q): ожидали ошибку", input)
		}
	}
}

func TestTransactionTypeOrDefault(t *testing.T) {
	if got := models.TransactionTypeOrDefault("Expense"); got != models.TransactionTypeExpense {
		t.Errorf("TransactionTypeOrDefault(\"Expense\") = %q", got)
	}
	for _, input := range []string{"", "Transfer", "income"} {
		if got := models.TransactionTypeOrDefault(input); got != models.TransactionTypeIncome {
			t.Errorf("TransactionTypeOrDefault(%q) = %q, хотели Income", input, got)
		}
	}
}
