package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Account represents a ledger account.
// Name is unique and is used as a foreign key by JournalEntry.
type Account struct {
	AccountID   string          `json:"accountID"`
	Code        string          `json:"code"` // Chart-of-accounts code (e.g., "1001")
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"` // Signed running balance
	AccountType AccountType     `json:"accountType"`
}
