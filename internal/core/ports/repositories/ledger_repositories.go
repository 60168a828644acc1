package repositories

import (
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
)

// AccountReader defines read operations over the chart of accounts.
type AccountReader interface {
	// FindAccountByName retrieves an account by its unique name, the key
	// journal entries reference.
	FindAccountByName(name string) *domain.Account

	// ListAccounts retrieves all accounts in seed order.
	ListAccounts() []domain.Account
}

// JournalReader defines read operations over the journal.
type JournalReader interface {
	// ListJournalEntries retrieves all journal entries in seed order.
	ListJournalEntries() []domain.JournalEntry
}

// ExpenseReader defines read operations over the expense records.
type ExpenseReader interface {
	// ListExpenses retrieves all expenses in seed order.
	ListExpenses() []domain.Expense
}
