package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	JournalPosted   JournalStatus = "POSTED"
	JournalReversed JournalStatus = "REVERSED"
)

// JournalEntry represents a single double-sided ledger movement.
// DebitAccount and CreditAccount reference Account.Name.
type JournalEntry struct {
	EntryID       string          `json:"entryID"`
	Date          time.Time       `json:"date"`
	Reference     string          `json:"reference"`
	Description   string          `json:"description"`
	DebitAccount  string          `json:"debitAccount"`
	CreditAccount string          `json:"creditAccount"`
	Amount        decimal.Decimal `json:"amount"` // Must be positive
	Status        JournalStatus   `json:"status"`
}
