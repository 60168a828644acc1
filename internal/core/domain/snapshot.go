package domain

// Snapshot is the full set of collections the data context is seeded with.
// It is produced once by the mock-data source at construction time; nothing
// in the core ever persists it.
type Snapshot struct {
	Currencies     []Currency     `json:"currencies"`
	Offices        []Office       `json:"offices"`
	Accounts       []Account      `json:"accounts"`
	JournalEntries []JournalEntry `json:"journalEntries"`
	Expenses       []Expense      `json:"expenses"`
	Bookings       []Booking      `json:"bookings"`
	Passengers     []Passenger    `json:"passengers"`
	Invoices       []Invoice      `json:"invoices"`
	Payments       []Payment      `json:"payments"`
}
