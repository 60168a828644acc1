package repositories

// ReferenceReader combines every reader the engines depend on. The data
// context implements all of it; tests may satisfy individual readers with
// smaller fixtures.
type ReferenceReader interface {
	CurrencyReader
	OfficeReader
	AccountReader
	JournalReader
	ExpenseReader
	BookingReader
	PassengerReader
	InvoiceReader
	PaymentReader
}

// ReaderProvider holds the reader interfaces needed by the service
// container. This makes passing dependencies to the container constructor
// cleaner.
type ReaderProvider struct {
	Currencies CurrencyReader
	Offices    OfficeReader
	Accounts   AccountReader
	Journal    JournalReader
	Expenses   ExpenseReader
	Bookings   BookingReader
	Passengers PassengerReader
	Invoices   InvoiceReader
	Payments   PaymentReader
}
