package mockdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/apperrors"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/mockdata"
)

func TestDefault_ReferentialIntegrity(t *testing.T) {
	snap := mockdata.Default()

	currencies := make(map[string]bool)
	for _, c := range snap.Currencies {
		currencies[c.Code] = true
	}
	offices := make(map[string]bool)
	for _, o := range snap.Offices {
		assert.True(t, currencies[o.CurrencyCode], "office %s home currency must be seeded", o.OfficeID)
		offices[o.Name] = true
	}
	accounts := make(map[string]bool)
	for _, a := range snap.Accounts {
		accounts[a.Name] = true
	}
	for _, e := range snap.JournalEntries {
		assert.True(t, accounts[e.DebitAccount], "entry %s debit account must resolve", e.EntryID)
		assert.True(t, accounts[e.CreditAccount], "entry %s credit account must resolve", e.EntryID)
		assert.True(t, e.Amount.IsPositive())
	}
	for _, e := range snap.Expenses {
		assert.True(t, currencies[e.CurrencyCode], "expense %s currency must be seeded", e.ExpenseID)
		assert.True(t, offices[e.Office], "expense %s office must be seeded", e.ExpenseID)
		assert.True(t, e.ExchangeRate.IsPositive())
	}

	bookings := make(map[string]bool)
	for _, b := range snap.Bookings {
		bookings[b.BookingID] = true
	}
	passengers := make(map[string]bool)
	for _, p := range snap.Passengers {
		assert.True(t, bookings[p.BookingID], "passenger %s booking must be seeded", p.PassengerID)
		passengers[p.PassengerID] = true
	}
	invoices := make(map[string]bool)
	for _, inv := range snap.Invoices {
		assert.True(t, bookings[inv.BookingID], "invoice %s booking must be seeded", inv.InvoiceID)
		if inv.PassengerID != "" {
			assert.True(t, passengers[inv.PassengerID], "invoice %s passenger must be seeded", inv.InvoiceID)
		}
		invoices[inv.InvoiceID] = true
	}
	for _, p := range snap.Payments {
		assert.True(t, invoices[p.InvoiceID], "payment %s invoice must be seeded", p.PaymentID)
	}
}

const sampleSnapshot = `
currencies:
  - {code: USD, symbol: "$", name: US Dollar, precision: 2}
offices:
  - {id: usa, name: USA Office, currency: USD}
accounts:
  - {id: a1, code: "1001", name: Cash, balance: "150.25", type: ASSET}
journalEntries:
  - id: JE-1
    date: 2024-06-01
    reference: INV-1
    description: Ticket sale
    debitAccount: Cash
    creditAccount: Cash
    amount: "99.90"
    status: POSTED
expenses:
  - id: EXP-1
    date: 2024-06-02
    category: Rent
    amount: "1200.00"
    currency: USD
    office: USA Office
    exchangeRate: "1"
    paymentMethod: Card
bookings:
  - id: B1
    agentRef: AGT-1
    totalAmount: "500.00"
    currency: USD
    status: TICKETED
    amendStatus: NONE
    refundStatus: NONE
    createdAt: 2024-05-01
    origin: JFK
    destination: LHR
    travelDate: 2024-07-01
    passengerCount: 1
passengers:
  - id: PX1
    bookingID: B1
    name: Test Passenger
    ticketNumber: "001"
    status: TICKETED
    amendStatus: NONE
    refundStatus: NONE
    fareAmount: "500.00"
    fareType: Economy
invoices:
  - id: I1
    bookingID: B1
    passengerID: PX1
    amount: "500.00"
    currency: USD
    status: Paid
    actionType: TKT
    date: 2024-05-02
    dueDate: 2024-05-16
payments:
  - id: P1
    invoiceID: I1
    bookingID: B1
    passengerID: PX1
    amount: "500.00"
    currency: USD
    method: Card
    status: Completed
    date: 2024-05-03
    reference: CH-1
`

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSnapshot(t *testing.T) {
	snap, err := mockdata.LoadSnapshot(writeSnapshot(t, sampleSnapshot))
	require.NoError(t, err)

	require.Len(t, snap.Currencies, 1)
	assert.Equal(t, "USD", snap.Currencies[0].Code)

	require.Len(t, snap.Accounts, 1)
	assert.True(t, snap.Accounts[0].Balance.Equal(decimal.RequireFromString("150.25")))
	assert.Equal(t, domain.AccountTypeAsset, snap.Accounts[0].AccountType)

	require.Len(t, snap.Bookings, 1)
	assert.Equal(t, domain.BookingTicketed, snap.Bookings[0].Status)
	assert.Equal(t, 2024, snap.Bookings[0].CreatedAt.Year())

	require.Len(t, snap.Payments, 1)
	assert.Equal(t, domain.PaymentCompleted, snap.Payments[0].Status)
}

func TestLoadSnapshot_BadAmount(t *testing.T) {
	content := "accounts:\n  - {id: a1, code: \"1001\", name: Cash, balance: \"not-a-number\", type: ASSET}\n"

	_, err := mockdata.LoadSnapshot(writeSnapshot(t, content))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSnapshotMalformed)
}

func TestLoadSnapshot_BadYAML(t *testing.T) {
	_, err := mockdata.LoadSnapshot(writeSnapshot(t, "currencies: [unclosed"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSnapshotMalformed)
}

func TestLoadSnapshot_MissingFile(t *testing.T) {
	_, err := mockdata.LoadSnapshot(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
