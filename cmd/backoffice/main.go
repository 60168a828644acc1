package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	portssvc "github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/ports/services"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/services"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/mockdata"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/platform/config"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/repositories/memory"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger, scoped to this run.
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)})
	logger := slog.New(handler).With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	snapshot := mockdata.Default()
	if cfg.SeedFile != "" {
		snapshot, err = mockdata.LoadSnapshot(cfg.SeedFile)
		if err != nil {
			logger.Error("Failed to load seed snapshot", slog.String("path", cfg.SeedFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Seeded data context from snapshot file", slog.String("path", cfg.SeedFile))
	} else {
		logger.Info("Seeded data context from built-in demo dataset")
	}

	store := memory.NewStore(snapshot)
	container := services.NewContainer(store)

	logger.Info("Data context ready",
		slog.Int("currencies", len(store.ListCurrencies())),
		slog.Int("offices", len(store.ListOffices())),
		slog.Int("accounts", len(store.ListAccounts())),
		slog.Int("bookings", len(store.ListBookings())),
		slog.Int("invoices", len(store.ListInvoices())),
		slog.Int("payments", len(store.ListPayments())),
	)

	runValidationSweep(logger, store, container)
	runSuggestionSweep(logger, store, container)
	runEligibilitySweep(logger, store, container)
	runPaymentCompletion(logger, store, container)
	runReports(logger, cfg.BaseCurrency, store, container)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func runValidationSweep(logger *slog.Logger, store *memory.Store, c *portssvc.ServiceContainer) {
	for _, entry := range store.ListJournalEntries() {
		result := c.Validator.ValidateJournalEntry(entry)
		if !result.Valid() {
			logger.Warn("Journal entry failed validation",
				slog.String("entry_id", entry.EntryID),
				slog.Any("errors", result.Errors()),
			)
		}
	}
	for _, expense := range store.ListExpenses() {
		result := c.Validator.ValidateExpense(expense)
		if !result.Valid() {
			logger.Warn("Expense failed validation",
				slog.String("expense_id", expense.ExpenseID),
				slog.Any("errors", result.Errors()),
			)
			continue
		}
		if warnings := result.Warnings(); len(warnings) > 0 {
			logger.Info("Expense validated with warnings",
				slog.String("expense_id", expense.ExpenseID),
				slog.Any("warnings", warnings),
			)
		}
	}
}

func runSuggestionSweep(logger *slog.Logger, store *memory.Store, c *portssvc.ServiceContainer) {
	for _, currency := range store.ListCurrencies() {
		office := c.Suggestion.SuggestedOffice(currency.Code)
		if office == nil {
			logger.Debug("No office suggestion for currency", slog.String("currency", currency.Code))
			continue
		}
		logger.Debug("Office suggestion",
			slog.String("currency", currency.Code),
			slog.String("office", office.Name),
		)
	}
}

func runEligibilitySweep(logger *slog.Logger, store *memory.Store, c *portssvc.ServiceContainer) {
	for _, booking := range store.ListBookings() {
		eligible := c.Eligibility.IsBookingRefundEligible(booking)
		logger.Info("Booking refund eligibility",
			slog.String("booking_id", booking.BookingID),
			slog.String("status", string(booking.Status)),
			slog.String("status_variant", string(booking.Status.Variant())),
			slog.String("refund_status", string(booking.RefundStatus)),
			slog.String("refund_variant", string(booking.RefundStatus.Variant())),
			slog.Bool("refund_eligible", eligible),
		)
	}
}

// runPaymentCompletion settles the first pending payment and commits the
// resulting eligibility changes back into the store.
func runPaymentCompletion(logger *slog.Logger, store *memory.Store, c *portssvc.ServiceContainer) {
	var pending *domain.Payment
	payments := store.ListPayments()
	for i := range payments {
		if payments[i].Status == domain.PaymentPending {
			pending = &payments[i]
			break
		}
	}
	if pending == nil {
		return
	}

	completed := *pending
	completed.Status = domain.PaymentCompleted
	for i := range payments {
		if payments[i].PaymentID == completed.PaymentID {
			payments[i] = completed
		}
	}
	store.ReplacePayments(payments)

	delta := c.Eligibility.HandlePaymentCompleted(completed, store.ListBookings(), store.ListPassengers())
	if delta.Empty() {
		logger.Info("Payment completed with no eligibility changes",
			slog.String("payment_id", completed.PaymentID),
			slog.String("invoice_id", completed.InvoiceID),
		)
		return
	}
	if delta.UpdatedBookings != nil {
		store.ReplaceBookings(delta.UpdatedBookings)
	}
	if delta.UpdatedPassengers != nil {
		store.ReplacePassengers(delta.UpdatedPassengers)
	}
	nowEligible := false
	if booking := store.FindBookingByID(completed.BookingID); booking != nil {
		nowEligible = c.Eligibility.IsBookingRefundEligible(*booking)
	}
	logger.Info("Payment completed, eligibility recalculated",
		slog.String("payment_id", completed.PaymentID),
		slog.String("invoice_id", completed.InvoiceID),
		slog.String("booking_id", completed.BookingID),
		slog.Bool("booking_now_eligible", nowEligible),
	)
}

func runReports(logger *slog.Logger, baseCurrency string, store *memory.Store, c *portssvc.ServiceContainer) {
	base := store.FindCurrencyByCode(baseCurrency)
	if base == nil {
		base = &domain.Currency{Code: baseCurrency, Precision: 2}
	}

	for _, row := range c.Reporting.ExpenseTotalsByOffice() {
		logger.Info("Expense total by office",
			slog.String("office", row.Office),
			slog.Int("count", row.Count),
			slog.String("total", utils.FormatWithCurrency(row.Total, *base)),
		)
	}
	for _, row := range c.Reporting.BookingTotalsByStatus() {
		logger.Info("Booking total by status",
			slog.String("status", string(row.Status)),
			slog.Int("count", row.Count),
			slog.String("total", row.Total.String()),
		)
	}
	pipeline := c.Reporting.RefundPipeline()
	logger.Info("Refund pipeline",
		slog.Int("clear", pipeline.Clear),
		slog.Int("applied", pipeline.Applied),
		slog.Int("in_process", pipeline.InProcess),
		slog.Int("refunded", pipeline.Refunded),
		slog.Int("rejected", pipeline.Rejected),
	)
}
