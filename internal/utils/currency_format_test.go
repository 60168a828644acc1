package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/core/domain"
	"github.com/g4gautam/tabbed-finance-flow-sub000/internal/utils"
)

func TestFormatWithCurrency(t *testing.T) {
	usd := domain.Currency{Code: "USD", Symbol: "$", Precision: 2}

	assert.Equal(t, "$12.35", utils.FormatWithCurrency(decimal.RequireFromString("12.345"), usd))
	assert.Equal(t, "$0.00", utils.FormatWithCurrency(decimal.Zero, usd))
	assert.Equal(t, "$-5.00", utils.FormatWithCurrency(decimal.RequireFromString("-5"), usd))
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12", utils.FormatWithPrecision(decimal.RequireFromString("12.4"), 0))
	assert.Equal(t, "12.40", utils.FormatWithPrecision(decimal.RequireFromString("12.4"), 2))
}
