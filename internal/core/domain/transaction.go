package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single booked movement on an account, as reported by the
// aggregation provider.
type Transaction struct {
	ID          string
	AccountID   string
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
}
