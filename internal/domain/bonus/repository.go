package bonus

import (
	"context"

	"github.com/shopspring/decimal"
)

type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]Bonus, error)
	// SumByEmployeePeriod totals all bonus amounts for the exact
	// (employee, month, year) key; zero when no rows exist.
	SumByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error)
}
