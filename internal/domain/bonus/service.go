package bonus

import (
	"context"

	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
)

type BonusService interface {
	// AddBonus records the bonus and immediately recomputes the affected
	// employee's payslip for the same period.
	AddBonus(ctx context.Context, req AddBonusRequest, by actor.Actor) (BonusResponse, error)
	ListBonuses(ctx context.Context, employeeID string, month, year int) ([]BonusResponse, error)
}
