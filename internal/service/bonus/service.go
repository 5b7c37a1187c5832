package bonus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hrms-labs/payroll-backend-go/internal/domain/bonus"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/employee"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/payslip"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/actor"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/validator"
)

type BonusServiceImpl struct {
	bonusRepo      bonus.BonusRepository
	employeeRepo   employee.EmployeeRepository
	payrollService payslip.PayrollService
}

func NewBonusService(
	bonusRepo bonus.BonusRepository,
	employeeRepo employee.EmployeeRepository,
	payrollService payslip.PayrollService,
) bonus.BonusService {
	return &BonusServiceImpl{
		bonusRepo:      bonusRepo,
		employeeRepo:   employeeRepo,
		payrollService: payrollService,
	}
}

// AddBonus stores the bonus and recomputes the employee's payslip for the
// same period, so a stored payslip never lags its bonus total. The recompute
// is best-effort when no payslip rerun is possible for the employee; the
// bonus row itself is the source of truth and the next run will pick it up.
func (s *BonusServiceImpl) AddBonus(ctx context.Context, req bonus.AddBonusRequest, by actor.Actor) (bonus.BonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.BonusResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return bonus.BonusResponse{}, err
	}

	created, err := s.bonusRepo.Create(ctx, bonus.Bonus{
		EmployeeID:  emp.ID,
		Amount:      req.Amount,
		Month:       req.Month,
		Year:        req.Year,
		Description: req.Description,
		AddedBy:     by.Label(),
	})
	if err != nil {
		return bonus.BonusResponse{}, fmt.Errorf("failed to create bonus: %w", err)
	}

	if _, err := s.payrollService.RecomputeForEmployee(ctx, emp.ID, req.Month, req.Year, by); err != nil {
		slog.Warn("bonus stored but payslip recompute failed",
			"bonus_id", created.ID, "employee_id", emp.ID,
			"month", req.Month, "year", req.Year, "error", err)
	}

	return toBonusResponse(created), nil
}

func (s *BonusServiceImpl) ListBonuses(ctx context.Context, employeeID string, month, year int) ([]bonus.BonusResponse, error) {
	if !validator.IsValidPeriod(month, year) {
		return nil, fmt.Errorf("%w: month=%d year=%d", payslip.ErrInvalidPeriod, month, year)
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	bonuses, err := s.bonusRepo.ListByEmployeePeriod(ctx, employeeID, month, year)
	if err != nil {
		return nil, err
	}

	responses := make([]bonus.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		responses = append(responses, toBonusResponse(b))
	}
	return responses, nil
}

func toBonusResponse(b bonus.Bonus) bonus.BonusResponse {
	return bonus.BonusResponse{
		ID:          b.ID,
		EmployeeID:  b.EmployeeID,
		Amount:      b.Amount,
		Month:       b.Month,
		Year:        b.Year,
		Description: b.Description,
		AddedBy:     b.AddedBy,
		AddedAt:     b.AddedAt,
	}
}
