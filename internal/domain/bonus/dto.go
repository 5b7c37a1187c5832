package bonus

import (
	"time"

	"github.com/hrms-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddBonusRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
}

func (r *AddBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if !validator.IsValidPeriod(r.Month, r.Year) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month/year is not a valid pay period"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BonusResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description"`
	AddedBy     string          `json:"added_by"`
	AddedAt     time.Time       `json:"added_at"`
}
