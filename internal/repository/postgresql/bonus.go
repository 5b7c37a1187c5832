package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrms-labs/payroll-backend-go/internal/domain/bonus"
	"github.com/hrms-labs/payroll-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepository{db: db}
}

func (r *bonusRepository) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.New().String()
	}

	query := `
		INSERT INTO bonuses (id, employee_id, amount, month, year, description, added_by, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, employee_id, amount, month, year, description, added_by, added_at
	`

	var created bonus.Bonus
	err := q.QueryRow(ctx, query,
		b.ID, b.EmployeeID, b.Amount, b.Month, b.Year, b.Description, b.AddedBy,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Amount, &created.Month, &created.Year,
		&created.Description, &created.AddedBy, &created.AddedAt,
	)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}

	return created, nil
}

func (r *bonusRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month, year int) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, month, year, description, added_by, added_at
		FROM bonuses
		WHERE employee_id = $1 AND month = $2 AND year = $3
		ORDER BY added_at
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		if err := rows.Scan(
			&b.ID, &b.EmployeeID, &b.Amount, &b.Month, &b.Year,
			&b.Description, &b.AddedBy, &b.AddedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bonus: %w", err)
		}
		bonuses = append(bonuses, b)
	}

	return bonuses, nil
}

func (r *bonusRepository) SumByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM bonuses
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, month, year).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum bonuses: %w", err)
	}

	return sum, nil
}
