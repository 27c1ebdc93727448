package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"schuldwijzer/internal/debt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDebt reads a debt row from the scanner and returns a populated Debt.
// Expected column order: id, creditor_name, creditor_address, creditor_postal_code,
// creditor_city, dossier_number, amount, status, monthly_payment, payment_plan_date,
// resolved_date, resolved_reason, created_at, updated_at
func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt

	var statusStr string

	var resolvedReason sql.NullString

	if err := s.Scan(
		&d.ID, &d.CreditorName, &d.CreditorAddress, &d.CreditorPostalCode,
		&d.CreditorCity, &d.DossierNumber, &d.Amount, &statusStr,
		&d.MonthlyPayment, &d.PaymentPlanDate,
		&d.ResolvedDate, &resolvedReason,
		&d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}

	d.Status = debt.Status(statusStr)
	d.ResolvedReason = resolvedReason.String

	return &d, nil
}

const selectDebtColumns = `
	d.id, d.creditor_name, d.creditor_address, d.creditor_postal_code,
	d.creditor_city, d.dossier_number, d.amount, d.status,
	d.monthly_payment, d.payment_plan_date, d.resolved_date, d.resolved_reason,
	d.created_at, d.updated_at
`

func (s *Store) GetDebt(ctx context.Context, id uuid.UUID) (*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + `
		FROM debts d
		WHERE d.id = $1`

	d, err := scanDebt(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("getting debt: %w", err)
	}

	return d, nil
}

func (s *Store) ListDebts(ctx context.Context) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + `
		FROM debts d
		ORDER BY d.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debt rows: %w", err)
	}

	return debts, nil
}

func (s *Store) ListIncomes(ctx context.Context) ([]*debt.Income, error) {
	query := `SELECT id, description, amount FROM incomes ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing incomes: %w", err)
	}
	defer rows.Close()

	var incomes []*debt.Income

	for rows.Next() {
		var in debt.Income
		if err := rows.Scan(&in.ID, &in.Description, &in.Amount); err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		incomes = append(incomes, &in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income rows: %w", err)
	}

	return incomes, nil
}

func (s *Store) ListFixedCosts(ctx context.Context) ([]*debt.FixedCost, error) {
	query := `SELECT id, description, amount FROM fixed_costs ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing fixed costs: %w", err)
	}
	defer rows.Close()

	var costs []*debt.FixedCost

	for rows.Next() {
		var c debt.FixedCost
		if err := rows.Scan(&c.ID, &c.Description, &c.Amount); err != nil {
			return nil, fmt.Errorf("scanning fixed cost: %w", err)
		}

		costs = append(costs, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fixed cost rows: %w", err)
	}

	return costs, nil
}

// GetProfile returns the single debtor profile row. A missing row is not an
// error: letters render placeholders for anything left empty.
func (s *Store) GetProfile(ctx context.Context) (*debt.Profile, error) {
	query := `SELECT name, address, postal_code, city, email, phone FROM profile LIMIT 1`

	var p debt.Profile

	err := s.db.QueryRowContext(ctx, query).Scan(
		&p.Name, &p.Address, &p.PostalCode, &p.City, &p.Email, &p.Phone,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &debt.Profile{}, nil
		}

		return nil, fmt.Errorf("getting profile: %w", err)
	}

	return &p, nil
}
