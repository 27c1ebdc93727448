package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	GetDebt(ctx context.Context, id uuid.UUID) (*Debt, error)
	ListDebts(ctx context.Context) ([]*Debt, error)
	ListIncomes(ctx context.Context) ([]*Income, error)
	ListFixedCosts(ctx context.Context) ([]*FixedCost, error)
	GetProfile(ctx context.Context) (*Profile, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Debt, error) {
	return s.repo.GetDebt(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Debt, error) {
	return s.repo.ListDebts(ctx)
}

func (s *Service) Profile(ctx context.Context) (*Profile, error) {
	return s.repo.GetProfile(ctx)
}

// Snapshot aggregates the financial records into the affordability input for
// the given debt: total monthly income, total fixed costs and the sum of
// monthly payments of all debts under an active payment plan. The target
// debt's own payment stays in that sum; the affordability engine subtracts
// it again when the debt itself is under a plan.
func (s *Service) Snapshot(ctx context.Context, debtID uuid.UUID) (*Debt, affordability.Snapshot, error) {
	d, err := s.repo.GetDebt(ctx, debtID)
	if err != nil {
		return nil, affordability.Snapshot{}, fmt.Errorf("getting debt: %w", err)
	}

	incomes, err := s.repo.ListIncomes(ctx)
	if err != nil {
		return nil, affordability.Snapshot{}, fmt.Errorf("listing incomes: %w", err)
	}

	costs, err := s.repo.ListFixedCosts(ctx)
	if err != nil {
		return nil, affordability.Snapshot{}, fmt.Errorf("listing fixed costs: %w", err)
	}

	debts, err := s.repo.ListDebts(ctx)
	if err != nil {
		return nil, affordability.Snapshot{}, fmt.Errorf("listing debts: %w", err)
	}

	incomeSum := decimal.Zero
	for _, in := range incomes {
		incomeSum = incomeSum.Add(in.Amount)
	}

	costSum := decimal.Zero
	for _, c := range costs {
		costSum = costSum.Add(c.Amount)
	}

	// Only debts under a running payment plan carry a monthly obligation; a
	// paused arrangement costs nothing this month.
	commitments := decimal.Zero

	for _, other := range debts {
		if other.Status != StatusBetalingsregeling || other.MonthlyPayment == nil {
			continue
		}

		commitments = commitments.Add(*other.MonthlyPayment)
	}

	snap := affordability.Snapshot{
		FixedMonthlyIncome:          incomeSum.InexactFloat64(),
		FixedMonthlyCosts:           costSum.InexactFloat64(),
		ExistingArrangementPayments: commitments.InexactFloat64(),
		UnderPaymentPlan:            d.Status == StatusBetalingsregeling,
	}

	if d.MonthlyPayment != nil {
		monthly := d.MonthlyPayment.InexactFloat64()
		snap.DebtMonthlyPayment = &monthly
	}

	return d, snap, nil
}
