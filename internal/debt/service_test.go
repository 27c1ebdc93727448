package debt_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"schuldwijzer/internal/debt"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestSnapshot_AggregatesFinancials(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo)

	target := &debt.Debt{
		ID:     uuid.New(),
		Amount: dec("430.50"),
		Status: debt.StatusInactive,
	}

	repo.EXPECT().GetDebt(gomock.Any(), target.ID).Return(target, nil)
	repo.EXPECT().ListIncomes(gomock.Any()).Return([]*debt.Income{
		{Description: "salaris", Amount: dec("1850")},
		{Description: "toeslagen", Amount: dec("312.40")},
	}, nil)
	repo.EXPECT().ListFixedCosts(gomock.Any()).Return([]*debt.FixedCost{
		{Description: "huur", Amount: dec("780")},
		{Description: "energie", Amount: dec("145.60")},
	}, nil)
	repo.EXPECT().ListDebts(gomock.Any()).Return([]*debt.Debt{
		target,
		{Status: debt.StatusBetalingsregeling, MonthlyPayment: decPtr("35")},
		{Status: debt.StatusBetalingsregeling, MonthlyPayment: decPtr("22.50")},
		{Status: debt.StatusPauze, MonthlyPayment: decPtr("40")},
		{Status: debt.StatusWachtend, MonthlyPayment: decPtr("15")},
		{Status: debt.StatusBetalingsregeling, MonthlyPayment: nil},
	}, nil)

	got, snap, err := svc.Snapshot(context.Background(), target.ID)
	require.NoError(t, err)

	assert.Equal(t, target, got)
	assert.InDelta(t, 2162.40, snap.FixedMonthlyIncome, 0.001)
	assert.InDelta(t, 925.60, snap.FixedMonthlyCosts, 0.001)

	// Only betalingsregeling rows with a payment amount count as commitments.
	assert.InDelta(t, 57.50, snap.ExistingArrangementPayments, 0.001)
	assert.False(t, snap.UnderPaymentPlan)
	assert.Nil(t, snap.DebtMonthlyPayment)
}

func TestSnapshot_TargetUnderPaymentPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo)

	target := &debt.Debt{
		ID:             uuid.New(),
		Amount:         dec("600"),
		Status:         debt.StatusBetalingsregeling,
		MonthlyPayment: decPtr("45"),
	}

	repo.EXPECT().GetDebt(gomock.Any(), target.ID).Return(target, nil)
	repo.EXPECT().ListIncomes(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListFixedCosts(gomock.Any()).Return(nil, nil)
	repo.EXPECT().ListDebts(gomock.Any()).Return([]*debt.Debt{target}, nil)

	_, snap, err := svc.Snapshot(context.Background(), target.ID)
	require.NoError(t, err)

	assert.True(t, snap.UnderPaymentPlan)
	require.NotNil(t, snap.DebtMonthlyPayment)
	assert.InDelta(t, 45, *snap.DebtMonthlyPayment, 0.001)

	// The target's own payment stays in the commitments sum.
	assert.InDelta(t, 45, snap.ExistingArrangementPayments, 0.001)
}

func TestSnapshot_UnknownDebt(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetDebt(gomock.Any(), id).Return(nil, debt.ErrNotFound)

	_, _, err := svc.Snapshot(context.Background(), id)
	assert.ErrorIs(t, err, debt.ErrNotFound)
}

func TestSnapshot_RepositoryFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := debt.NewMockRepository(ctrl)
	svc := debt.NewService(repo)

	target := &debt.Debt{ID: uuid.New(), Amount: dec("100")}
	repoErr := errors.New("connection reset")

	repo.EXPECT().GetDebt(gomock.Any(), target.ID).Return(target, nil)
	repo.EXPECT().ListIncomes(gomock.Any()).Return(nil, repoErr)

	_, _, err := svc.Snapshot(context.Background(), target.ID)
	assert.ErrorIs(t, err, repoErr)
}
