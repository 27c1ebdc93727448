// Package affordability computes the monthly repayment capacity (VTLB) of a
// debtor and the resolution plan that follows from it. Everything in this
// package is pure: same snapshot in, same breakdown out.
package affordability

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Shares of disposable income reserved for day-to-day costs, savings buffer
// and debt repayment. They always sum to 1.
var (
	InterimCostsShare = decimal.NewFromFloat(0.60)
	BufferShare       = decimal.NewFromFloat(0.25)
	RepaymentShare    = decimal.NewFromFloat(0.15)
)

// MinimumViableCapacity is the monthly amount below which proposing an
// installment plan is pointless; a payment pause is requested instead.
// OpeningOfferCap keeps the first installment offer conservative.
var (
	MinimumViableCapacity = decimal.NewFromInt(10)
	OpeningOfferCap       = decimal.NewFromInt(50)
)

var ErrInvalidDebtAmount = errors.New("debt amount must be greater than zero")

// Snapshot is the financial input for one breakdown computation. Amounts are
// monthly euro figures. DebtMonthlyPayment is only set once an arrangement
// exists for the debt under review; UnderPaymentPlan reports whether that
// debt's status is exactly betalingsregeling.
type Snapshot struct {
	FixedMonthlyIncome          float64
	FixedMonthlyCosts           float64
	ExistingArrangementPayments float64
	DebtMonthlyPayment          *float64
	UnderPaymentPlan            bool
}

// Breakdown is the derived budget split. DisposableIncome may be negative;
// that signals crisis and is propagated, never clamped. The three budget
// shares sum to DisposableIncome exactly.
type Breakdown struct {
	DisposableIncome             decimal.Decimal
	InterimCostsBudget           decimal.Decimal
	BufferBudget                 decimal.Decimal
	RepaymentCapacity            decimal.Decimal
	EffectiveExistingCommitments decimal.Decimal
	AvailableForNewArrangement   decimal.Decimal

	// Warnings lists input fields that were defaulted to zero because they
	// were non-finite. The breakdown is still usable, just less reliable.
	Warnings []string
}

// PlanKind tags the three mutually exclusive resolution shapes.
type PlanKind string

const (
	PlanPayInFull   PlanKind = "pay_in_full"
	PlanInstallment PlanKind = "installment"
	PlanDebtRest    PlanKind = "debt_rest"
)

// Plan is the computed recommendation for a single debt.
type Plan struct {
	Kind          PlanKind
	MonthlyAmount decimal.Decimal // zero unless Kind == PlanInstallment
	Months        int64           // zero unless Kind == PlanInstallment
}

// ComputeBreakdown derives the budget split from a snapshot. It is total for
// any numeric input: NaN and infinities are treated as zero and reported in
// Warnings so the caller can flag the estimate as degraded.
func ComputeBreakdown(s Snapshot) Breakdown {
	var warnings []string

	sanitize := func(v float64, field string) decimal.Decimal {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			warnings = append(warnings, fmt.Sprintf("%s is not a finite number, using 0", field))
			return decimal.Zero
		}

		return decimal.NewFromFloat(v)
	}

	income := sanitize(s.FixedMonthlyIncome, "fixed_monthly_income")
	costs := sanitize(s.FixedMonthlyCosts, "fixed_monthly_costs")
	commitments := sanitize(s.ExistingArrangementPayments, "existing_arrangement_payments")

	disposable := income.Sub(costs)
	repayment := disposable.Mul(RepaymentShare)

	// When the debt under review already has a payment plan running, its own
	// monthly amount sits inside the commitment sum and must not count
	// against the room for modifying that same plan. A paused debt has no
	// active obligation, so nothing is subtracted for it.
	effective := commitments
	if s.UnderPaymentPlan && s.DebtMonthlyPayment != nil {
		effective = effective.Sub(sanitize(*s.DebtMonthlyPayment, "debt_monthly_payment"))
	}

	available := repayment.Sub(effective)
	if available.IsNegative() {
		available = decimal.Zero
	}

	return Breakdown{
		DisposableIncome:             disposable,
		InterimCostsBudget:           disposable.Mul(InterimCostsShare),
		BufferBudget:                 disposable.Mul(BufferShare),
		RepaymentCapacity:            repayment,
		EffectiveExistingCommitments: effective,
		AvailableForNewArrangement:   available,
		Warnings:                     warnings,
	}
}

// ComputePlan applies the three-way branch to a breakdown. A zero or negative
// debt amount is invalid input and must be rejected by the caller before a
// workflow is started.
func ComputePlan(b Breakdown, debtAmount decimal.Decimal) (Plan, error) {
	if !debtAmount.IsPositive() {
		return Plan{}, ErrInvalidDebtAmount
	}

	available := b.AvailableForNewArrangement

	// The boundary is inclusive: a debt exactly equal to the available room
	// is settled in one payment.
	if debtAmount.LessThanOrEqual(available) {
		return Plan{Kind: PlanPayInFull}, nil
	}

	if available.GreaterThan(MinimumViableCapacity) {
		monthly := decimal.Min(available, OpeningOfferCap)
		months := debtAmount.Div(monthly).Ceil().IntPart()

		return Plan{
			Kind:          PlanInstallment,
			MonthlyAmount: monthly,
			Months:        months,
		}, nil
	}

	return Plan{Kind: PlanDebtRest}, nil
}
