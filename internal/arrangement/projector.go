package arrangement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/debt"
	"schuldwijzer/internal/letter"
)

// Outcome is the creditor's response to a sent letter.
type Outcome string

const (
	OutcomeAccepted   Outcome = "accepted"
	OutcomeRejected   Outcome = "rejected"
	OutcomeNoResponse Outcome = "no_response"
)

// Resolved reasons recorded on the debt so that shared target states stay
// traceable to the strategy that produced them.
const (
	ReasonOneTimePayment  = "one_time_payment"
	ReasonDisputeAccepted = "dispute_accepted"
	ReasonAlreadyPaid     = "already_paid"
	ReasonVerjaring       = "verjaring_accepted"
)

// StatusChange is the projected debt-record update for one outcome. Apply is
// false when the debt record does not change at all (only the proposal moves
// on). ProposalStatus is always set.
type StatusChange struct {
	Apply           bool
	Status          debt.Status
	MonthlyPayment  *decimal.Decimal
	PaymentPlanDate *time.Time
	NewAmount       *decimal.Decimal
	ResolvedDate    *time.Time
	ResolvedReason  string
	SuggestReminder bool
	ProposalStatus  ProposalStatus
}

// Project is the single decision table that maps strategy type and creditor
// outcome to the debt's next state. Several pairs share a target state for
// different reasons; the resolved reason keeps them apart. Kept as one
// explicit switch on purpose: every template type must appear here.
func Project(tmpl letter.TemplateType, outcome Outcome, planKind affordability.PlanKind, prop *Proposal, today time.Time) (StatusChange, error) {
	change := StatusChange{}

	switch outcome {
	case OutcomeAccepted:
		change.ProposalStatus = ProposalAccepted
	case OutcomeRejected:
		change.ProposalStatus = ProposalRejected
	case OutcomeNoResponse:
		change.ProposalStatus = ProposalReminderSent
		change.SuggestReminder = true
	default:
		return StatusChange{}, fmt.Errorf("outcome %q: %w", outcome, ErrInvalidOutcome)
	}

	switch tmpl {
	case letter.TypeProposal:
		return projectMainline(change, outcome, planKind, prop, today)

	case letter.TypeDispute:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusAfbetaald
			change.ResolvedDate = &today
			change.ResolvedReason = ReasonDisputeAccepted
		case OutcomeRejected:
			change.Apply = true
			change.Status = debt.StatusInactive
		case OutcomeNoResponse:
			// Debt untouched; only the proposal moves to reminder_sent.
		}

		return change, nil

	case letter.TypePartialRecognition:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusBetalingsregeling
			change.NewAmount = prop.RecognizedAmount
			change.MonthlyPayment = prop.MonthlyAmount
			change.PaymentPlanDate = &today
		case OutcomeRejected:
			change.Apply = true
			change.Status = debt.StatusInactive
		case OutcomeNoResponse:
		}

		return change, nil

	case letter.TypeAlreadyPaid, letter.TypeVerjaring:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusAfbetaald
			change.ResolvedDate = &today
			change.ResolvedReason = ReasonAlreadyPaid
			if tmpl == letter.TypeVerjaring {
				change.ResolvedReason = ReasonVerjaring
			}
		case OutcomeRejected:
			// Back to inactive; the rejection letter advises manual
			// follow-up, which is outside this engine.
			change.Apply = true
			change.Status = debt.StatusInactive
		case OutcomeNoResponse:
		}

		return change, nil

	case letter.TypeIncassokostenBezwaar:
		switch outcome {
		case OutcomeAccepted:
			// Costs withdrawn: the claim shrinks to the acknowledged
			// principal and negotiation restarts from there.
			change.Apply = true
			change.Status = debt.StatusInactive
			change.NewAmount = prop.RecognizedAmount
		case OutcomeRejected:
			change.Apply = true
			change.Status = debt.StatusInactive
		case OutcomeNoResponse:
		}

		return change, nil

	case letter.TypeLoweringAmount:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusBetalingsregeling
			change.MonthlyPayment = prop.MonthlyAmount
			change.PaymentPlanDate = &today
		case OutcomeRejected, OutcomeNoResponse:
			// Existing arrangement continues unchanged.
		}

		return change, nil

	case letter.TypePaymentHoliday:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusPauze
		case OutcomeRejected, OutcomeNoResponse:
		}

		return change, nil

	case letter.TypeStopDebtCounseling:
		// Informational letter; no creditor outcome changes the debt.
		return change, nil

	default:
		return StatusChange{}, fmt.Errorf("template %q: %w", tmpl, letter.ErrUnknownTemplate)
	}
}

func projectMainline(change StatusChange, outcome Outcome, planKind affordability.PlanKind, prop *Proposal, today time.Time) (StatusChange, error) {
	switch planKind {
	case affordability.PlanInstallment:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusBetalingsregeling
			change.MonthlyPayment = prop.MonthlyAmount
			change.PaymentPlanDate = &today
		case OutcomeRejected, OutcomeNoResponse:
			change.Apply = true
			change.Status = debt.StatusInactive
		}

	case affordability.PlanDebtRest:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusPauze
		case OutcomeRejected, OutcomeNoResponse:
			change.Apply = true
			change.Status = debt.StatusInactive
		}

	case affordability.PlanPayInFull:
		switch outcome {
		case OutcomeAccepted:
			change.Apply = true
			change.Status = debt.StatusAfbetaald
			change.ResolvedDate = &today
			change.ResolvedReason = ReasonOneTimePayment
		case OutcomeRejected, OutcomeNoResponse:
			change.Apply = true
			change.Status = debt.StatusInactive
		}

	default:
		return StatusChange{}, fmt.Errorf("mainline proposal without a plan kind (%q): %w", planKind, ErrPreconditionNotMet)
	}

	return change, nil
}
