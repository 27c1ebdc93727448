// Package arrangement drives the debt-resolution workflow: step progression,
// strategy dispatch, proposal lifecycle and the resulting debt status
// transitions. It is the only component that mutates persisted state, and it
// assumes a single actor per debt (one debtor, one session); concurrent
// workflows for the same debt are explicitly not guarded against.
package arrangement

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/letter"
)

// State is the workflow position for one debt, derived from the progress
// flags: the first incomplete step wins, so an inconsistent flag combination
// (response recorded while the letter was never sent) normalizes to the
// earliest open step instead of being representable as its own state.
type State string

const (
	StateBudgetReview     State = "budget_review"
	StateLetterDispatch   State = "letter_dispatch"
	StateAwaitingResponse State = "awaiting_response"
	StateResolved         State = "resolved"
)

// Progress tracks the three workflow steps for one debt. The draft fields
// hold the letter frozen at budget confirmation, until dispatch copies it
// into an immutable proposal. Created on first use, never deleted here.
type Progress struct {
	DebtID           uuid.UUID
	BudgetConfirmed  bool
	LetterSent       bool
	ResponseRecorded bool
	LetterSentDate   *time.Time

	PlanKind           affordability.PlanKind
	DraftSubject       string
	DraftBody          string
	DraftAttachment    string
	DraftMonthlyAmount *decimal.Decimal
	DraftMonths        *int64

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// State derives the workflow state from the step flags.
func (p *Progress) State() State {
	switch {
	case !p.BudgetConfirmed:
		return StateBudgetReview
	case !p.LetterSent:
		return StateLetterDispatch
	case !p.ResponseRecorded:
		return StateAwaitingResponse
	default:
		return StateResolved
	}
}

// ProposalStatus is the lifecycle of one sent letter. Once it leaves sent it
// is terminal; a new negotiation round appends a new proposal.
type ProposalStatus string

const (
	ProposalSent         ProposalStatus = "sent"
	ProposalAccepted     ProposalStatus = "accepted"
	ProposalRejected     ProposalStatus = "rejected"
	ProposalReminderSent ProposalStatus = "reminder_sent"
)

// Proposal is the append-only record of one letter instance. LetterContent
// is frozen at send time and independent of later edits to the source data.
// The amount and date columns carry the strategy-specific payload:
// RecognizedAmount doubles as the acknowledged principal for the
// collection-cost objection.
type Proposal struct {
	ID             uuid.UUID
	DebtID         uuid.UUID
	TemplateType   letter.TemplateType
	Subject        string
	LetterContent  string
	AttachmentHint string
	SentDate       time.Time
	Status         ProposalStatus

	MonthlyAmount    *decimal.Decimal
	Months           *int64
	RecognizedAmount *decimal.Decimal
	DisputedAmount   *decimal.Decimal
	Reason           string
	PaymentDate      *time.Time
	PaymentReference string

	CreatedAt time.Time
}

var (
	ErrNotFound           = errors.New("arrangement progress not found")
	ErrProposalNotFound   = errors.New("proposal not found")
	ErrPreconditionNotMet = errors.New("previous workflow step not completed")
	ErrAlreadySent        = errors.New("a letter was already marked as sent for this debt")
	ErrNoDraftLetter      = errors.New("no letter has been frozen for dispatch")
	ErrInvalidOutcome     = errors.New("invalid creditor outcome")
	ErrInvalidAction      = errors.New("invalid workflow action")
)

// WriteStep identifies which persisted record a failed dispatch sequence was
// writing, so the caller can resume instead of duplicating work.
type WriteStep string

const (
	WriteProposal   WriteStep = "proposal"
	WriteProgress   WriteStep = "progress"
	WriteDebtStatus WriteStep = "debt_status"
)

// WriteError reports a persistence failure mid-sequence. The in-memory state
// machine never advances past the failed step.
type WriteError struct {
	Step WriteStep
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Step, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
