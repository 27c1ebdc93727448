package arrangement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/debt"
	"schuldwijzer/internal/letter"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=arrangement
type Repository interface {
	GetProgress(ctx context.Context, debtID uuid.UUID) (*Progress, error)
	CreateProgress(ctx context.Context, p *Progress) error
	UpdateProgress(ctx context.Context, p *Progress) error
	LatestProposal(ctx context.Context, debtID uuid.UUID) (*Proposal, error)
	ListProposals(ctx context.Context, debtID uuid.UUID) ([]*Proposal, error)

	BeginDispatch(ctx context.Context) (DispatchTx, error)
}

// DispatchTx stages the writes of one "mark as sent" or "record outcome"
// sequence so that either all of {proposal, progress, debt status} become
// visible or none do.
type DispatchTx interface {
	CreateProposal(ctx context.Context, p *Proposal) error
	UpdateProposalStatus(ctx context.Context, id uuid.UUID, status ProposalStatus) error
	UpdateProgress(ctx context.Context, p *Progress) error
	ApplyStatusChange(ctx context.Context, debtID uuid.UUID, change StatusChange) error
	Commit() error
	Rollback() error
}

// Action is a workflow operation requested through Advance.
type Action string

const (
	ActionStart          Action = "start"
	ActionConfirmBudget  Action = "confirm_budget"
	ActionMarkSent       Action = "mark_sent"
	ActionRecordResponse Action = "record_response"
	ActionSendDefense    Action = "send_defense"
)

// AdvanceParams carries the action-specific input.
type AdvanceParams struct {
	Outcome Outcome
	Payload letter.Payload
}

// AdvanceResult reports the workflow position after an action, plus whatever
// the action produced. The letter text survives here even when a later write
// fails, so it is never lost to the user.
type AdvanceResult struct {
	State        State
	Breakdown    *affordability.Breakdown
	Plan         *affordability.Plan
	Letter       *letter.Letter
	StatusChange *StatusChange
	Warnings     []string
}

type Service struct {
	repo  Repository
	debts *debt.Service
	now   func() time.Time
}

// NewService wires the state machine. now is injected so letter dates are
// testable; nil defaults to time.Now.
func NewService(repo Repository, debts *debt.Service, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}

	return &Service{repo: repo, debts: debts, now: now}
}

// today truncates the clock to a calendar date; time of day is never part of
// the workflow contract.
func (s *Service) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Advance is the single entry point for the presentation layer.
func (s *Service) Advance(ctx context.Context, debtID uuid.UUID, action Action, params AdvanceParams) (*AdvanceResult, error) {
	switch action {
	case ActionStart:
		return s.Start(ctx, debtID)
	case ActionConfirmBudget:
		return s.CompleteBudgetReview(ctx, debtID)
	case ActionMarkSent:
		return s.CompleteDispatch(ctx, debtID)
	case ActionRecordResponse:
		return s.RecordOutcome(ctx, debtID, params.Outcome)
	case ActionSendDefense:
		return s.SendDefense(ctx, debtID, params.Payload)
	default:
		return nil, fmt.Errorf("action %q: %w", action, ErrInvalidAction)
	}
}

// Start ensures a progress row exists for the debt and reports the current
// workflow state together with the computed breakdown and plan.
func (s *Service) Start(ctx context.Context, debtID uuid.UUID) (*AdvanceResult, error) {
	d, snap, err := s.debts.Snapshot(ctx, debtID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ensureProgress(ctx, debtID)
	if err != nil {
		return nil, err
	}

	breakdown := affordability.ComputeBreakdown(snap)

	result := &AdvanceResult{
		State:     progress.State(),
		Breakdown: &breakdown,
		Warnings:  breakdown.Warnings,
	}

	plan, err := affordability.ComputePlan(breakdown, d.Amount)
	if err != nil {
		return nil, fmt.Errorf("computing resolution plan: %w", err)
	}

	result.Plan = &plan

	return result, nil
}

// CompleteBudgetReview confirms step 1: it computes the resolution plan and
// freezes the matching letter on the progress record, ready for dispatch.
// Re-confirming while still in budget review recomputes the draft; once the
// letter went out the step is closed.
func (s *Service) CompleteBudgetReview(ctx context.Context, debtID uuid.UUID) (*AdvanceResult, error) {
	d, snap, err := s.debts.Snapshot(ctx, debtID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ensureProgress(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if progress.LetterSent {
		return nil, fmt.Errorf("budget review after dispatch: %w", ErrPreconditionNotMet)
	}

	breakdown := affordability.ComputeBreakdown(snap)

	plan, err := affordability.ComputePlan(breakdown, d.Amount)
	if err != nil {
		return nil, fmt.Errorf("computing resolution plan: %w", err)
	}

	built, err := s.buildProposalLetter(ctx, d, breakdown, plan)
	if err != nil {
		return nil, err
	}

	progress.BudgetConfirmed = true
	progress.PlanKind = plan.Kind
	progress.DraftSubject = built.Subject
	progress.DraftBody = built.Body
	progress.DraftAttachment = built.AttachmentHint
	progress.DraftMonthlyAmount = nil
	progress.DraftMonths = nil

	if plan.Kind == affordability.PlanInstallment {
		monthly := plan.MonthlyAmount
		months := plan.Months
		progress.DraftMonthlyAmount = &monthly
		progress.DraftMonths = &months
	}

	if err := s.repo.UpdateProgress(ctx, progress); err != nil {
		return nil, &WriteError{Step: WriteProgress, Err: err}
	}

	return &AdvanceResult{
		State:     progress.State(),
		Breakdown: &breakdown,
		Plan:      &plan,
		Letter:    &built,
		Warnings:  breakdown.Warnings,
	}, nil
}

// CompleteDispatch marks the frozen letter as sent: it appends the proposal
// record, stamps the progress row and moves the debt to wachtend, all as one
// staged write. Re-invoking for an already-sent letter is rejected before
// anything is written.
func (s *Service) CompleteDispatch(ctx context.Context, debtID uuid.UUID) (*AdvanceResult, error) {
	progress, err := s.repo.GetProgress(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("getting progress: %w", err)
	}

	if progress.LetterSent {
		return nil, ErrAlreadySent
	}

	if !progress.BudgetConfirmed {
		return nil, fmt.Errorf("dispatch before budget review: %w", ErrPreconditionNotMet)
	}

	if progress.DraftBody == "" {
		return nil, ErrNoDraftLetter
	}

	today := s.today()

	proposal := &Proposal{
		DebtID:         debtID,
		TemplateType:   letter.TypeProposal,
		Subject:        progress.DraftSubject,
		LetterContent:  progress.DraftBody,
		AttachmentHint: progress.DraftAttachment,
		SentDate:       today,
		Status:         ProposalSent,
		MonthlyAmount:  progress.DraftMonthlyAmount,
		Months:         progress.DraftMonths,
	}

	progress.LetterSent = true
	progress.LetterSentDate = &today

	change := StatusChange{Apply: true, Status: debt.StatusWachtend}

	if err := s.dispatch(ctx, debtID, proposal, progress, &change); err != nil {
		return nil, err
	}

	sent := letter.Letter{
		Type:           proposal.TemplateType,
		Subject:        proposal.Subject,
		Body:           proposal.LetterContent,
		AttachmentHint: proposal.AttachmentHint,
	}

	return &AdvanceResult{
		State:        progress.State(),
		Letter:       &sent,
		StatusChange: &change,
	}, nil
}

// SendDefense handles the alternate strategy paths (dispute, partial
// recognition, already paid, verjaring, collection-cost objection and the
// modification requests). They bypass the budget gate: the letter is built
// from the submitted payload and marked sent in one step, force-setting both
// step flags since no budget computation applies.
func (s *Service) SendDefense(ctx context.Context, debtID uuid.UUID, payload letter.Payload) (*AdvanceResult, error) {
	if payload == nil {
		return nil, letter.ErrMissingPayload
	}

	if _, mainline := payload.(letter.ProposalPayload); mainline {
		return nil, fmt.Errorf("payment proposals go through the budget review path: %w", ErrInvalidAction)
	}

	// Previews tolerate gaps and render placeholders; a dispatched letter is
	// frozen into the proposal record, so it must be complete.
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("validating payload: %w", err)
	}

	d, err := s.debts.Get(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("getting debt: %w", err)
	}

	progress, err := s.ensureProgress(ctx, debtID)
	if err != nil {
		return nil, err
	}

	if progress.LetterSent {
		return nil, ErrAlreadySent
	}

	profile, err := s.debts.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	today := s.today()

	built, err := letter.Build(letter.Request{
		Debtor:   senderParty(profile),
		Creditor: creditorOf(d),
		Today:    today,
		Payload:  payload,
	})
	if err != nil {
		return nil, fmt.Errorf("building letter: %w", err)
	}

	proposal := &Proposal{
		DebtID:         debtID,
		TemplateType:   built.Type,
		Subject:        built.Subject,
		LetterContent:  built.Body,
		AttachmentHint: built.AttachmentHint,
		SentDate:       today,
		Status:         ProposalSent,
	}
	applyPayloadColumns(proposal, payload)

	progress.BudgetConfirmed = true
	progress.LetterSent = true
	progress.LetterSentDate = &today

	change := StatusChange{Apply: true, Status: debt.StatusWachtend}

	if err := s.dispatch(ctx, debtID, proposal, progress, &change); err != nil {
		return nil, err
	}

	return &AdvanceResult{
		State:        progress.State(),
		Letter:       &built,
		StatusChange: &change,
	}, nil
}

// RecordOutcome closes the cycle: the creditor's response updates the
// proposal, marks step 3 and applies the projected debt-status change.
func (s *Service) RecordOutcome(ctx context.Context, debtID uuid.UUID, outcome Outcome) (*AdvanceResult, error) {
	progress, err := s.repo.GetProgress(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("getting progress: %w", err)
	}

	if progress.State() != StateAwaitingResponse {
		return nil, fmt.Errorf("recording a response in state %q: %w", progress.State(), ErrPreconditionNotMet)
	}

	proposal, err := s.repo.LatestProposal(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("getting latest proposal: %w", err)
	}

	if proposal.Status != ProposalSent {
		return nil, fmt.Errorf("proposal already settled as %q: %w", proposal.Status, ErrPreconditionNotMet)
	}

	today := s.today()

	change, err := Project(proposal.TemplateType, outcome, progress.PlanKind, proposal, today)
	if err != nil {
		return nil, err
	}

	progress.ResponseRecorded = true

	tx, err := s.repo.BeginDispatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning outcome tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.UpdateProposalStatus(ctx, proposal.ID, change.ProposalStatus); err != nil {
		return nil, &WriteError{Step: WriteProposal, Err: err}
	}

	if err := tx.UpdateProgress(ctx, progress); err != nil {
		return nil, &WriteError{Step: WriteProgress, Err: err}
	}

	if change.Apply {
		if err := tx.ApplyStatusChange(ctx, debtID, change); err != nil {
			return nil, &WriteError{Step: WriteDebtStatus, Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing outcome: %w", err)
	}

	result := &AdvanceResult{
		State:        progress.State(),
		StatusChange: &change,
	}

	if change.SuggestReminder {
		reminder, err := s.buildReminder(ctx, debtID, proposal, today)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("reminder letter not built: %v", err))
		} else {
			result.Letter = reminder
		}
	}

	return result, nil
}

// History returns every proposal sent for the debt, oldest first. Each
// negotiation round appends one, so this is the full correspondence trail.
func (s *Service) History(ctx context.Context, debtID uuid.UUID) ([]*Proposal, error) {
	proposals, err := s.repo.ListProposals(ctx, debtID)
	if err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}

	return proposals, nil
}

// dispatch runs the shared staged-write contract of both sent paths.
func (s *Service) dispatch(ctx context.Context, debtID uuid.UUID, proposal *Proposal, progress *Progress, change *StatusChange) error {
	tx, err := s.repo.BeginDispatch(ctx)
	if err != nil {
		return fmt.Errorf("beginning dispatch tx: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateProposal(ctx, proposal); err != nil {
		return &WriteError{Step: WriteProposal, Err: err}
	}

	if err := tx.UpdateProgress(ctx, progress); err != nil {
		return &WriteError{Step: WriteProgress, Err: err}
	}

	if err := tx.ApplyStatusChange(ctx, debtID, *change); err != nil {
		return &WriteError{Step: WriteDebtStatus, Err: err}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing dispatch: %w", err)
	}

	return nil
}

func (s *Service) ensureProgress(ctx context.Context, debtID uuid.UUID) (*Progress, error) {
	progress, err := s.repo.GetProgress(ctx, debtID)
	if err == nil {
		return progress, nil
	}

	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("getting progress: %w", err)
	}

	progress = &Progress{DebtID: debtID}
	if err := s.repo.CreateProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("creating progress: %w", err)
	}

	return progress, nil
}

func (s *Service) buildProposalLetter(ctx context.Context, d *debt.Debt, breakdown affordability.Breakdown, plan affordability.Plan) (letter.Letter, error) {
	profile, err := s.debts.Profile(ctx)
	if err != nil {
		return letter.Letter{}, fmt.Errorf("getting profile: %w", err)
	}

	built, err := letter.Build(letter.Request{
		Debtor:   senderParty(profile),
		Creditor: creditorOf(d),
		Today:    s.today(),
		Payload: letter.ProposalPayload{
			DebtAmount: d.Amount,
			Plan:       plan,
			Breakdown:  breakdown,
		},
	})
	if err != nil {
		return letter.Letter{}, fmt.Errorf("building letter: %w", err)
	}

	return built, nil
}

func (s *Service) buildReminder(ctx context.Context, debtID uuid.UUID, proposal *Proposal, today time.Time) (*letter.Letter, error) {
	d, err := s.debts.Get(ctx, debtID)
	if err != nil {
		return nil, err
	}

	profile, err := s.debts.Profile(ctx)
	if err != nil {
		return nil, err
	}

	reminder := letter.Reminder(senderParty(profile), creditorOf(d), proposal.Subject, proposal.SentDate, today)
	reminder.Type = proposal.TemplateType

	return &reminder, nil
}

func applyPayloadColumns(p *Proposal, payload letter.Payload) {
	switch v := payload.(type) {
	case letter.PartialRecognitionPayload:
		recognized, disputed, monthly := v.RecognizedAmount, v.DisputedAmount, v.MonthlyOffer
		p.RecognizedAmount = &recognized
		p.DisputedAmount = &disputed
		p.MonthlyAmount = &monthly
		p.Reason = v.Reason
	case letter.DisputePayload:
		p.Reason = v.Reason
	case letter.AlreadyPaidPayload:
		p.PaymentDate = v.PaymentDate
		p.PaymentReference = v.PaymentReference
	case letter.VerjaringPayload:
		p.PaymentDate = v.LastActivityDate
	case letter.IncassokostenBezwaarPayload:
		principal, costs := v.PrincipalAmount, v.CollectionCosts
		p.RecognizedAmount = &principal
		p.DisputedAmount = &costs
		p.Reason = v.Reason
	case letter.LoweringAmountPayload:
		monthly := v.ProposedMonthly
		p.MonthlyAmount = &monthly
		p.Reason = v.Reason
	case letter.PaymentHolidayPayload:
		months := int64(v.Months)
		p.Months = &months
		p.Reason = v.Reason
	case letter.StopDebtCounselingPayload:
		p.PaymentDate = v.EffectiveDate
		p.Reason = v.CounselorName
	}
}

func creditorOf(d *debt.Debt) letter.Creditor {
	return letter.Creditor{
		Name:          d.CreditorName,
		Address:       d.CreditorAddress,
		PostalCode:    d.CreditorPostalCode,
		City:          d.CreditorCity,
		DossierNumber: d.DossierNumber,
	}
}

func senderParty(p *debt.Profile) letter.Party {
	if p == nil {
		return letter.Party{}
	}

	return letter.Party{
		Name:       p.Name,
		Address:    p.Address,
		PostalCode: p.PostalCode,
		City:       p.City,
		Email:      p.Email,
		Phone:      p.Phone,
	}
}
