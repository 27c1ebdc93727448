package arrangement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/arrangement"
	"schuldwijzer/internal/debt"
	"schuldwijzer/internal/letter"
)

var frozenNow = time.Date(2026, 5, 4, 15, 30, 0, 0, time.UTC)

func frozenClock() time.Time { return frozenNow }

// today as the service derives it: date only, UTC.
var frozenToday = time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

type fixture struct {
	debtRepo *debt.MockRepository
	repo     *arrangement.MockRepository
	tx       *arrangement.MockDispatchTx
	svc      *arrangement.Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		debtRepo: debt.NewMockRepository(ctrl),
		repo:     arrangement.NewMockRepository(ctrl),
		tx:       arrangement.NewMockDispatchTx(ctrl),
	}
	f.svc = arrangement.NewService(f.repo, debt.NewService(f.debtRepo), frozenClock)

	return f
}

func testDebt(id uuid.UUID, amount string) *debt.Debt {
	return &debt.Debt{
		ID:            id,
		CreditorName:  "Webwinkel Jansen BV",
		CreditorCity:  "Zwolle",
		DossierNumber: "WJ-77120",
		Amount:        decimal.RequireFromString(amount),
		Status:        debt.StatusInactive,
	}
}

func testProfile() *debt.Profile {
	return &debt.Profile{
		Name:       "P. Bakker",
		Address:    "Kerkstraat 12",
		PostalCode: "8011 AB",
		City:       "Zwolle",
		Email:      "p.bakker@example.org",
		Phone:      "06-87654321",
	}
}

// expectSnapshot wires the four reads behind debt.Service.Snapshot.
func (f *fixture) expectSnapshot(d *debt.Debt, income, costs string) {
	f.debtRepo.EXPECT().GetDebt(gomock.Any(), d.ID).Return(d, nil)
	f.debtRepo.EXPECT().ListIncomes(gomock.Any()).Return([]*debt.Income{
		{Description: "loon", Amount: decimal.RequireFromString(income)},
	}, nil)
	f.debtRepo.EXPECT().ListFixedCosts(gomock.Any()).Return([]*debt.FixedCost{
		{Description: "vaste lasten", Amount: decimal.RequireFromString(costs)},
	}, nil)
	f.debtRepo.EXPECT().ListDebts(gomock.Any()).Return([]*debt.Debt{d}, nil)
}

func TestStart_CreatesProgressOnFirstUse(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "80")

	f.expectSnapshot(d, "2000", "1500")
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(nil, arrangement.ErrNotFound)
	f.repo.EXPECT().CreateProgress(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.Start(context.Background(), d.ID)
	require.NoError(t, err)

	assert.Equal(t, arrangement.StateBudgetReview, got.State)
	require.NotNil(t, got.Plan)
	assert.Equal(t, affordability.PlanInstallment, got.Plan.Kind)
	assert.True(t, got.Plan.MonthlyAmount.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, int64(2), got.Plan.Months)
	assert.True(t, got.Breakdown.DisposableIncome.Equal(decimal.NewFromInt(500)))
}

func TestStart_NoCapacityScenario(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "200")

	f.expectSnapshot(d, "1800", "1750")
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(&arrangement.Progress{DebtID: d.ID}, nil)

	got, err := f.svc.Start(context.Background(), d.ID)
	require.NoError(t, err)

	assert.True(t, got.Breakdown.RepaymentCapacity.Equal(decimal.RequireFromString("7.5")))
	assert.Equal(t, affordability.PlanDebtRest, got.Plan.Kind)
}

func TestStart_ZeroDebtAmountRejected(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "0")

	f.expectSnapshot(d, "2000", "1500")
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(&arrangement.Progress{DebtID: d.ID}, nil)

	_, err := f.svc.Start(context.Background(), d.ID)
	assert.ErrorIs(t, err, affordability.ErrInvalidDebtAmount)
}

func TestCompleteBudgetReview_FreezesInstallmentLetter(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "80")

	f.expectSnapshot(d, "2000", "1500")
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(&arrangement.Progress{DebtID: d.ID}, nil)
	f.debtRepo.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil)

	var saved *arrangement.Progress

	f.repo.EXPECT().
		UpdateProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *arrangement.Progress) error {
			saved = p
			return nil
		})

	got, err := f.svc.CompleteBudgetReview(context.Background(), d.ID)
	require.NoError(t, err)

	assert.Equal(t, arrangement.StateLetterDispatch, got.State)
	require.NotNil(t, got.Letter)
	assert.Equal(t, "Voorstel betalingsregeling", got.Letter.Subject)
	assert.Contains(t, got.Letter.Body, "€ 50,00 per maand")
	assert.Contains(t, got.Letter.Body, "Zwolle, 4 mei 2026")

	require.NotNil(t, saved)
	assert.True(t, saved.BudgetConfirmed)
	assert.False(t, saved.LetterSent)
	assert.Equal(t, affordability.PlanInstallment, saved.PlanKind)
	require.NotNil(t, saved.DraftMonthlyAmount)
	assert.True(t, saved.DraftMonthlyAmount.Equal(decimal.NewFromInt(50)))
}

func TestCompleteBudgetReview_AfterDispatchRejected(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "80")

	f.expectSnapshot(d, "2000", "1500")
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(&arrangement.Progress{
		DebtID:          d.ID,
		BudgetConfirmed: true,
		LetterSent:      true,
	}, nil)

	_, err := f.svc.CompleteBudgetReview(context.Background(), d.ID)
	assert.ErrorIs(t, err, arrangement.ErrPreconditionNotMet)
}

func TestCompleteDispatch_BeforeBudgetReview(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(&arrangement.Progress{DebtID: debtID}, nil)

	_, err := f.svc.CompleteDispatch(context.Background(), debtID)
	assert.ErrorIs(t, err, arrangement.ErrPreconditionNotMet)
}

func TestCompleteDispatch_AlreadySent(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(&arrangement.Progress{
		DebtID:          debtID,
		BudgetConfirmed: true,
		LetterSent:      true,
	}, nil)

	_, err := f.svc.CompleteDispatch(context.Background(), debtID)
	assert.ErrorIs(t, err, arrangement.ErrAlreadySent)
}

func confirmedProgress(debtID uuid.UUID) *arrangement.Progress {
	monthly := decimal.NewFromInt(50)
	months := int64(2)

	return &arrangement.Progress{
		DebtID:             debtID,
		BudgetConfirmed:    true,
		PlanKind:           affordability.PlanInstallment,
		DraftSubject:       "Voorstel betalingsregeling",
		DraftBody:          "brieftekst",
		DraftMonthlyAmount: &monthly,
		DraftMonths:        &months,
	}
}

func TestCompleteDispatch_StagesAllWrites(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(confirmedProgress(debtID), nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().
		CreateProposal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *arrangement.Proposal) error {
			assert.Equal(t, letter.TypeProposal, p.TemplateType)
			assert.Equal(t, arrangement.ProposalSent, p.Status)
			assert.Equal(t, frozenToday, p.SentDate)
			assert.Equal(t, "brieftekst", p.LetterContent)
			return nil
		})
	f.tx.EXPECT().
		UpdateProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *arrangement.Progress) error {
			assert.True(t, p.LetterSent)
			require.NotNil(t, p.LetterSentDate)
			assert.Equal(t, frozenToday, *p.LetterSentDate)
			return nil
		})
	f.tx.EXPECT().
		ApplyStatusChange(gomock.Any(), debtID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, change arrangement.StatusChange) error {
			assert.True(t, change.Apply)
			assert.Equal(t, debt.StatusWachtend, change.Status)
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	got, err := f.svc.CompleteDispatch(context.Background(), debtID)
	require.NoError(t, err)

	assert.Equal(t, arrangement.StateAwaitingResponse, got.State)
	require.NotNil(t, got.Letter)
	assert.Equal(t, "brieftekst", got.Letter.Body)
}

func TestCompleteDispatch_ReportsFailedWriteStep(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(confirmedProgress(debtID), nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().ApplyStatusChange(gomock.Any(), debtID, gomock.Any()).Return(errors.New("db down"))
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.CompleteDispatch(context.Background(), debtID)

	var writeErr *arrangement.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, arrangement.WriteDebtStatus, writeErr.Step)
}

func TestSendDefense_AlreadyPaidPath(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "149.95")
	paymentDate := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	f.debtRepo.EXPECT().GetDebt(gomock.Any(), d.ID).Return(d, nil)
	f.debtRepo.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil)
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(nil, arrangement.ErrNotFound)
	f.repo.EXPECT().CreateProgress(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().
		CreateProposal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *arrangement.Proposal) error {
			assert.Equal(t, letter.TypeAlreadyPaid, p.TemplateType)
			assert.Equal(t, "FACT-8812", p.PaymentReference)
			require.NotNil(t, p.PaymentDate)
			assert.Equal(t, paymentDate, *p.PaymentDate)
			return nil
		})
	f.tx.EXPECT().
		UpdateProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *arrangement.Progress) error {
			// Defense letters close both early steps at once.
			assert.True(t, p.BudgetConfirmed)
			assert.True(t, p.LetterSent)
			return nil
		})
	f.tx.EXPECT().
		ApplyStatusChange(gomock.Any(), d.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, change arrangement.StatusChange) error {
			assert.Equal(t, debt.StatusWachtend, change.Status)
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	got, err := f.svc.SendDefense(context.Background(), d.ID, letter.AlreadyPaidPayload{
		PaymentDate:      &paymentDate,
		PaymentReference: "FACT-8812",
		PaymentAmount:    decimal.RequireFromString("149.95"),
	})
	require.NoError(t, err)

	assert.Equal(t, arrangement.StateAwaitingResponse, got.State)
	require.NotNil(t, got.Letter)
	assert.Contains(t, got.Letter.Body, "15 november 2025")
	assert.Contains(t, got.Letter.Body, "FACT-8812")
	assert.NotContains(t, got.Letter.Body, "[")
}

func TestSendDefense_RejectsMainlinePayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.SendDefense(context.Background(), uuid.New(), letter.ProposalPayload{})
	assert.ErrorIs(t, err, arrangement.ErrInvalidAction)
}

func TestSendDefense_AlreadySent(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "100")

	f.debtRepo.EXPECT().GetDebt(gomock.Any(), d.ID).Return(d, nil)
	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(&arrangement.Progress{
		DebtID:          d.ID,
		BudgetConfirmed: true,
		LetterSent:      true,
	}, nil)

	_, err := f.svc.SendDefense(context.Background(), d.ID, letter.DisputePayload{Reason: "onterecht"})
	assert.ErrorIs(t, err, arrangement.ErrAlreadySent)
}

func TestRecordOutcome_RequiresAwaitingResponse(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(&arrangement.Progress{DebtID: debtID}, nil)

	_, err := f.svc.RecordOutcome(context.Background(), debtID, arrangement.OutcomeAccepted)
	assert.ErrorIs(t, err, arrangement.ErrPreconditionNotMet)
}

func TestRecordOutcome_TerminalProposalRejected(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	progress := confirmedProgress(debtID)
	progress.LetterSent = true

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(progress, nil)
	f.repo.EXPECT().LatestProposal(gomock.Any(), debtID).Return(&arrangement.Proposal{
		ID:     uuid.New(),
		Status: arrangement.ProposalAccepted,
	}, nil)

	_, err := f.svc.RecordOutcome(context.Background(), debtID, arrangement.OutcomeRejected)
	assert.ErrorIs(t, err, arrangement.ErrPreconditionNotMet)
}

func TestRecordOutcome_AlreadyPaidAccepted(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	progress := &arrangement.Progress{
		DebtID:          debtID,
		BudgetConfirmed: true,
		LetterSent:      true,
	}
	proposal := &arrangement.Proposal{
		ID:           uuid.New(),
		DebtID:       debtID,
		TemplateType: letter.TypeAlreadyPaid,
		Status:       arrangement.ProposalSent,
		SentDate:     frozenToday.AddDate(0, 0, -21),
	}

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(progress, nil)
	f.repo.EXPECT().LatestProposal(gomock.Any(), debtID).Return(proposal, nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().UpdateProposalStatus(gomock.Any(), proposal.ID, arrangement.ProposalAccepted).Return(nil)
	f.tx.EXPECT().
		UpdateProgress(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *arrangement.Progress) error {
			assert.True(t, p.ResponseRecorded)
			return nil
		})
	f.tx.EXPECT().
		ApplyStatusChange(gomock.Any(), debtID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, change arrangement.StatusChange) error {
			assert.Equal(t, debt.StatusAfbetaald, change.Status)
			assert.Equal(t, arrangement.ReasonAlreadyPaid, change.ResolvedReason)
			return nil
		})
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	got, err := f.svc.RecordOutcome(context.Background(), debtID, arrangement.OutcomeAccepted)
	require.NoError(t, err)

	assert.Equal(t, arrangement.StateResolved, got.State)
	require.NotNil(t, got.StatusChange)
	assert.Equal(t, debt.StatusAfbetaald, got.StatusChange.Status)
}

func TestRecordOutcome_NoResponseBuildsReminder(t *testing.T) {
	f := newFixture(t)
	d := testDebt(uuid.New(), "300")

	progress := confirmedProgress(d.ID)
	progress.LetterSent = true

	proposal := &arrangement.Proposal{
		ID:           uuid.New(),
		DebtID:       d.ID,
		TemplateType: letter.TypeProposal,
		Subject:      "Voorstel betalingsregeling",
		Status:       arrangement.ProposalSent,
		SentDate:     time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	}

	f.repo.EXPECT().GetProgress(gomock.Any(), d.ID).Return(progress, nil)
	f.repo.EXPECT().LatestProposal(gomock.Any(), d.ID).Return(proposal, nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().UpdateProposalStatus(gomock.Any(), proposal.ID, arrangement.ProposalReminderSent).Return(nil)
	f.tx.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().ApplyStatusChange(gomock.Any(), d.ID, gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	f.debtRepo.EXPECT().GetDebt(gomock.Any(), d.ID).Return(d, nil)
	f.debtRepo.EXPECT().GetProfile(gomock.Any()).Return(testProfile(), nil)

	got, err := f.svc.RecordOutcome(context.Background(), d.ID, arrangement.OutcomeNoResponse)
	require.NoError(t, err)

	require.NotNil(t, got.StatusChange)
	assert.True(t, got.StatusChange.SuggestReminder)
	require.NotNil(t, got.Letter)
	assert.Equal(t, "Herinnering: Voorstel betalingsregeling", got.Letter.Subject)
	assert.Contains(t, got.Letter.Body, "10 april 2026")
}

func TestRecordOutcome_ReportsFailedProposalWrite(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	progress := confirmedProgress(debtID)
	progress.LetterSent = true

	proposal := &arrangement.Proposal{
		ID:           uuid.New(),
		TemplateType: letter.TypeProposal,
		Status:       arrangement.ProposalSent,
	}

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(progress, nil)
	f.repo.EXPECT().LatestProposal(gomock.Any(), debtID).Return(proposal, nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().UpdateProposalStatus(gomock.Any(), proposal.ID, gomock.Any()).Return(errors.New("conflict"))
	f.tx.EXPECT().Rollback().Return(nil)

	_, err := f.svc.RecordOutcome(context.Background(), debtID, arrangement.OutcomeAccepted)

	var writeErr *arrangement.WriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, arrangement.WriteProposal, writeErr.Step)
}

func TestAdvance_DispatchesByAction(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Advance(context.Background(), uuid.New(), "shred_it", arrangement.AdvanceParams{})
	assert.ErrorIs(t, err, arrangement.ErrInvalidAction)
}

func TestProgressStateDerivation(t *testing.T) {
	assert.Equal(t, arrangement.StateBudgetReview, (&arrangement.Progress{}).State())
	assert.Equal(t, arrangement.StateLetterDispatch, (&arrangement.Progress{BudgetConfirmed: true}).State())
	assert.Equal(t, arrangement.StateAwaitingResponse, (&arrangement.Progress{BudgetConfirmed: true, LetterSent: true}).State())
	assert.Equal(t, arrangement.StateResolved, (&arrangement.Progress{BudgetConfirmed: true, LetterSent: true, ResponseRecorded: true}).State())

	// An inconsistent flag mix normalizes to the earliest open step.
	assert.Equal(t, arrangement.StateBudgetReview, (&arrangement.Progress{ResponseRecorded: true}).State())
}

func TestSendDefense_IncompletePayloadRejected(t *testing.T) {
	f := newFixture(t)

	// Nothing may be read or written before validation: an empty dispute has
	// no reason to send and must not freeze a placeholder letter.
	_, err := f.svc.SendDefense(context.Background(), uuid.New(), letter.DisputePayload{})
	assert.ErrorIs(t, err, letter.ErrMissingField)

	_, err = f.svc.SendDefense(context.Background(), uuid.New(), letter.AlreadyPaidPayload{
		PaymentReference: "FACT-8812",
	})
	assert.ErrorIs(t, err, letter.ErrMissingField)
}

func TestRecordOutcome_ReminderBuildFailureWarns(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	progress := confirmedProgress(debtID)
	progress.LetterSent = true

	proposal := &arrangement.Proposal{
		ID:           uuid.New(),
		DebtID:       debtID,
		TemplateType: letter.TypeProposal,
		Subject:      "Voorstel betalingsregeling",
		Status:       arrangement.ProposalSent,
		SentDate:     frozenToday.AddDate(0, 0, -14),
	}

	f.repo.EXPECT().GetProgress(gomock.Any(), debtID).Return(progress, nil)
	f.repo.EXPECT().LatestProposal(gomock.Any(), debtID).Return(proposal, nil)
	f.repo.EXPECT().BeginDispatch(gomock.Any()).Return(f.tx, nil)

	f.tx.EXPECT().UpdateProposalStatus(gomock.Any(), proposal.ID, arrangement.ProposalReminderSent).Return(nil)
	f.tx.EXPECT().UpdateProgress(gomock.Any(), gomock.Any()).Return(nil)
	f.tx.EXPECT().ApplyStatusChange(gomock.Any(), debtID, gomock.Any()).Return(nil)
	f.tx.EXPECT().Commit().Return(nil)
	f.tx.EXPECT().Rollback().Return(nil)

	f.debtRepo.EXPECT().GetDebt(gomock.Any(), debtID).Return(nil, errors.New("connection reset"))

	got, err := f.svc.RecordOutcome(context.Background(), debtID, arrangement.OutcomeNoResponse)
	require.NoError(t, err)

	assert.Nil(t, got.Letter)
	require.Len(t, got.Warnings, 1)
	assert.Contains(t, got.Warnings[0], "reminder letter not built")
}

func TestHistory_ReturnsAllRounds(t *testing.T) {
	f := newFixture(t)
	debtID := uuid.New()

	proposals := []*arrangement.Proposal{
		{ID: uuid.New(), TemplateType: letter.TypeDispute, Status: arrangement.ProposalRejected},
		{ID: uuid.New(), TemplateType: letter.TypeProposal, Status: arrangement.ProposalSent},
	}

	f.repo.EXPECT().ListProposals(gomock.Any(), debtID).Return(proposals, nil)

	got, err := f.svc.History(context.Background(), debtID)
	require.NoError(t, err)
	assert.Equal(t, proposals, got)
}
