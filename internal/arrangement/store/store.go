package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/arrangement"
	"schuldwijzer/internal/letter"
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

// scanProgress reads a progress row from the scanner.
// Expected column order: debt_id, budget_confirmed, letter_sent, response_recorded,
// letter_sent_date, plan_kind, draft_subject, draft_body, draft_attachment,
// draft_monthly_amount, draft_months, created_at, updated_at
func scanProgress(s scanner) (*arrangement.Progress, error) {
	var p arrangement.Progress

	var planKind, draftSubject, draftBody, draftAttachment sql.NullString

	if err := s.Scan(
		&p.DebtID, &p.BudgetConfirmed, &p.LetterSent, &p.ResponseRecorded,
		&p.LetterSentDate,
		&planKind, &draftSubject, &draftBody, &draftAttachment,
		&p.DraftMonthlyAmount, &p.DraftMonths,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.PlanKind = affordability.PlanKind(planKind.String)
	p.DraftSubject = draftSubject.String
	p.DraftBody = draftBody.String
	p.DraftAttachment = draftAttachment.String

	return &p, nil
}

// scanProposal reads a proposal row from the scanner.
// Expected column order: id, debt_id, template_type, subject, letter_content,
// attachment_hint, sent_date, status, monthly_amount, months, recognized_amount,
// disputed_amount, reason, payment_date, payment_reference, created_at
func scanProposal(s scanner) (*arrangement.Proposal, error) {
	var p arrangement.Proposal

	var tmpl, status string

	var reason, paymentRef sql.NullString

	if err := s.Scan(
		&p.ID, &p.DebtID, &tmpl, &p.Subject, &p.LetterContent,
		&p.AttachmentHint, &p.SentDate, &status,
		&p.MonthlyAmount, &p.Months, &p.RecognizedAmount,
		&p.DisputedAmount, &reason, &p.PaymentDate, &paymentRef,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}

	p.TemplateType = letter.TemplateType(tmpl)
	p.Status = arrangement.ProposalStatus(status)
	p.Reason = reason.String
	p.PaymentReference = paymentRef.String

	return &p, nil
}

const selectProgressColumns = `
	p.debt_id, p.budget_confirmed, p.letter_sent, p.response_recorded,
	p.letter_sent_date, p.plan_kind, p.draft_subject, p.draft_body,
	p.draft_attachment, p.draft_monthly_amount, p.draft_months,
	p.created_at, p.updated_at
`

const selectProposalColumns = `
	pr.id, pr.debt_id, pr.template_type, pr.subject, pr.letter_content,
	pr.attachment_hint, pr.sent_date, pr.status,
	pr.monthly_amount, pr.months, pr.recognized_amount,
	pr.disputed_amount, pr.reason, pr.payment_date, pr.payment_reference,
	pr.created_at
`

func (s *Store) GetProgress(ctx context.Context, debtID uuid.UUID) (*arrangement.Progress, error) {
	query := `SELECT ` + selectProgressColumns + `
		FROM arrangement_progress p
		WHERE p.debt_id = $1`

	p, err := scanProgress(s.db.QueryRowContext(ctx, query, debtID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, arrangement.ErrNotFound
		}

		return nil, fmt.Errorf("getting progress: %w", err)
	}

	return p, nil
}

func (s *Store) CreateProgress(ctx context.Context, p *arrangement.Progress) error {
	query := `
		INSERT INTO arrangement_progress (debt_id, budget_confirmed, letter_sent, response_recorded, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.DebtID,
		p.BudgetConfirmed,
		p.LetterSent,
		p.ResponseRecorded,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating progress: %w", err)
	}

	return nil
}

const updateProgressQuery = `
	UPDATE arrangement_progress
	SET budget_confirmed = $1, letter_sent = $2, response_recorded = $3,
		letter_sent_date = $4, plan_kind = $5, draft_subject = $6,
		draft_body = $7, draft_attachment = $8, draft_monthly_amount = $9,
		draft_months = $10, updated_at = NOW()
	WHERE debt_id = $11
`

func (s *Store) UpdateProgress(ctx context.Context, p *arrangement.Progress) error {
	if err := execUpdateProgress(ctx, s.db, p); err != nil {
		return fmt.Errorf("updating progress: %w", err)
	}

	return nil
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func execUpdateProgress(ctx context.Context, e execer, p *arrangement.Progress) error {
	_, err := e.ExecContext(ctx, updateProgressQuery,
		p.BudgetConfirmed,
		p.LetterSent,
		p.ResponseRecorded,
		p.LetterSentDate,
		nullIfEmpty(string(p.PlanKind)),
		nullIfEmpty(p.DraftSubject),
		nullIfEmpty(p.DraftBody),
		nullIfEmpty(p.DraftAttachment),
		p.DraftMonthlyAmount,
		p.DraftMonths,
		p.DebtID,
	)

	return err
}

func (s *Store) LatestProposal(ctx context.Context, debtID uuid.UUID) (*arrangement.Proposal, error) {
	query := `SELECT ` + selectProposalColumns + `
		FROM proposals pr
		WHERE pr.debt_id = $1
		ORDER BY pr.created_at DESC
		LIMIT 1`

	p, err := scanProposal(s.db.QueryRowContext(ctx, query, debtID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, arrangement.ErrProposalNotFound
		}

		return nil, fmt.Errorf("getting latest proposal: %w", err)
	}

	return p, nil
}

func (s *Store) ListProposals(ctx context.Context, debtID uuid.UUID) ([]*arrangement.Proposal, error) {
	query := `SELECT ` + selectProposalColumns + `
		FROM proposals pr
		WHERE pr.debt_id = $1
		ORDER BY pr.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, debtID)
	if err != nil {
		return nil, fmt.Errorf("listing proposals: %w", err)
	}
	defer rows.Close()

	var proposals []*arrangement.Proposal

	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning proposal: %w", err)
		}

		proposals = append(proposals, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating proposal rows: %w", err)
	}

	return proposals, nil
}

type dispatchTx struct {
	tx *sql.Tx
}

// BeginDispatch opens the staged write sequence for one dispatch or outcome.
func (s *Store) BeginDispatch(ctx context.Context) (arrangement.DispatchTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning dispatch tx: %w", err)
	}

	return &dispatchTx{tx: dbTx}, nil
}

func (dtx *dispatchTx) Commit() error   { return dtx.tx.Commit() }
func (dtx *dispatchTx) Rollback() error { return dtx.tx.Rollback() }

func (dtx *dispatchTx) CreateProposal(ctx context.Context, p *arrangement.Proposal) error {
	query := `
		INSERT INTO proposals (debt_id, template_type, subject, letter_content, attachment_hint,
			sent_date, status, monthly_amount, months, recognized_amount, disputed_amount,
			reason, payment_date, payment_reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING id, created_at
	`

	err := dtx.tx.QueryRowContext(ctx, query,
		p.DebtID,
		p.TemplateType,
		p.Subject,
		p.LetterContent,
		p.AttachmentHint,
		p.SentDate,
		p.Status,
		p.MonthlyAmount,
		p.Months,
		p.RecognizedAmount,
		p.DisputedAmount,
		nullIfEmpty(p.Reason),
		p.PaymentDate,
		nullIfEmpty(p.PaymentReference),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating proposal: %w", err)
	}

	return nil
}

func (dtx *dispatchTx) UpdateProposalStatus(ctx context.Context, id uuid.UUID, status arrangement.ProposalStatus) error {
	query := `
		UPDATE proposals
		SET status = $1
		WHERE id = $2
	`

	res, err := dtx.tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating proposal status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking proposal update: %w", err)
	}

	if affected == 0 {
		return arrangement.ErrProposalNotFound
	}

	return nil
}

func (dtx *dispatchTx) UpdateProgress(ctx context.Context, p *arrangement.Progress) error {
	if err := execUpdateProgress(ctx, dtx.tx, p); err != nil {
		return fmt.Errorf("updating progress: %w", err)
	}

	return nil
}

// ApplyStatusChange writes the projected debt-status transition. Optional
// columns are only overwritten when the change carries a value for them, so
// an arrangement that merely pauses keeps its payment history.
func (dtx *dispatchTx) ApplyStatusChange(ctx context.Context, debtID uuid.UUID, change arrangement.StatusChange) error {
	query := `
		UPDATE debts
		SET status = $1,
			monthly_payment = COALESCE($2, monthly_payment),
			payment_plan_date = COALESCE($3, payment_plan_date),
			amount = COALESCE($4, amount),
			resolved_date = COALESCE($5, resolved_date),
			resolved_reason = COALESCE($6, resolved_reason),
			updated_at = NOW()
		WHERE id = $7
	`

	res, err := dtx.tx.ExecContext(ctx, query,
		change.Status,
		change.MonthlyPayment,
		change.PaymentPlanDate,
		change.NewAmount,
		change.ResolvedDate,
		nullIfEmpty(change.ResolvedReason),
		debtID,
	)
	if err != nil {
		return fmt.Errorf("applying status change: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status change: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("applying status change: no debt row for %s", debtID)
	}

	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}

	return s
}
