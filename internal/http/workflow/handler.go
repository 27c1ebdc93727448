package workflow

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/arrangement"
	"schuldwijzer/internal/debt"
	httpletter "schuldwijzer/internal/http/letter"
	"schuldwijzer/internal/letter"
)

type Handler struct {
	svc *arrangement.Service
}

func NewHandler(svc *arrangement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/advance", h.advance)
}

type advanceRequest struct {
	Action       arrangement.Action       `json:"action"`
	Outcome      arrangement.Outcome      `json:"outcome,omitempty"`
	TemplateType string                   `json:"template_type,omitempty"`
	Fields       httpletter.FieldsRequest `json:"fields,omitempty"`
}

type breakdownResponse struct {
	DisposableIncome             decimal.Decimal `json:"disposable_income"`
	InterimCostsBudget           decimal.Decimal `json:"interim_costs_budget"`
	BufferBudget                 decimal.Decimal `json:"buffer_budget"`
	RepaymentCapacity            decimal.Decimal `json:"repayment_capacity"`
	EffectiveExistingCommitments decimal.Decimal `json:"effective_existing_commitments"`
	AvailableForNewArrangement   decimal.Decimal `json:"available_for_new_arrangement"`
}

type planResponse struct {
	Kind          affordability.PlanKind `json:"kind"`
	MonthlyAmount decimal.Decimal        `json:"monthly_amount"`
	Months        int64                  `json:"months"`
}

type letterResponse struct {
	TemplateType   letter.TemplateType `json:"template_type"`
	Subject        string              `json:"subject"`
	Body           string              `json:"body"`
	AttachmentHint string              `json:"attachment_hint,omitempty"`
}

type statusChangeResponse struct {
	Applied         bool             `json:"applied"`
	Status          debt.Status      `json:"status,omitempty"`
	MonthlyPayment  *decimal.Decimal `json:"monthly_payment,omitempty"`
	NewAmount       *decimal.Decimal `json:"new_amount,omitempty"`
	ResolvedDate    *time.Time       `json:"resolved_date,omitempty"`
	ResolvedReason  string           `json:"resolved_reason,omitempty"`
	SuggestReminder bool             `json:"suggest_reminder"`
}

type advanceResponse struct {
	State        arrangement.State     `json:"state"`
	Breakdown    *breakdownResponse    `json:"breakdown,omitempty"`
	Plan         *planResponse         `json:"plan,omitempty"`
	Letter       *letterResponse       `json:"letter,omitempty"`
	StatusChange *statusChangeResponse `json:"status_change,omitempty"`
	Warnings     []string              `json:"warnings,omitempty"`
}

type proposalResponse struct {
	ID           uuid.UUID                  `json:"id"`
	TemplateType letter.TemplateType        `json:"template_type"`
	Subject      string                     `json:"subject"`
	SentDate     time.Time                  `json:"sent_date"`
	Status       arrangement.ProposalStatus `json:"status"`
}

type workflowResponse struct {
	advanceResponse
	Proposals []proposalResponse `json:"proposals,omitempty"`
}

func toResponse(res *arrangement.AdvanceResult) advanceResponse {
	out := advanceResponse{
		State:    res.State,
		Warnings: res.Warnings,
	}

	if res.Breakdown != nil {
		out.Breakdown = &breakdownResponse{
			DisposableIncome:             res.Breakdown.DisposableIncome,
			InterimCostsBudget:           res.Breakdown.InterimCostsBudget,
			BufferBudget:                 res.Breakdown.BufferBudget,
			RepaymentCapacity:            res.Breakdown.RepaymentCapacity,
			EffectiveExistingCommitments: res.Breakdown.EffectiveExistingCommitments,
			AvailableForNewArrangement:   res.Breakdown.AvailableForNewArrangement,
		}
	}

	if res.Plan != nil {
		out.Plan = &planResponse{
			Kind:          res.Plan.Kind,
			MonthlyAmount: res.Plan.MonthlyAmount,
			Months:        res.Plan.Months,
		}
	}

	if res.Letter != nil {
		out.Letter = &letterResponse{
			TemplateType:   res.Letter.Type,
			Subject:        res.Letter.Subject,
			Body:           res.Letter.Body,
			AttachmentHint: res.Letter.AttachmentHint,
		}
	}

	if res.StatusChange != nil {
		out.StatusChange = &statusChangeResponse{
			Applied:         res.StatusChange.Apply,
			MonthlyPayment:  res.StatusChange.MonthlyPayment,
			NewAmount:       res.StatusChange.NewAmount,
			ResolvedDate:    res.StatusChange.ResolvedDate,
			ResolvedReason:  res.StatusChange.ResolvedReason,
			SuggestReminder: res.StatusChange.SuggestReminder,
		}
		if res.StatusChange.Apply {
			out.StatusChange.Status = res.StatusChange.Status
		}
	}

	return out
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	debtID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Start(r.Context(), debtID)
	if err != nil {
		writeError(w, err)
		return
	}

	proposals, err := h.svc.History(r.Context(), debtID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := workflowResponse{advanceResponse: toResponse(res)}
	for _, p := range proposals {
		out.Proposals = append(out.Proposals, proposalResponse{
			ID:           p.ID,
			TemplateType: p.TemplateType,
			Subject:      p.Subject,
			SentDate:     p.SentDate,
			Status:       p.Status,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	debtID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := arrangement.AdvanceParams{Outcome: req.Outcome}

	if req.Action == arrangement.ActionSendDefense {
		payload, err := httpletter.BuildPayload(letter.TemplateType(req.TemplateType), req.Fields)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		params.Payload = payload
	}

	res, err := h.svc.Advance(r.Context(), debtID, req.Action, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(res))
}

// writeError maps the workflow sentinels onto HTTP statuses. A mid-sequence
// write failure reports which record failed so the client can resume.
func writeError(w http.ResponseWriter, err error) {
	var writeErr *arrangement.WriteError
	if errors.As(err, &writeErr) {
		writeJSON(w, http.StatusBadGateway, map[string]string{
			"error":       writeErr.Error(),
			"failed_step": string(writeErr.Step),
		})

		return
	}

	switch {
	case errors.Is(err, debt.ErrNotFound), errors.Is(err, arrangement.ErrNotFound),
		errors.Is(err, arrangement.ErrProposalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, arrangement.ErrAlreadySent), errors.Is(err, arrangement.ErrPreconditionNotMet):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, arrangement.ErrInvalidAction), errors.Is(err, arrangement.ErrInvalidOutcome),
		errors.Is(err, arrangement.ErrNoDraftLetter), errors.Is(err, affordability.ErrInvalidDebtAmount),
		errors.Is(err, letter.ErrUnknownTemplate), errors.Is(err, letter.ErrMissingPayload),
		errors.Is(err, letter.ErrMissingField):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		slog.Error("workflow request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
