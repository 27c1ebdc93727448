package affordability

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/debt"
)

type Handler struct {
	debts *debt.Service
}

func NewHandler(debts *debt.Service) *Handler {
	return &Handler{debts: debts}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/breakdown", h.breakdown)
}

type breakdownResponse struct {
	DisposableIncome             decimal.Decimal `json:"disposable_income"`
	InterimCostsBudget           decimal.Decimal `json:"interim_costs_budget"`
	BufferBudget                 decimal.Decimal `json:"buffer_budget"`
	RepaymentCapacity            decimal.Decimal `json:"repayment_capacity"`
	EffectiveExistingCommitments decimal.Decimal `json:"effective_existing_commitments"`
	AvailableForNewArrangement   decimal.Decimal `json:"available_for_new_arrangement"`

	Plan *planResponse `json:"plan,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

type planResponse struct {
	Kind          affordability.PlanKind `json:"kind"`
	MonthlyAmount decimal.Decimal        `json:"monthly_amount"`
	Months        int64                  `json:"months"`
}

// breakdown is a read-only budget view: it never touches workflow state, so
// inspecting the numbers before starting an arrangement is free of side
// effects.
func (h *Handler) breakdown(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, snap, err := h.debts.Snapshot(r.Context(), id)
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		slog.Error("computing breakdown failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	b := affordability.ComputeBreakdown(snap)

	resp := breakdownResponse{
		DisposableIncome:             b.DisposableIncome,
		InterimCostsBudget:           b.InterimCostsBudget,
		BufferBudget:                 b.BufferBudget,
		RepaymentCapacity:            b.RepaymentCapacity,
		EffectiveExistingCommitments: b.EffectiveExistingCommitments,
		AvailableForNewArrangement:   b.AvailableForNewArrangement,
		Warnings:                     b.Warnings,
	}

	if plan, err := affordability.ComputePlan(b, d.Amount); err == nil {
		resp.Plan = &planResponse{
			Kind:          plan.Kind,
			MonthlyAmount: plan.MonthlyAmount,
			Months:        plan.Months,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
