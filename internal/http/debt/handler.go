package debt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"schuldwijzer/internal/debt"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type debtResponse struct {
	ID                 uuid.UUID        `json:"id"`
	CreditorName       string           `json:"creditor_name"`
	CreditorAddress    string           `json:"creditor_address,omitempty"`
	CreditorPostalCode string           `json:"creditor_postal_code,omitempty"`
	CreditorCity       string           `json:"creditor_city,omitempty"`
	DossierNumber      string           `json:"dossier_number,omitempty"`
	Amount             decimal.Decimal  `json:"amount"`
	Status             debt.Status      `json:"status"`
	MonthlyPayment     *decimal.Decimal `json:"monthly_payment,omitempty"`
	PaymentPlanDate    *time.Time       `json:"payment_plan_date,omitempty"`
	ResolvedDate       *time.Time       `json:"resolved_date,omitempty"`
	ResolvedReason     string           `json:"resolved_reason,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          *time.Time       `json:"updated_at,omitempty"`
}

func toResponse(d *debt.Debt) debtResponse {
	return debtResponse{
		ID:                 d.ID,
		CreditorName:       d.CreditorName,
		CreditorAddress:    d.CreditorAddress,
		CreditorPostalCode: d.CreditorPostalCode,
		CreditorCity:       d.CreditorCity,
		DossierNumber:      d.DossierNumber,
		Amount:             d.Amount,
		Status:             d.Status,
		MonthlyPayment:     d.MonthlyPayment,
		PaymentPlanDate:    d.PaymentPlanDate,
		ResolvedDate:       d.ResolvedDate,
		ResolvedReason:     d.ResolvedReason,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	debts, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusOK, toResponse(d))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
