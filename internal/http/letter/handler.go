package letter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/letter"
	"schuldwijzer/internal/lettercache"
)

type Handler struct {
	cache    *lettercache.Cache
	validate *validator.Validate
	now      func() time.Time
}

// NewHandler builds the preview handler. cache may be nil.
func NewHandler(cache *lettercache.Cache, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}

	return &Handler{
		cache:    cache,
		validate: validator.New(),
		now:      now,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/preview", h.preview)
	r.Get("/types", h.types)
}

// PartyRequest is the sender block of a preview request.
type PartyRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// CreditorRequest is the recipient block of a preview request.
type CreditorRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
	DossierNumber string `json:"dossier_number"`
}

// FieldsRequest carries every strategy-specific field; which ones apply
// depends on the template type.
type FieldsRequest struct {
	DebtAmount                  decimal.Decimal `json:"debt_amount"`
	FixedMonthlyIncome          float64         `json:"fixed_monthly_income"`
	FixedMonthlyCosts           float64         `json:"fixed_monthly_costs"`
	ExistingArrangementPayments float64         `json:"existing_arrangement_payments"`

	Reason      string `json:"reason"`
	Explanation string `json:"explanation"`

	RecognizedAmount decimal.Decimal `json:"recognized_amount"`
	DisputedAmount   decimal.Decimal `json:"disputed_amount"`
	MonthlyOffer     decimal.Decimal `json:"monthly_offer"`

	PaymentDate      *time.Time      `json:"payment_date"`
	PaymentReference string          `json:"payment_reference"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`

	OriginDate       *time.Time `json:"origin_date"`
	LastActivityDate *time.Time `json:"last_activity_date"`

	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	CollectionCosts decimal.Decimal `json:"collection_costs"`

	CurrentMonthly  decimal.Decimal `json:"current_monthly"`
	ProposedMonthly decimal.Decimal `json:"proposed_monthly"`

	Months int `json:"months"`

	CounselorName string     `json:"counselor_name"`
	EffectiveDate *time.Time `json:"effective_date"`
}

// PreviewRequest is the full preview body. It is also the advance payload
// shape for the defense workflow actions.
type PreviewRequest struct {
	TemplateType string          `json:"template_type" validate:"required"`
	Debtor       PartyRequest    `json:"debtor"`
	Creditor     CreditorRequest `json:"creditor"`
	Fields       FieldsRequest   `json:"fields"`
}

// BuildPayload maps the flat request fields onto the typed letter payload.
func BuildPayload(tmpl letter.TemplateType, f FieldsRequest) (letter.Payload, error) {
	switch tmpl {
	case letter.TypeProposal:
		if !f.DebtAmount.IsPositive() {
			return nil, affordability.ErrInvalidDebtAmount
		}

		breakdown := affordability.ComputeBreakdown(affordability.Snapshot{
			FixedMonthlyIncome:          f.FixedMonthlyIncome,
			FixedMonthlyCosts:           f.FixedMonthlyCosts,
			ExistingArrangementPayments: f.ExistingArrangementPayments,
		})

		plan, err := affordability.ComputePlan(breakdown, f.DebtAmount)
		if err != nil {
			return nil, err
		}

		return letter.ProposalPayload{
			DebtAmount: f.DebtAmount,
			Plan:       plan,
			Breakdown:  breakdown,
		}, nil
	case letter.TypeDispute:
		return letter.DisputePayload{
			Reason:      f.Reason,
			Explanation: f.Explanation,
		}, nil
	case letter.TypePartialRecognition:
		return letter.PartialRecognitionPayload{
			RecognizedAmount: f.RecognizedAmount,
			DisputedAmount:   f.DisputedAmount,
			Reason:           f.Reason,
			MonthlyOffer:     f.MonthlyOffer,
		}, nil
	case letter.TypeAlreadyPaid:
		return letter.AlreadyPaidPayload{
			PaymentDate:      f.PaymentDate,
			PaymentReference: f.PaymentReference,
			PaymentAmount:    f.PaymentAmount,
		}, nil
	case letter.TypeVerjaring:
		return letter.VerjaringPayload{
			OriginDate:       f.OriginDate,
			LastActivityDate: f.LastActivityDate,
		}, nil
	case letter.TypeIncassokostenBezwaar:
		return letter.IncassokostenBezwaarPayload{
			PrincipalAmount: f.PrincipalAmount,
			CollectionCosts: f.CollectionCosts,
			Reason:          f.Reason,
		}, nil
	case letter.TypeLoweringAmount:
		return letter.LoweringAmountPayload{
			CurrentMonthly:  f.CurrentMonthly,
			ProposedMonthly: f.ProposedMonthly,
			Reason:          f.Reason,
		}, nil
	case letter.TypePaymentHoliday:
		return letter.PaymentHolidayPayload{
			Months: f.Months,
			Reason: f.Reason,
		}, nil
	case letter.TypeStopDebtCounseling:
		return letter.StopDebtCounselingPayload{
			CounselorName: f.CounselorName,
			EffectiveDate: f.EffectiveDate,
		}, nil
	default:
		return nil, letter.ErrUnknownTemplate
	}
}

type previewResponse struct {
	TemplateType   letter.TemplateType `json:"template_type"`
	Subject        string              `json:"subject"`
	Body           string              `json:"body"`
	AttachmentHint string              `json:"attachment_hint,omitempty"`
}

func toResponse(l *letter.Letter) previewResponse {
	return previewResponse{
		TemplateType:   l.Type,
		Subject:        l.Subject,
		Body:           l.Body,
		AttachmentHint: l.AttachmentHint,
	}
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req PreviewRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	cacheKey := lettercache.Key(body, h.now())

	if h.cache != nil {
		if cached, ok := h.cache.Get(r.Context(), cacheKey); ok {
			writeJSON(w, http.StatusOK, toResponse(cached))
			return
		}
	}

	payload, err := BuildPayload(letter.TemplateType(req.TemplateType), req.Fields)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	built, err := letter.Build(letter.Request{
		Debtor: letter.Party{
			Name:       req.Debtor.Name,
			Address:    req.Debtor.Address,
			PostalCode: req.Debtor.PostalCode,
			City:       req.Debtor.City,
			Email:      req.Debtor.Email,
			Phone:      req.Debtor.Phone,
		},
		Creditor: letter.Creditor{
			Name:          req.Creditor.Name,
			Address:       req.Creditor.Address,
			PostalCode:    req.Creditor.PostalCode,
			City:          req.Creditor.City,
			DossierNumber: req.Creditor.DossierNumber,
		},
		Today:   h.now(),
		Payload: payload,
	})
	if err != nil {
		if errors.Is(err, letter.ErrUnknownTemplate) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if h.cache != nil {
		h.cache.Set(r.Context(), cacheKey, &built)
	}

	writeJSON(w, http.StatusOK, toResponse(&built))
}

func (h *Handler) types(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, letter.Types())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
