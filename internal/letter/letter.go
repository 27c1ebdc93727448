// Package letter builds creditor-facing correspondence. Every builder is a
// pure string assembler: the caller supplies all data including the current
// date, so output is fully deterministic and snapshot-testable. Missing
// fields render as bracketed placeholders, never as blanks, because the text
// is handed to the user for manual editing and sending.
package letter

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"schuldwijzer/internal/affordability"
)

// TemplateType identifies the negotiation posture a letter takes.
type TemplateType string

const (
	TypeProposal             TemplateType = "proposal"
	TypeDispute              TemplateType = "dispute"
	TypePartialRecognition   TemplateType = "partial_recognition"
	TypeAlreadyPaid          TemplateType = "already_paid"
	TypeVerjaring            TemplateType = "verjaring"
	TypeIncassokostenBezwaar TemplateType = "incassokosten_bezwaar"
	TypeLoweringAmount       TemplateType = "lowering_amount"
	TypePaymentHoliday       TemplateType = "payment_holiday"
	TypeStopDebtCounseling   TemplateType = "stop_debt_counseling"
)

// Types returns all known template types.
func Types() []TemplateType {
	return []TemplateType{
		TypeProposal, TypeDispute, TypePartialRecognition, TypeAlreadyPaid,
		TypeVerjaring, TypeIncassokostenBezwaar, TypeLoweringAmount,
		TypePaymentHoliday, TypeStopDebtCounseling,
	}
}

var (
	ErrMissingPayload  = errors.New("letter payload is required")
	ErrPayloadMismatch = errors.New("payload does not match template type")
	ErrUnknownTemplate = errors.New("unknown template type")
	ErrMissingField    = errors.New("required field missing")
)

// Party is the debtor writing the letter.
type Party struct {
	Name       string
	Address    string
	PostalCode string
	City       string
	Email      string
	Phone      string
}

// Creditor is the addressed party.
type Creditor struct {
	Name          string
	Address       string
	PostalCode    string
	City          string
	DossierNumber string
}

// Letter is the assembled output. Subject and AttachmentHint are structured
// metadata; they are not embedded in the body.
type Letter struct {
	Type           TemplateType
	Subject        string
	Body           string
	AttachmentHint string
}

// Payload carries the strategy-specific fields of one template type. The
// tagged union keeps each strategy's required data separate and lets Build
// dispatch through a single table. Validate reports the fields a strategy
// cannot be sent without; previews skip it and render placeholders instead.
type Payload interface {
	templateType() TemplateType
	Validate() error
}

// ProposalPayload drives the mainline letter: pay-in-full, installment or
// debt-rest depending on the computed plan.
type ProposalPayload struct {
	DebtAmount decimal.Decimal
	Plan       affordability.Plan
	Breakdown  affordability.Breakdown
}

// DisputePayload contests the claim in full.
type DisputePayload struct {
	Reason      string
	Explanation string
}

// PartialRecognitionPayload recognizes part of the claim and disputes the
// rest; MonthlyOffer proposes a plan for the recognized part.
type PartialRecognitionPayload struct {
	RecognizedAmount decimal.Decimal
	DisputedAmount   decimal.Decimal
	Reason           string
	MonthlyOffer     decimal.Decimal
}

// AlreadyPaidPayload claims the debt was settled before.
type AlreadyPaidPayload struct {
	PaymentDate      *time.Time
	PaymentReference string
	PaymentAmount    decimal.Decimal
}

// VerjaringPayload invokes the statute of limitations.
type VerjaringPayload struct {
	OriginDate       *time.Time
	LastActivityDate *time.Time
}

// IncassokostenBezwaarPayload objects to the collection costs charged on top
// of the principal.
type IncassokostenBezwaarPayload struct {
	PrincipalAmount decimal.Decimal
	CollectionCosts decimal.Decimal
	Reason          string
}

// LoweringAmountPayload asks to lower the monthly amount of a running
// arrangement.
type LoweringAmountPayload struct {
	CurrentMonthly  decimal.Decimal
	ProposedMonthly decimal.Decimal
	Reason          string
}

// PaymentHolidayPayload asks to pause a running arrangement.
type PaymentHolidayPayload struct {
	Months int
	Reason string
}

// StopDebtCounselingPayload ends an assisted debt-counseling track.
type StopDebtCounselingPayload struct {
	CounselorName string
	EffectiveDate *time.Time
}

func (ProposalPayload) templateType() TemplateType             { return TypeProposal }
func (DisputePayload) templateType() TemplateType              { return TypeDispute }
func (PartialRecognitionPayload) templateType() TemplateType   { return TypePartialRecognition }
func (AlreadyPaidPayload) templateType() TemplateType          { return TypeAlreadyPaid }
func (VerjaringPayload) templateType() TemplateType            { return TypeVerjaring }
func (IncassokostenBezwaarPayload) templateType() TemplateType { return TypeIncassokostenBezwaar }
func (LoweringAmountPayload) templateType() TemplateType       { return TypeLoweringAmount }
func (PaymentHolidayPayload) templateType() TemplateType       { return TypePaymentHoliday }
func (StopDebtCounselingPayload) templateType() TemplateType   { return TypeStopDebtCounseling }

func missingField(name string) error {
	return fmt.Errorf("%s: %w", name, ErrMissingField)
}

func (p ProposalPayload) Validate() error {
	if !p.DebtAmount.IsPositive() {
		return missingField("debt amount")
	}

	return nil
}

func (p DisputePayload) Validate() error {
	if p.Reason == "" {
		return missingField("dispute reason")
	}

	return nil
}

func (p PartialRecognitionPayload) Validate() error {
	if !p.RecognizedAmount.IsPositive() {
		return missingField("recognized amount")
	}

	if !p.DisputedAmount.IsPositive() {
		return missingField("disputed amount")
	}

	if p.Reason == "" {
		return missingField("dispute reason")
	}

	return nil
}

func (p AlreadyPaidPayload) Validate() error {
	if p.PaymentDate == nil {
		return missingField("payment date")
	}

	if p.PaymentReference == "" {
		return missingField("payment reference")
	}

	return nil
}

func (p VerjaringPayload) Validate() error {
	if p.LastActivityDate == nil {
		return missingField("last activity date")
	}

	return nil
}

func (p IncassokostenBezwaarPayload) Validate() error {
	if !p.PrincipalAmount.IsPositive() {
		return missingField("principal amount")
	}

	if !p.CollectionCosts.IsPositive() {
		return missingField("collection costs")
	}

	return nil
}

func (p LoweringAmountPayload) Validate() error {
	if !p.ProposedMonthly.IsPositive() {
		return missingField("proposed monthly amount")
	}

	if p.Reason == "" {
		return missingField("reason")
	}

	return nil
}

func (p PaymentHolidayPayload) Validate() error {
	if p.Months < 1 {
		return missingField("number of months")
	}

	if p.Reason == "" {
		return missingField("reason")
	}

	return nil
}

func (p StopDebtCounselingPayload) Validate() error {
	if p.CounselorName == "" {
		return missingField("counselor name")
	}

	return nil
}

// Request bundles the common letter inputs. Today is the frozen letter date,
// injected by the caller; builders never read the wall clock.
type Request struct {
	Debtor   Party
	Creditor Creditor
	Today    time.Time
	Payload  Payload
}

// Build assembles the letter for the payload's template type.
func Build(req Request) (Letter, error) {
	if req.Payload == nil {
		return Letter{}, ErrMissingPayload
	}

	tmpl := req.Payload.templateType()

	build, ok := builders[tmpl]
	if !ok {
		return Letter{}, fmt.Errorf("template %q: %w", tmpl, ErrUnknownTemplate)
	}

	return build(req)
}
