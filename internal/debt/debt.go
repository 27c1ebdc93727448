package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the externally visible state of a debt. The workflow engine
// transitions it but does not otherwise own it.
type Status string

const (
	StatusInactive          Status = "inactive"
	StatusBetalingsregeling Status = "betalingsregeling"
	StatusAfbetaald         Status = "afbetaald"
	StatusWachtend          Status = "wachtend"
	StatusPauze             Status = "pauze"
)

var ErrNotFound = errors.New("debt not found")

// Debt is a single creditor claim against the debtor.
type Debt struct {
	ID                 uuid.UUID
	CreditorName       string
	CreditorAddress    string
	CreditorPostalCode string
	CreditorCity       string
	DossierNumber      string
	Amount             decimal.Decimal
	Status             Status
	MonthlyPayment     *decimal.Decimal // set once an arrangement exists
	PaymentPlanDate    *time.Time
	ResolvedDate       *time.Time
	ResolvedReason     string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// Income is a fixed monthly income record.
type Income struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// FixedCost is a fixed monthly cost record.
type FixedCost struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
}

// Profile holds the debtor's own contact details, used as the sender block
// of every letter. There is exactly one profile.
type Profile struct {
	Name       string
	Address    string
	PostalCode string
	City       string
	Email      string
	Phone      string
}
