package letter_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schuldwijzer/internal/affordability"
	"schuldwijzer/internal/letter"
)

var (
	testToday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	testDebtor = letter.Party{
		Name:       "J. de Vries",
		Address:    "Dorpsstraat 1",
		PostalCode: "1234 AB",
		City:       "Utrecht",
		Email:      "j.devries@example.org",
		Phone:      "06-12345678",
	}

	testCreditor = letter.Creditor{
		Name:          "Incassobureau Noord BV",
		Address:       "Postbus 99",
		PostalCode:    "9700 AA",
		City:          "Groningen",
		DossierNumber: "D-2026-0042",
	}
)

func buildRequest(p letter.Payload) letter.Request {
	return letter.Request{
		Debtor:   testDebtor,
		Creditor: testCreditor,
		Today:    testToday,
		Payload:  p,
	}
}

func TestBuild_Deterministic(t *testing.T) {
	req := buildRequest(letter.DisputePayload{
		Reason:      "de bestelling is nooit geleverd",
		Explanation: "Op 12 januari heb ik de bestelling geannuleerd.",
	})

	first, err := letter.Build(req)
	require.NoError(t, err)

	second, err := letter.Build(req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_MissingFieldsBecomePlaceholders(t *testing.T) {
	req := letter.Request{
		Today:   testToday,
		Payload: letter.DisputePayload{},
	}

	got, err := letter.Build(req)
	require.NoError(t, err)

	assert.Contains(t, got.Body, "[naam invullen]")
	assert.Contains(t, got.Body, "[naam schuldeiser invullen]")
	assert.Contains(t, got.Body, "[dossiernummer invullen]")
	assert.Contains(t, got.Body, "[reden van betwisting invullen]")
	assert.NotContains(t, got.Body, "undefined")

	// No resolved field ever renders empty: every non-blank header line has
	// visible content.
	for _, line := range strings.Split(got.Body, "\n") {
		assert.Equal(t, strings.TrimSpace(line) == "", line == "",
			"line %q mixes blank and content", line)
	}
}

func TestBuild_ProposalVariants(t *testing.T) {
	breakdown := affordability.ComputeBreakdown(affordability.Snapshot{
		FixedMonthlyIncome: 2000,
		FixedMonthlyCosts:  1500,
	})

	type testCase struct {
		name         string
		plan         affordability.Plan
		wantSubject  string
		wantInBody   []string
		wantSentence string
	}

	tests := []testCase{
		{
			name:        "PayInFull",
			plan:        affordability.Plan{Kind: affordability.PlanPayInFull},
			wantSubject: "Voorstel tot betaling ineens",
			wantInBody:  []string{"€ 75,00", "€ 80,00", "in één keer"},
		},
		{
			name: "Installment",
			plan: affordability.Plan{
				Kind:          affordability.PlanInstallment,
				MonthlyAmount: decimal.NewFromInt(50),
				Months:        2,
			},
			wantSubject: "Voorstel betalingsregeling",
			wantInBody:  []string{"€ 50,00 per maand", "in 2 maanden volledig voldaan"},
		},
		{
			name:        "DebtRest",
			plan:        affordability.Plan{Kind: affordability.PlanDebtRest},
			wantSubject: "Verzoek om uitstel van betaling",
			wantInBody:  []string{"tijdelijk te pauzeren"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := letter.Build(buildRequest(letter.ProposalPayload{
				DebtAmount: decimal.NewFromInt(80),
				Plan:       tt.plan,
				Breakdown:  breakdown,
			}))
			require.NoError(t, err)

			assert.Equal(t, letter.TypeProposal, got.Type)
			assert.Equal(t, tt.wantSubject, got.Subject)
			assert.Contains(t, got.Body, "€ 500,00") // disposable income
			for _, want := range tt.wantInBody {
				assert.Contains(t, got.Body, want)
			}
		})
	}
}

func TestBuild_AlreadyPaidVerbatimValues(t *testing.T) {
	paymentDate := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)

	got, err := letter.Build(buildRequest(letter.AlreadyPaidPayload{
		PaymentDate:      &paymentDate,
		PaymentReference: "FACT-8812",
		PaymentAmount:    decimal.RequireFromString("149.95"),
	}))
	require.NoError(t, err)

	assert.Equal(t, letter.TypeAlreadyPaid, got.Type)
	assert.Contains(t, got.Body, "15 november 2025")
	assert.Contains(t, got.Body, "FACT-8812")
	assert.Contains(t, got.Body, "€ 149,95")
	assert.NotContains(t, got.Body, "[")
	assert.Equal(t, "betaalbewijs (bankafschrift of kwitantie)", got.AttachmentHint)
}

func TestBuild_DutchAmountGrouping(t *testing.T) {
	got, err := letter.Build(buildRequest(letter.PartialRecognitionPayload{
		RecognizedAmount: decimal.RequireFromString("1234.56"),
		DisputedAmount:   decimal.RequireFromString("765.44"),
		Reason:           "dubbel gefactureerd",
		MonthlyOffer:     decimal.NewFromInt(25),
	}))
	require.NoError(t, err)

	assert.Contains(t, got.Body, "€ 1.234,56")
	assert.Contains(t, got.Body, "€ 765,44")
}

func TestBuild_HeaderAndMetadata(t *testing.T) {
	got, err := letter.Build(buildRequest(letter.VerjaringPayload{}))
	require.NoError(t, err)

	assert.Contains(t, got.Body, "Utrecht, 2 maart 2026")
	assert.Contains(t, got.Body, "Betreft: Beroep op verjaring")
	assert.Contains(t, got.Body, "Kenmerk: D-2026-0042")
	assert.Contains(t, got.Body, "[ontstaansdatum invullen]")
	assert.NotContains(t, got.Subject, "\n")
}

func TestBuild_MissingPayload(t *testing.T) {
	_, err := letter.Build(letter.Request{Today: testToday})
	assert.ErrorIs(t, err, letter.ErrMissingPayload)
}

func TestBuild_AllTypesHaveBuilders(t *testing.T) {
	payloads := []letter.Payload{
		letter.ProposalPayload{Plan: affordability.Plan{Kind: affordability.PlanDebtRest}},
		letter.DisputePayload{},
		letter.PartialRecognitionPayload{},
		letter.AlreadyPaidPayload{},
		letter.VerjaringPayload{},
		letter.IncassokostenBezwaarPayload{},
		letter.LoweringAmountPayload{},
		letter.PaymentHolidayPayload{},
		letter.StopDebtCounselingPayload{},
	}
	require.Len(t, payloads, len(letter.Types()))

	for _, p := range payloads {
		got, err := letter.Build(buildRequest(p))
		require.NoError(t, err)
		assert.NotEmpty(t, got.Subject)
		assert.NotEmpty(t, got.Body)
		assert.NotEmpty(t, got.Type)
	}
}

func TestReminder(t *testing.T) {
	sent := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	got := letter.Reminder(testDebtor, testCreditor, "Voorstel betalingsregeling", sent, testToday)

	assert.Equal(t, "Herinnering: Voorstel betalingsregeling", got.Subject)
	assert.Contains(t, got.Body, "10 februari 2026")
	assert.Contains(t, got.Body, "geen reactie")
}

func TestPayloadValidation(t *testing.T) {
	paymentDate := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(120)

	tests := []struct {
		name     string
		empty    letter.Payload
		complete letter.Payload
	}{
		{
			name:     "Proposal",
			empty:    letter.ProposalPayload{},
			complete: letter.ProposalPayload{DebtAmount: amount},
		},
		{
			name:     "Dispute",
			empty:    letter.DisputePayload{},
			complete: letter.DisputePayload{Reason: "nooit besteld"},
		},
		{
			name:  "PartialRecognition",
			empty: letter.PartialRecognitionPayload{},
			complete: letter.PartialRecognitionPayload{
				RecognizedAmount: amount,
				DisputedAmount:   amount,
				Reason:           "dubbel gefactureerd",
			},
		},
		{
			name:  "AlreadyPaid",
			empty: letter.AlreadyPaidPayload{},
			complete: letter.AlreadyPaidPayload{
				PaymentDate:      &paymentDate,
				PaymentReference: "FACT-8812",
			},
		},
		{
			name:     "Verjaring",
			empty:    letter.VerjaringPayload{},
			complete: letter.VerjaringPayload{LastActivityDate: &paymentDate},
		},
		{
			name:  "IncassokostenBezwaar",
			empty: letter.IncassokostenBezwaarPayload{},
			complete: letter.IncassokostenBezwaarPayload{
				PrincipalAmount: amount,
				CollectionCosts: amount,
			},
		},
		{
			name:  "LoweringAmount",
			empty: letter.LoweringAmountPayload{},
			complete: letter.LoweringAmountPayload{
				ProposedMonthly: amount,
				Reason:          "inkomensdaling",
			},
		},
		{
			name:     "PaymentHoliday",
			empty:    letter.PaymentHolidayPayload{},
			complete: letter.PaymentHolidayPayload{Months: 3, Reason: "tijdelijk geen werk"},
		},
		{
			name:     "StopDebtCounseling",
			empty:    letter.StopDebtCounselingPayload{},
			complete: letter.StopDebtCounselingPayload{CounselorName: "J. de Boer"},
		},
	}
	require.Len(t, tests, len(letter.Types()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.empty.Validate(), letter.ErrMissingField)
			assert.NoError(t, tt.complete.Validate())
		})
	}
}
