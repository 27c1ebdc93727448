package letter

import (
	"fmt"
	"strings"
	"time"

	"schuldwijzer/internal/affordability"
)

type builderFunc func(Request) (Letter, error)

// builders is the single dispatch table over template types; adding a type
// means adding a payload variant and one entry here.
var builders = map[TemplateType]builderFunc{
	TypeProposal:             buildProposal,
	TypeDispute:              buildDispute,
	TypePartialRecognition:   buildPartialRecognition,
	TypeAlreadyPaid:          buildAlreadyPaid,
	TypeVerjaring:            buildVerjaring,
	TypeIncassokostenBezwaar: buildIncassokostenBezwaar,
	TypeLoweringAmount:       buildLoweringAmount,
	TypePaymentHoliday:       buildPaymentHoliday,
	TypeStopDebtCounseling:   buildStopDebtCounseling,
}

func payloadMismatch(want TemplateType, got Payload) error {
	return fmt.Errorf("payload %T for template %q: %w", got, want, ErrPayloadMismatch)
}

// compose lays out the shared letter frame: sender block, addressee block,
// place and date, subject and dossier reference, salutation, body paragraphs
// and signature. All field gaps go through resolve.
func compose(req Request, subject string, paragraphs []string, askReply bool) string {
	var sb strings.Builder

	d := req.Debtor
	c := req.Creditor

	sb.WriteString(resolve(d.Name, "naam invullen") + "\n")
	sb.WriteString(resolve(d.Address, "adres invullen") + "\n")
	sb.WriteString(resolve(d.PostalCode, "postcode invullen") + " " + resolve(d.City, "woonplaats invullen") + "\n\n")

	sb.WriteString("Aan: " + resolve(c.Name, "naam schuldeiser invullen") + "\n")
	sb.WriteString(resolve(c.Address, "adres schuldeiser invullen") + "\n")
	sb.WriteString(resolve(c.PostalCode, "postcode invullen") + " " + resolve(c.City, "plaats invullen") + "\n\n")

	sb.WriteString(resolve(d.City, "woonplaats invullen") + ", " + formatDate(req.Today) + "\n\n")

	sb.WriteString("Betreft: " + subject + "\n")
	sb.WriteString("Kenmerk: " + resolve(c.DossierNumber, "dossiernummer invullen") + "\n\n")

	sb.WriteString("Geachte heer/mevrouw,\n\n")

	for _, p := range paragraphs {
		sb.WriteString(p + "\n\n")
	}

	if askReply {
		sb.WriteString("Ik verzoek u vriendelijk binnen 14 dagen schriftelijk op deze brief te reageren.\n\n")
	}

	sb.WriteString("Met vriendelijke groet,\n\n")
	sb.WriteString(resolve(d.Name, "naam invullen") + "\n")
	sb.WriteString(resolve(d.Email, "e-mailadres invullen") + "\n")
	sb.WriteString(resolve(d.Phone, "telefoonnummer invullen") + "\n")

	return sb.String()
}

func buildProposal(req Request) (Letter, error) {
	p, ok := req.Payload.(ProposalPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeProposal, req.Payload)
	}

	opening := fmt.Sprintf(
		"Volgens uw administratie ben ik u een bedrag van %s verschuldigd. Ik wil deze schuld graag oplossen en heb daarvoor mijn volledige financiële situatie in kaart gebracht.",
		resolveAmount(p.DebtAmount, "schuldbedrag invullen"),
	)

	situation := fmt.Sprintf(
		"Mijn besteedbare inkomen bedraagt %s per maand. Daarvan is %s beschikbaar voor het aflossen van schulden; na aftrek van lopende betalingsverplichtingen resteert %s per maand voor een nieuwe afspraak.",
		formatAmount(p.Breakdown.DisposableIncome),
		formatAmount(p.Breakdown.RepaymentCapacity),
		formatAmount(p.Breakdown.AvailableForNewArrangement),
	)

	var (
		subject string
		offer   string
	)

	switch p.Plan.Kind {
	case affordability.PlanPayInFull:
		subject = "Voorstel tot betaling ineens"
		offer = fmt.Sprintf(
			"Ik stel voor het volledige bedrag van %s in één keer te voldoen. Na ontvangst van uw schriftelijke akkoord maak ik het bedrag binnen 14 dagen aan u over, waarmee de vordering volledig is afgedaan.",
			resolveAmount(p.DebtAmount, "schuldbedrag invullen"),
		)
	case affordability.PlanInstallment:
		subject = "Voorstel betalingsregeling"
		offer = fmt.Sprintf(
			"Ik stel een betalingsregeling voor van %s per maand, ingaande de eerstvolgende kalendermaand na uw akkoord. Daarmee is de vordering in %d maanden volledig voldaan.",
			resolveAmount(p.Plan.MonthlyAmount, "maandbedrag invullen"),
			p.Plan.Months,
		)
	case affordability.PlanDebtRest:
		subject = "Verzoek om uitstel van betaling"
		offer = "Uit dit overzicht blijkt dat ik op dit moment geen reële afloscapaciteit heb. Ik verzoek u daarom de vordering tijdelijk te pauzeren en af te zien van verdere incassomaatregelen, totdat mijn situatie verbetert. Ik informeer u zodra er weer ruimte is voor een betalingsvoorstel."
	default:
		return Letter{}, fmt.Errorf("proposal letter: unknown plan kind %q", p.Plan.Kind)
	}

	body := compose(req, subject, []string{opening, situation, offer}, true)

	return Letter{
		Type:           TypeProposal,
		Subject:        subject,
		Body:           body,
		AttachmentHint: "overzicht van inkomsten en vaste lasten",
	}, nil
}

func buildDispute(req Request) (Letter, error) {
	p, ok := req.Payload.(DisputePayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeDispute, req.Payload)
	}

	subject := "Betwisting van de vordering"

	paragraphs := []string{
		fmt.Sprintf(
			"Hierbij betwist ik de vordering die u bij mij in rekening brengt. Reden van betwisting: %s.",
			resolve(p.Reason, "reden van betwisting invullen"),
		),
		resolve(p.Explanation, "toelichting invullen"),
		"Zolang de vordering betwist is, verzoek ik u de invordering op te schorten en geen verdere kosten in rekening te brengen. Graag ontvang ik van u een schriftelijke onderbouwing van de vordering, dan wel een bevestiging dat u deze intrekt.",
	}

	return Letter{
		Type:           TypeDispute,
		Subject:        subject,
		Body:           compose(req, subject, paragraphs, true),
		AttachmentHint: "stukken die de betwisting onderbouwen",
	}, nil
}

func buildPartialRecognition(req Request) (Letter, error) {
	p, ok := req.Payload.(PartialRecognitionPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypePartialRecognition, req.Payload)
	}

	subject := "Gedeeltelijke erkenning van de vordering"

	paragraphs := []string{
		fmt.Sprintf(
			"Van de vordering die u bij mij in rekening brengt erken ik een bedrag van %s. Het resterende deel van %s betwist ik. Reden: %s.",
			resolveAmount(p.RecognizedAmount, "erkend bedrag invullen"),
			resolveAmount(p.DisputedAmount, "betwist bedrag invullen"),
			resolve(p.Reason, "reden van betwisting invullen"),
		),
		fmt.Sprintf(
			"Voor het erkende deel stel ik een betalingsregeling voor van %s per maand, ingaande na uw schriftelijke akkoord.",
			resolveAmount(p.MonthlyOffer, "maandbedrag invullen"),
		),
		"Ik verzoek u de vordering aan te passen tot het erkende bedrag en mij dit schriftelijk te bevestigen.",
	}

	return Letter{
		Type:    TypePartialRecognition,
		Subject: subject,
		Body:    compose(req, subject, paragraphs, true),
	}, nil
}

func buildAlreadyPaid(req Request) (Letter, error) {
	p, ok := req.Payload.(AlreadyPaidPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeAlreadyPaid, req.Payload)
	}

	subject := "Vordering is reeds voldaan"

	paragraphs := []string{
		fmt.Sprintf(
			"Volgens mijn administratie is de vordering waarop u aanspraak maakt reeds voldaan. De betaling van %s is gedaan op %s met betalingskenmerk %s.",
			resolveAmount(p.PaymentAmount, "betaald bedrag invullen"),
			resolveDate(p.PaymentDate, "betaaldatum invullen"),
			resolve(p.PaymentReference, "betalingskenmerk invullen"),
		),
		"Een bewijs van deze betaling voeg ik als bijlage toe. Ik verzoek u uw administratie hierop na te kijken, de vordering als voldaan af te boeken en eventuele incassomaatregelen te staken.",
	}

	return Letter{
		Type:           TypeAlreadyPaid,
		Subject:        subject,
		Body:           compose(req, subject, paragraphs, true),
		AttachmentHint: "betaalbewijs (bankafschrift of kwitantie)",
	}, nil
}

func buildVerjaring(req Request) (Letter, error) {
	p, ok := req.Payload.(VerjaringPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeVerjaring, req.Payload)
	}

	subject := "Beroep op verjaring"

	paragraphs := []string{
		fmt.Sprintf(
			"De vordering waarop u aanspraak maakt is ontstaan op %s. De laatste aantoonbare handeling ter zake van deze vordering dateert van %s.",
			resolveDate(p.OriginDate, "ontstaansdatum invullen"),
			resolveDate(p.LastActivityDate, "datum laatste contact invullen"),
		),
		"Gelet op het tijdsverloop beroep ik mij op verjaring van deze vordering. Ik ben dan ook niet gehouden tot betaling en verzoek u de invordering te staken.",
		"Mocht u van mening zijn dat de verjaring tijdig is gestuit, dan ontvang ik daarvan graag schriftelijk bewijs.",
	}

	return Letter{
		Type:    TypeVerjaring,
		Subject: subject,
		Body:    compose(req, subject, paragraphs, true),
	}, nil
}

func buildIncassokostenBezwaar(req Request) (Letter, error) {
	p, ok := req.Payload.(IncassokostenBezwaarPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeIncassokostenBezwaar, req.Payload)
	}

	subject := "Bezwaar tegen incassokosten"

	paragraphs := []string{
		fmt.Sprintf(
			"U brengt mij naast de hoofdsom van %s een bedrag van %s aan incassokosten in rekening. Tegen deze kosten maak ik bezwaar. Reden: %s.",
			resolveAmount(p.PrincipalAmount, "hoofdsom invullen"),
			resolveAmount(p.CollectionCosts, "incassokosten invullen"),
			resolve(p.Reason, "reden van bezwaar invullen"),
		),
		"Ik verzoek u mij een specificatie van de in rekening gebrachte kosten te sturen en deze te beperken tot wat wettelijk is toegestaan. De hoofdsom betwist ik niet; daarover maak ik graag afspraken zodra de kosten zijn gecorrigeerd.",
	}

	return Letter{
		Type:           TypeIncassokostenBezwaar,
		Subject:        subject,
		Body:           compose(req, subject, paragraphs, true),
		AttachmentHint: "kopie van de aanmaning met kostenspecificatie",
	}, nil
}

func buildLoweringAmount(req Request) (Letter, error) {
	p, ok := req.Payload.(LoweringAmountPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeLoweringAmount, req.Payload)
	}

	subject := "Verzoek tot verlaging van het maandbedrag"

	paragraphs := []string{
		fmt.Sprintf(
			"Met u heb ik een betalingsregeling lopen van %s per maand. Door gewijzigde omstandigheden kan ik dit bedrag niet langer opbrengen. Reden: %s.",
			resolveAmount(p.CurrentMonthly, "huidig maandbedrag invullen"),
			resolve(p.Reason, "reden invullen"),
		),
		fmt.Sprintf(
			"Ik verzoek u het maandbedrag te verlagen naar %s. Dit bedrag sluit aan bij mijn huidige afloscapaciteit, zodat ik de regeling kan blijven nakomen.",
			resolveAmount(p.ProposedMonthly, "voorgesteld maandbedrag invullen"),
		),
	}

	return Letter{
		Type:           TypeLoweringAmount,
		Subject:        subject,
		Body:           compose(req, subject, paragraphs, true),
		AttachmentHint: "actueel overzicht van inkomsten en vaste lasten",
	}, nil
}

func buildPaymentHoliday(req Request) (Letter, error) {
	p, ok := req.Payload.(PaymentHolidayPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypePaymentHoliday, req.Payload)
	}

	months := "[aantal maanden invullen]"
	if p.Months > 0 {
		months = fmt.Sprintf("%d maanden", p.Months)
	}

	subject := "Verzoek om betaalpauze"

	paragraphs := []string{
		fmt.Sprintf(
			"Met u heb ik een betalingsregeling lopen. Door gewijzigde omstandigheden verzoek ik u deze regeling tijdelijk te pauzeren voor een periode van %s. Reden: %s.",
			months,
			resolve(p.Reason, "reden invullen"),
		),
		"Na afloop van de betaalpauze hervat ik de regeling volgens de bestaande afspraken. Graag ontvang ik uw schriftelijke bevestiging.",
	}

	return Letter{
		Type:    TypePaymentHoliday,
		Subject: subject,
		Body:    compose(req, subject, paragraphs, true),
	}, nil
}

func buildStopDebtCounseling(req Request) (Letter, error) {
	p, ok := req.Payload.(StopDebtCounselingPayload)
	if !ok {
		return Letter{}, payloadMismatch(TypeStopDebtCounseling, req.Payload)
	}

	subject := "Beëindiging schuldhulpverlening"

	paragraphs := []string{
		fmt.Sprintf(
			"Hierbij deel ik u mede dat ik het schuldhulptraject bij %s beëindig per %s.",
			resolve(p.CounselorName, "naam schuldhulpverlener invullen"),
			resolveDate(p.EffectiveDate, "einddatum invullen"),
		),
		"Vanaf die datum onderhoud ik zelf het contact met mijn schuldeisers over lopende en nieuwe afspraken. Ik verzoek u correspondentie voortaan rechtstreeks aan mij te richten.",
	}

	return Letter{
		Type:    TypeStopDebtCounseling,
		Subject: subject,
		Body:    compose(req, subject, paragraphs, false),
	}, nil
}

// Reminder builds a follow-up for a letter that received no response. It is
// not a template type of its own: the reminder references the original
// proposal and does not change the negotiation posture.
func Reminder(debtor Party, creditor Creditor, originalSubject string, sentDate, today time.Time) Letter {
	subject := "Herinnering: " + resolve(originalSubject, "onderwerp invullen")

	paragraphs := []string{
		fmt.Sprintf(
			"Op %s stuurde ik u een brief met als onderwerp \"%s\". Tot op heden heb ik daarop geen reactie van u ontvangen.",
			formatDate(sentDate),
			resolve(originalSubject, "onderwerp invullen"),
		),
		"Ik verzoek u alsnog binnen 14 dagen schriftelijk te reageren. Blijft een reactie uit, dan ga ik ervan uit dat u niet met mijn voorstel instemt.",
	}

	return Letter{
		Subject: subject,
		Body: compose(Request{Debtor: debtor, Creditor: creditor, Today: today},
			subject, paragraphs, false),
	}
}
