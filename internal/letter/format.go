package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dutch renders grouped numbers the Dutch way (1.234,56).
var dutch = message.NewPrinter(language.Dutch)

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

// resolve is the single field-resolution policy for letter assembly: a
// non-blank value is used as-is, anything else becomes an explicit bracketed
// placeholder the user can fill in. Letters never render blanks.
func resolve(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return "[" + placeholder + "]"
	}

	return value
}

// resolveAmount treats a zero amount as not supplied.
func resolveAmount(d decimal.Decimal, placeholder string) string {
	if d.IsZero() {
		return "[" + placeholder + "]"
	}

	return formatAmount(d)
}

func resolveDate(t *time.Time, placeholder string) string {
	if t == nil || t.IsZero() {
		return "[" + placeholder + "]"
	}

	return formatDate(*t)
}

// formatAmount renders a currency value with the euro sign and exactly two
// decimals, e.g. "€ 1.234,56".
func formatAmount(d decimal.Decimal) string {
	return dutch.Sprintf("€ %.2f", d.InexactFloat64())
}

// formatDate renders a calendar date in Dutch long form, e.g. "2 januari 2026".
// Time of day is never part of a letter.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), dutchMonths[t.Month()-1], t.Year())
}
