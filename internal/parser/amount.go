// Package parser turns raw bank notification text into structured transaction
// fields. All functions here are pure: same input, same output, no I/O.
package parser

import (
	"regexp"
	"strings"

	"github.com/paisatrack/paisa_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Matches an optional currency marker (INR 1,234.56 | Rs.1,234 | ₹500) followed
// by a numeric token with comma-grouped thousands and an optional two-digit
// fractional part.
var amountPattern = regexp.MustCompile(`(?i)(?:inr|rs\.?|₹)?\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{2})?)`)

// ExtractAmount locates the first monetary magnitude in text and parses it as
// a decimal. It returns apperrors.ErrNoAmount when no numeric token is present
// or the token does not parse.
func ExtractAmount(text string) (decimal.Decimal, error) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, apperrors.ErrNoAmount
	}

	raw := strings.ReplaceAll(m[1], ",", "")
	raw = strings.Join(strings.Fields(raw), "")

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.ErrNoAmount
	}
	return amount, nil
}
