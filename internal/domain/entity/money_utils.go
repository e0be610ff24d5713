package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmountInCents is the largest value a numeric(10,2) column can hold
const MaxAmountInCents int64 = 9999999999

// ValidateAndConvertAmount validates a decimal string and converts it to cents.
// The fractional part is padded to two digits and the point removed:
// - "10"    -> 1000
// - "10.5"  -> 1050
// - "10.55" -> 1055
// Negative values, more than two fractional digits and values above
// MaxAmountInCents are rejected.
func ValidateAndConvertAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	parts := strings.Split(amount, ".")
	if len(parts) > 2 {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	whole := parts[0]
	fraction := ""
	if len(parts) == 2 {
		fraction = parts[1]
	}

	if whole == "" && fraction == "" {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if !isDigits(whole) || !isDigits(fraction) {
		return 0, fmt.Errorf("%w: only digits and a single decimal point are allowed", errs.ErrInvalidAmount)
	}

	switch len(fraction) {
	case 0:
		fraction = "00"
	case 1:
		fraction += "0"
	case 2:
	default:
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	value, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrAmountOverflow, err.Error())
	}
	if value > MaxAmountInCents {
		return 0, fmt.Errorf("%w: maximum is %s", errs.ErrAmountOverflow, AmountInCentsToString(MaxAmountInCents))
	}

	return value, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AmountInCentsToString converts integer amount to a decimal string
// For example:
// - 1015 becomes "10.15"
// - 1000 becomes "10.00"
// - -5 becomes "-0.05"
func AmountInCentsToString(amountInCents int64) string {
	isNegative := amountInCents < 0
	if isNegative {
		amountInCents = -amountInCents
	}

	amountStr := strconv.FormatInt(amountInCents, 10)

	// Ensure minimum length
	for len(amountStr) < 3 {
		amountStr = "0" + amountStr
	}

	decimalPos := len(amountStr) - 2
	wholePart := amountStr[:decimalPos]
	decimalPart := amountStr[decimalPos:]

	if isNegative {
		return "-" + wholePart + "." + decimalPart
	}
	return wholePart + "." + decimalPart
}

// DivideRoundHalfUp divides a non-negative cent total into n equal shares,
// rounding half a cent upwards.
func DivideRoundHalfUp(totalInCents int64, n int) int64 {
	if n <= 0 {
		return 0
	}
	d := int64(n)
	return (2*totalInCents + d) / (2 * d)
}
