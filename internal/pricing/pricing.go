package pricing

import (
	"fmt"
	"math"
	"strings"
)

// FinancingFeeRate is the fee fraction applied when an order is financed.
const FinancingFeeRate = 0.075

// FinancingFee returns the financing fee for an amount. It applies only
// when the monthly-payment path is chosen at checkout.
func FinancingFee(amount float64) float64 {
	return amount * FinancingFeeRate
}

// FormatCurrency formats an amount with exactly two decimal places and
// comma grouping, e.g. 12345.6 -> "12,345.60".
func FormatCurrency(amount float64) string {
	negative := amount < 0
	cents := int64(math.Round(math.Abs(amount) * 100))

	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	fmt.Fprintf(&b, ".%02d", frac)
	return b.String()
}
