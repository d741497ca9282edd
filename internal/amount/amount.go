package amount

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tickmark-dev/tickmark/internal/model"
)

// Sum adds a sequence of monetary amounts at cent precision. Each value is
// rounded to 2 decimal places before adding, so fractional-cent noise from an
// upstream producer can never surface as a spurious variance.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v.Round(2))
	}
	return total
}

// SumItems adds the amounts of a movement item list.
func SumItems(items []model.MovementItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Amount.Round(2))
	}
	return total
}

// Variance returns |calculated - stated| rounded to cent precision.
func Variance(calculated, stated decimal.Decimal) decimal.Decimal {
	return calculated.Sub(stated).Abs().Round(2)
}

// VariancePercent returns variance as a percentage of |stated|, rounded to 2
// decimal places. A zero stated total yields 0 when the variance is also zero
// and 100 otherwise, signaling a total mismatch without dividing by zero.
func VariancePercent(variance, stated decimal.Decimal) decimal.Decimal {
	if stated.IsZero() {
		if variance.IsZero() {
			return decimal.Zero
		}
		return decimal.NewFromInt(100)
	}
	return variance.Div(stated.Abs()).Mul(decimal.NewFromInt(100)).Round(2)
}

// StatusFor maps a variance to pass/fail. Any nonzero variance fails: casting
// discrepancies are reportable however small, so there is no tolerance beyond
// the cent rounding already applied.
func StatusFor(variance decimal.Decimal) model.CheckStatus {
	if variance.IsZero() {
		return model.StatusPass
	}
	return model.StatusFail
}

// Thresholds are the severity cutoffs in base currency units.
type Thresholds struct {
	High   decimal.Decimal
	Medium decimal.Decimal
}

// DefaultThresholds returns the standard cutoffs: 10,000 for high, 1,000 for
// medium.
func DefaultThresholds() Thresholds {
	return Thresholds{
		High:   decimal.NewFromInt(10_000),
		Medium: decimal.NewFromInt(1_000),
	}
}

// Classify grades a variance magnitude against the thresholds.
func (t Thresholds) Classify(variance decimal.Decimal) model.Severity {
	v := variance.Abs()
	switch {
	case v.GreaterThanOrEqual(t.High):
		return model.SeverityHigh
	case v.GreaterThanOrEqual(t.Medium):
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// Format renders an amount for reports: thousands separators, currency symbol
// prefix, negatives parenthesized per financial-statement convention.
// Format("RM", -1234.5) -> "(RM1,234.50)".
func Format(symbol string, v decimal.Decimal) string {
	s := symbol + groupThousands(v.Abs().StringFixed(2))
	if v.IsNegative() {
		return "(" + s + ")"
	}
	return s
}

// groupThousands inserts commas into the integer part of a fixed-point string.
func groupThousands(s string) string {
	intPart, fracPart, _ := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		return intPart + "." + fracPart
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(intPart[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + "." + fracPart
}
