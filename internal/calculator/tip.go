package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/mmynk/tipcalculator/internal/currency"
	"github.com/mmynk/tipcalculator/internal/models"
)

// DefaultTipPercent is the customary tip rate. The form never falls back to it:
// an empty tip field parses to 0 and is passed through as 0.
const DefaultTipPercent = 15.0

var hundred = decimal.NewFromInt(100)

// TipAmount computes tipPercent% of amount.
// With roundUp the tip is raised to the next whole currency unit (ceiling),
// never rounded down. Negative inputs are not rejected.
// Non-finite inputs count as 0.
func TipAmount(amount, tipPercent float64, roundUp bool) decimal.Decimal {
	tip := toDecimal(tipPercent).Div(hundred).Mul(toDecimal(amount))
	if roundUp {
		tip = tip.Ceil()
	}
	return tip
}

// CalculateTip computes the tip and formats it as currency for the host locale,
// e.g. "$10.00" under en_US.
func CalculateTip(amount, tipPercent float64, roundUp bool) string {
	return currency.Default().Format(TipAmount(amount, tipPercent, roundUp))
}

// Calculator computes tips formatted for a fixed locale.
type Calculator struct {
	formatter *currency.Formatter
}

// New creates a Calculator using formatter. A nil formatter means the host locale.
func New(formatter *currency.Formatter) *Calculator {
	if formatter == nil {
		formatter = currency.Default()
	}
	return &Calculator{formatter: formatter}
}

// Calculate is CalculateTip bound to the calculator's locale.
func (c *Calculator) Calculate(amount, tipPercent float64, roundUp bool) string {
	return c.Result(amount, tipPercent, roundUp).Formatted
}

// Result returns both the raw tip and its formatted form.
func (c *Calculator) Result(amount, tipPercent float64, roundUp bool) models.TipResult {
	tip := TipAmount(amount, tipPercent, roundUp)
	return models.TipResult{
		Tip:       tip,
		Formatted: c.formatter.Format(tip),
	}
}

func toDecimal(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
