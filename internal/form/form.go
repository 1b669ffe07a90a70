// Package form holds the state of the tip form and derives the displayed tip
// from it after every change.
package form

import (
	"log/slog"

	"github.com/mmynk/tipcalculator/internal/calculator"
	"github.com/mmynk/tipcalculator/internal/models"
)

// Form is the state of one tip screen.
// It is owned by the goroutine that dispatches UI events and is not safe for
// concurrent use.
type Form struct {
	input     models.TipInput
	result    models.TipResult
	calc      *calculator.Calculator
	listeners []func(models.TipResult)
}

// New returns an empty form (no text, round-up off) computing with calc.
func New(calc *calculator.Calculator) *Form {
	if calc == nil {
		calc = calculator.New(nil)
	}
	f := &Form{calc: calc}
	f.recompute()
	return f
}

// SetBillAmountText replaces the bill amount text.
func (f *Form) SetBillAmountText(text string) {
	f.input.BillAmountText = text
	f.recompute()
}

// SetTipPercentText replaces the tip percentage text.
func (f *Form) SetTipPercentText(text string) {
	f.input.TipPercentText = text
	f.recompute()
}

// SetRoundUp sets the round-up switch.
func (f *Form) SetRoundUp(roundUp bool) {
	f.input.RoundUp = roundUp
	f.recompute()
}

// Apply routes ev to the matching setter and returns the new tip text.
// Unknown event kinds leave the state untouched.
func (f *Form) Apply(ev Event) string {
	switch ev.Kind {
	case BillAmountChanged:
		f.SetBillAmountText(ev.Text)
	case TipPercentChanged:
		f.SetTipPercentText(ev.Text)
	case RoundUpChanged:
		f.SetRoundUp(ev.Flag)
	default:
		slog.Warn("Ignoring unknown form event", "kind", int(ev.Kind))
	}
	return f.CurrentResult()
}

// Handler returns Apply as a Handler so it can be wrapped by middleware.
func (f *Form) Handler() Handler {
	return f.Apply
}

// OnChange registers fn to be called with the new result after every change.
func (f *Form) OnChange(fn func(models.TipResult)) {
	f.listeners = append(f.listeners, fn)
}

// CurrentResult returns the formatted tip for the current inputs.
func (f *Form) CurrentResult() string {
	return f.result.Formatted
}

// Result returns the current tip, raw and formatted.
func (f *Form) Result() models.TipResult {
	return f.result
}

// Input returns a copy of the current raw inputs.
func (f *Form) Input() models.TipInput {
	return f.input
}

// BillAmount returns the parsed bill amount.
func (f *Form) BillAmount() float64 {
	return ParseNumber(f.input.BillAmountText)
}

// TipPercent returns the parsed tip percentage.
func (f *Form) TipPercent() float64 {
	return ParseNumber(f.input.TipPercentText)
}

func (f *Form) recompute() {
	f.result = f.calc.Result(f.BillAmount(), f.TipPercent(), f.input.RoundUp)
	for _, fn := range f.listeners {
		fn(f.result)
	}
}
