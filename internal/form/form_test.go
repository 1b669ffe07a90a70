package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/mmynk/tipcalculator/internal/calculator"
	"github.com/mmynk/tipcalculator/internal/currency"
	"github.com/mmynk/tipcalculator/internal/models"
)

func newUSForm() *Form {
	return New(calculator.New(currency.NewFormatter(language.AmericanEnglish)))
}

func TestForm_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		tip     string
		roundUp bool
		want    string
	}{
		{name: "exact tip", amount: "50", tip: "15", want: "$7.50"},
		{name: "rounded tip", amount: "50", tip: "15", roundUp: true, want: "$8.00"},
		{name: "empty amount", amount: "", tip: "20", want: "$0.00"},
		{name: "non-numeric tip", amount: "100", tip: "abc", roundUp: true, want: "$0.00"},
		{name: "empty tip does not default to fifteen percent", amount: "100", tip: "", want: "$0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUSForm()
			f.SetBillAmountText(tt.amount)
			f.SetTipPercentText(tt.tip)
			f.SetRoundUp(tt.roundUp)

			assert.Equal(t, tt.want, f.CurrentResult())
		})
	}
}

func TestForm_InitialState(t *testing.T) {
	f := newUSForm()

	assert.Equal(t, models.TipInput{}, f.Input())
	assert.Equal(t, "$0.00", f.CurrentResult())
}

func TestForm_EveryMutationIsVisible(t *testing.T) {
	f := newUSForm()

	f.SetBillAmountText("50")
	assert.Equal(t, "$0.00", f.CurrentResult())

	f.SetTipPercentText("15")
	assert.Equal(t, "$7.50", f.CurrentResult())

	f.SetRoundUp(true)
	assert.Equal(t, "$8.00", f.CurrentResult())

	f.SetBillAmountText("5")
	assert.Equal(t, "$1.00", f.CurrentResult())

	f.SetRoundUp(false)
	assert.Equal(t, "$0.75", f.CurrentResult())
}

func TestForm_CurrentResultIsIdempotent(t *testing.T) {
	f := newUSForm()
	f.SetBillAmountText("123.45")
	f.SetTipPercentText("18")

	first := f.CurrentResult()
	assert.Equal(t, first, f.CurrentResult())
	assert.Equal(t, first, f.CurrentResult())
}

func TestForm_Apply(t *testing.T) {
	f := newUSForm()

	assert.Equal(t, "$0.00", f.Apply(Event{Kind: BillAmountChanged, Text: "50"}))
	assert.Equal(t, "$7.50", f.Apply(Event{Kind: TipPercentChanged, Text: "15"}))
	assert.Equal(t, "$8.00", f.Apply(Event{Kind: RoundUpChanged, Flag: true}))

	before := f.Input()
	assert.Equal(t, "$8.00", f.Apply(Event{Kind: EventKind(99), Text: "ignored"}))
	assert.Equal(t, before, f.Input())

	assert.Equal(t, models.TipInput{BillAmountText: "50", TipPercentText: "15", RoundUp: true}, f.Input())
	assert.Equal(t, 50.0, f.BillAmount())
	assert.Equal(t, 15.0, f.TipPercent())
}

func TestForm_OnChange(t *testing.T) {
	f := newUSForm()

	var seen []string
	f.OnChange(func(r models.TipResult) {
		seen = append(seen, r.Formatted)
	})

	f.SetBillAmountText("50")
	f.SetTipPercentText("15")
	f.SetRoundUp(true)

	require.Len(t, seen, 3)
	assert.Equal(t, []string{"$0.00", "$7.50", "$8.00"}, seen)
	assert.Equal(t, f.Result().Formatted, seen[len(seen)-1])
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "bill_amount_changed", BillAmountChanged.String())
	assert.Equal(t, "tip_percent_changed", TipPercentChanged.String())
	assert.Equal(t, "round_up_changed", RoundUpChanged.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
