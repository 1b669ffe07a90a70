package ui

import "fmt"

// Icon identifies a decorative icon shown next to an input field.
type Icon string

const (
	IconMoney   Icon = "money"
	IconPercent Icon = "percent"
)

// Glyph is how the terminal draws the icon.
func (i Icon) Glyph() string {
	switch i {
	case IconMoney:
		return "$"
	case IconPercent:
		return "%"
	default:
		return " "
	}
}

// Labels are the static strings of the tip screen.
var Labels = struct {
	CalculateTip     string
	BillAmount       string
	HowWasTheService string
	RoundUpTip       string
	TipAmount        string
	QuitHint         string
}{
	CalculateTip:     "Calculate Tip",
	BillAmount:       "Bill Amount",
	HowWasTheService: "Tip Percentage",
	RoundUpTip:       "Round up tip?",
	TipAmount:        "Tip Amount: %s",
	QuitHint:         "Esc to quit",
}

// TipAmountText renders the result line for a formatted tip.
func TipAmountText(tip string) string {
	return fmt.Sprintf(Labels.TipAmount, tip)
}

func fieldLabel(icon Icon, label string) string {
	return fmt.Sprintf("%s %s ", icon.Glyph(), label)
}
