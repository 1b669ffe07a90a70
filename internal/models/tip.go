package models

import "github.com/shopspring/decimal"

// TipInput is the raw state of the tip form as typed by the user.
type TipInput struct {
	// BillAmountText is the bill total exactly as entered.
	// Not guaranteed to be numeric; unparseable text counts as 0.
	BillAmountText string

	// TipPercentText is the tip percentage exactly as entered.
	// Same parsing policy as BillAmountText.
	TipPercentText string

	// RoundUp rounds the tip up to the next whole currency unit.
	RoundUp bool
}

// TipResult is the tip derived from a TipInput.
type TipResult struct {
	// Tip is the unformatted tip amount (after round-up, before display rounding).
	Tip decimal.Decimal

	// Formatted is Tip rendered as currency for the active locale (e.g. "$7.50").
	Formatted string
}
