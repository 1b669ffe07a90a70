// Package ui is the terminal presentation shell for the tip form.
package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/mmynk/tipcalculator/internal/form"
)

const fieldWidth = 20

// numericKeys are the characters a numeric keypad can produce.
const numericKeys = "0123456789.,-"

// Screen lays out the tip form and forwards every edit to a form handler.
type Screen struct {
	app     *tview.Application
	handler form.Handler
	inputs  *tview.Form
	result  *tview.TextView
	root    *tview.Flex
}

// NewScreen builds the widgets for f. Edits are delivered through handler,
// which is usually f.Handler() wrapped with middleware.
func NewScreen(f *form.Form, handler form.Handler) *Screen {
	if handler == nil {
		handler = f.Handler()
	}
	s := &Screen{
		app:     tview.NewApplication(),
		handler: handler,
	}

	input := f.Input()

	title := tview.NewTextView().SetText(Labels.CalculateTip)

	s.inputs = tview.NewForm().
		AddInputField(fieldLabel(IconMoney, Labels.BillAmount), input.BillAmountText, fieldWidth, acceptNumeric, s.onBillAmountChanged).
		AddInputField(fieldLabel(IconPercent, Labels.HowWasTheService), input.TipPercentText, fieldWidth, acceptNumeric, s.onTipPercentChanged).
		AddCheckbox(Labels.RoundUpTip+" ", input.RoundUp, s.onRoundUpChanged)

	s.result = tview.NewTextView().SetText(TipAmountText(f.CurrentResult()))

	hint := tview.NewTextView().SetText(Labels.QuitHint).SetTextColor(tcell.ColorGray)

	s.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 2, 0, false).
		AddItem(s.inputs, 7, 0, true).
		AddItem(s.result, 2, 0, false).
		AddItem(hint, 1, 0, false)
	s.root.SetBorder(true).SetBorderPadding(1, 1, 4, 4)

	s.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape {
			s.app.Stop()
			return nil
		}
		return ev
	})

	return s
}

// Run shows the screen until the user quits.
func (s *Screen) Run() error {
	return s.app.SetRoot(s.root, true).EnableMouse(true).Run()
}

// ResultText returns the result line currently on screen.
func (s *Screen) ResultText() string {
	return strings.TrimSpace(s.result.GetText(true))
}

func (s *Screen) onBillAmountChanged(text string) {
	s.dispatch(form.Event{Kind: form.BillAmountChanged, Text: text})
}

func (s *Screen) onTipPercentChanged(text string) {
	s.dispatch(form.Event{Kind: form.TipPercentChanged, Text: text})
}

func (s *Screen) onRoundUpChanged(checked bool) {
	s.dispatch(form.Event{Kind: form.RoundUpChanged, Flag: checked})
}

func (s *Screen) dispatch(ev form.Event) {
	s.result.SetText(TipAmountText(s.handler(ev)))
}

func acceptNumeric(text string, last rune) bool {
	return strings.ContainsRune(numericKeys, last)
}
