package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// nbsp separates a trailing symbol from the digits, as CLDR patterns do.
const nbsp = "\u00a0"

// placement is where a locale puts the currency symbol.
type placement int

const (
	prefix       placement = iota // $7.50
	spacedPrefix                  // € 7,50
	suffix                        // 7,50 €
)

// placements lists locales whose currency pattern is not a bare prefix.
// Full tags are checked before base languages.
var placements = map[string]placement{
	"pt-BR": spacedPrefix,
	"pt-PT": suffix,
	"nl":    spacedPrefix,
	"de-CH": spacedPrefix,
	"de":    suffix,
	"fr":    suffix,
	"es":    suffix,
	"it":    suffix,
	"ru":    suffix,
	"uk":    suffix,
	"pl":    suffix,
	"cs":    suffix,
	"sk":    suffix,
	"sv":    suffix,
	"nb":    suffix,
	"da":    suffix,
	"fi":    suffix,
	"hu":    suffix,
	"ro":    suffix,
	"el":    suffix,
	"pt":    spacedPrefix,
}

// Formatter renders amounts in the currency of one locale's region.
type Formatter struct {
	tag       language.Tag
	unit      currency.Unit
	symbol    string
	scale     int
	placement placement
	printer   *message.Printer
}

// NewFormatter builds a Formatter for tag. The currency is the one used in
// the tag's region; when no region can be inferred the generic "¤" symbol
// and two fraction digits are used.
func NewFormatter(tag language.Tag) *Formatter {
	f := &Formatter{
		tag:       tag,
		unit:      currency.XXX,
		symbol:    "¤",
		scale:     2,
		placement: placementFor(tag),
		printer:   message.NewPrinter(tag),
	}

	region, _ := tag.Region()
	if unit, ok := currency.FromRegion(region); ok {
		f.unit = unit
		f.symbol = f.printer.Sprint(currency.NarrowSymbol(unit))
		f.scale, _ = currency.Standard.Rounding(unit)
	}
	return f
}

func placementFor(tag language.Tag) placement {
	if p, ok := placements[tag.String()]; ok {
		return p
	}
	base, _ := tag.Base()
	region, _ := tag.Region()
	if p, ok := placements[fmt.Sprintf("%s-%s", base, region)]; ok {
		return p
	}
	if p, ok := placements[base.String()]; ok {
		return p
	}
	return prefix
}

// Locale returns the locale the formatter was built for.
func (f *Formatter) Locale() language.Tag { return f.tag }

// Unit returns the currency being formatted, e.g. USD.
func (f *Formatter) Unit() currency.Unit { return f.unit }

// Scale returns the number of fraction digits shown.
func (f *Formatter) Scale() int { return f.scale }

// Format renders amount with the locale's symbol, grouping, decimal separator
// and fraction digits. Display rounding is half-even.
func (f *Formatter) Format(amount decimal.Decimal) string {
	rounded := amount.RoundBank(int32(f.scale))
	negative := rounded.IsNegative()

	digits := f.printer.Sprint(number.Decimal(rounded.Abs().InexactFloat64(), number.Scale(f.scale)))

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	switch f.placement {
	case suffix:
		b.WriteString(digits)
		b.WriteString(nbsp)
		b.WriteString(f.symbol)
	case spacedPrefix:
		b.WriteString(f.symbol)
		b.WriteString(nbsp)
		b.WriteString(digits)
	default:
		b.WriteString(f.symbol)
		b.WriteString(digits)
	}
	return b.String()
}

// FormatFloat is Format for a float64 amount. NaN and infinities format as zero.
func (f *Formatter) FormatFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return f.Format(decimal.Zero)
	}
	return f.Format(decimal.NewFromFloat(amount))
}
