package form

// EventKind identifies which input changed.
type EventKind int

const (
	BillAmountChanged EventKind = iota + 1
	TipPercentChanged
	RoundUpChanged
)

func (k EventKind) String() string {
	switch k {
	case BillAmountChanged:
		return "bill_amount_changed"
	case TipPercentChanged:
		return "tip_percent_changed"
	case RoundUpChanged:
		return "round_up_changed"
	default:
		return "unknown"
	}
}

// Event is a single "value changed" notification from the presentation shell.
// Text carries the new field content for the two text kinds, Flag the new
// switch position for RoundUpChanged.
type Event struct {
	Kind EventKind
	Text string
	Flag bool
}

// Handler consumes an event and returns the tip text to display afterwards.
type Handler func(Event) string
