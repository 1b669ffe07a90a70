package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{text: "", want: 0},
		{text: "abc", want: 0},
		{text: "12.5", want: 12.5},
		{text: "50", want: 50},
		{text: " 42 ", want: 42},
		{text: "-3", want: -3},
		{text: "1e2", want: 100},
		{text: "12,5", want: 0},
		{text: "1.2.3", want: 0},
		{text: ".", want: 0},
		{text: "-", want: 0},
		{text: "NaN", want: 0},
		{text: "Inf", want: 0},
		{text: "$10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.text))
		})
	}
}
