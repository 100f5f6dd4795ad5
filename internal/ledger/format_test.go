package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "R$ 0,00"},
		{30, "R$ 30,00"},
		{0.1 + 0.2, "R$ 0,30"},
		{1234.5, "R$ 1.234,50"},
		{1234567.891, "R$ 1.234.567,89"},
		{-140.5, "-R$ 140,50"},
		{999.999, "R$ 1.000,00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.amount))
		})
	}
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 0.3, RoundCents(0.1+0.2))
	assert.Equal(t, 10.01, RoundCents(10.005))
}
