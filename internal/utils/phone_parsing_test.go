package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		phoneString string
		wantDDI     string
		wantDDD     string
		wantValor   string
		wantErr     bool
	}{
		{
			name:        "Brazilian mobile with country code",
			phoneString: "+5584987654321",
			wantDDI:     "55",
			wantDDD:     "84",
			wantValor:   "987654321",
		},
		{
			name:        "Brazilian mobile without country code",
			phoneString: "84987654321",
			wantDDI:     "55",
			wantDDD:     "84",
			wantValor:   "987654321",
		},
		{
			name:        "Brazilian mobile with punctuation",
			phoneString: "(84) 98765-4321",
			wantDDI:     "55",
			wantDDD:     "84",
			wantValor:   "987654321",
		},
		{
			name:        "Brazilian landline",
			phoneString: "+558433334444",
			wantDDI:     "55",
			wantDDD:     "84",
			wantValor:   "33334444",
		},
		{
			name:        "US number",
			phoneString: "+14155552671",
			wantDDI:     "1",
			wantValor:   "4155552671",
		},
		{
			name:        "Empty",
			phoneString: "",
			wantErr:     true,
		},
		{
			name:        "Letters",
			phoneString: "sem telefone",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePhoneNumber(tt.phoneString)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDDI, got.DDI)
			assert.Equal(t, tt.wantDDD, got.DDD)
			assert.Equal(t, tt.wantValor, got.Valor)
			assert.Equal(t, "+"+tt.wantDDI+tt.wantDDD+tt.wantValor, got.Full)
		})
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Contains(t, FormatPhone("84987654321"), "98765-4321")
	assert.Contains(t, FormatPhone("+5584987654321"), "84")
	assert.Equal(t, "+1 415-555-2671", FormatPhone("+14155552671"))
	assert.Equal(t, "não tem", FormatPhone("  não tem "))
	assert.Equal(t, "", FormatPhone(""))
}
