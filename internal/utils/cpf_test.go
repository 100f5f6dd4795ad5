package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		cpf   string
		valid bool
	}{
		// Valid CPFs
		{
			name:  "Valid CPF without formatting",
			cpf:   "12345678909",
			valid: true,
		},
		{
			name:  "Valid CPF with formatting",
			cpf:   "123.456.789-09",
			valid: true,
		},
		{
			name:  "Valid CPF - real example 1",
			cpf:   "11144477735",
			valid: true,
		},
		{
			name:  "Valid CPF - real example 2",
			cpf:   "52998224725",
			valid: true,
		},

		// Invalid CPFs
		{
			name:  "Invalid CPF - wrong check digit",
			cpf:   "12345678900",
			valid: false,
		},
		{
			name:  "Invalid CPF - all zeros",
			cpf:   "00000000000",
			valid: false,
		},
		{
			name:  "Invalid CPF - all ones",
			cpf:   "11111111111",
			valid: false,
		},
		{
			name:  "Invalid CPF - all twos",
			cpf:   "22222222222",
			valid: false,
		},
		{
			name:  "Invalid CPF - sequential digits",
			cpf:   "12345678910",
			valid: false,
		},
		{
			name:  "Invalid CPF - too short",
			cpf:   "123456789",
			valid: false,
		},
		{
			name:  "Invalid CPF - too long",
			cpf:   "123456789012",
			valid: false,
		},
		{
			name:  "Invalid CPF - empty string",
			cpf:   "",
			valid: false,
		},
		{
			name:  "Invalid CPF - only letters",
			cpf:   "abcdefghijk",
			valid: false,
		},
		{
			name:  "Invalid CPF - mixed alphanumeric",
			cpf:   "123abc78909",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCPF(tt.cpf)
			assert.Equal(t, tt.valid, result, "ValidateCPF(%q) should be %v", tt.cpf, tt.valid)
		})
	}
}

func TestCPFDigits(t *testing.T) {
	assert.Equal(t, "12345678909", CPFDigits("123.456.789-09"))
	assert.Equal(t, "12345678909", CPFDigits(" 123 456 789 09 "))
	assert.Equal(t, "", CPFDigits("não informado"))
}

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want string
	}{
		{"digits only", "12345678909", "123.456.789-09"},
		{"already formatted", "123.456.789-09", "123.456.789-09"},
		{"too short", "1234", "1234"},
		{"free text", "não informado", "não informado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCPF(tt.cpf))
		})
	}
}
