package utils

import (
	"regexp"
	"strconv"
)

var nonDigits = regexp.MustCompile(`\D`)

// CPFDigits strips every non-digit character from a CPF
func CPFDigits(cpf string) string {
	return nonDigits.ReplaceAllString(cpf, "")
}

// FormatCPF renders an 11-digit CPF as 000.000.000-00. Anything else is returned unchanged.
func FormatCPF(cpf string) string {
	d := CPFDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

// ValidateCPF reports whether a CPF has 11 digits with valid check digits.
// Member records accept any CPF text; this is only used to flag suspicious imports.
func ValidateCPF(cpf string) bool {
	cpf = CPFDigits(cpf)

	// Check if CPF has 11 digits
	if len(cpf) != 11 {
		return false
	}

	// Check if all digits are the same
	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	// Validate first check digit
	sum := 0
	for i := 0; i < 9; i++ {
		digit, _ := strconv.Atoi(string(cpf[i]))
		sum += digit * (10 - i)
	}
	remainder := sum % 11
	if remainder < 2 {
		if cpf[9] != '0' {
			return false
		}
	} else {
		expected := strconv.Itoa(11 - remainder)
		if string(cpf[9]) != expected {
			return false
		}
	}

	// Validate second check digit
	sum = 0
	for i := 0; i < 10; i++ {
		digit, _ := strconv.Atoi(string(cpf[i]))
		sum += digit * (11 - i)
	}
	remainder = sum % 11
	if remainder < 2 {
		if cpf[10] != '0' {
			return false
		}
	} else {
		expected := strconv.Itoa(11 - remainder)
		if string(cpf[10]) != expected {
			return false
		}
	}

	return true
}
