package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// DefaultPhoneRegion is assumed for numbers written without a country code
const DefaultPhoneRegion = "BR"

// PhoneComponents represents the parsed components of a phone number
type PhoneComponents struct {
	DDI   string `json:"ddi"`
	DDD   string `json:"ddd"`
	Valor string `json:"valor"`
	Full  string `json:"full"`
}

// ParsePhoneNumber parses a phone number typed in a member form.
// Numbers without a leading + are read as Brazilian.
func ParsePhoneNumber(phoneString string) (*PhoneComponents, error) {
	num, err := parsePhone(phoneString)
	if err != nil {
		return nil, err
	}

	countryCode := num.GetCountryCode()
	nationalNumber := phonenumbers.GetNationalSignificantNumber(num)

	components := &PhoneComponents{
		DDI:   fmt.Sprintf("%d", countryCode),
		Valor: nationalNumber,
		Full:  phonenumbers.Format(num, phonenumbers.E164),
	}
	if countryCode == 55 && len(nationalNumber) > 2 {
		components.DDD = nationalNumber[:2]
		components.Valor = nationalNumber[2:]
	}
	return components, nil
}

// FormatPhone renders a phone number for display: national format for Brazilian numbers,
// international format otherwise. Unparseable input is returned trimmed but unchanged.
func FormatPhone(phoneString string) string {
	num, err := parsePhone(phoneString)
	if err != nil {
		return strings.TrimSpace(phoneString)
	}
	if num.GetCountryCode() == 55 {
		return phonenumbers.Format(num, phonenumbers.NATIONAL)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

func parsePhone(phoneString string) (*phonenumbers.PhoneNumber, error) {
	clean := strings.TrimSpace(phoneString)
	if clean == "" {
		return nil, fmt.Errorf("empty phone number")
	}

	num, err := phonenumbers.Parse(clean, DefaultPhoneRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", phoneString)
	}
	return num, nil
}
