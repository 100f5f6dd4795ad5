package observability

import (
	"github.com/praiadomeio/app-ampm/internal/logging"
	"github.com/praiadomeio/app-ampm/internal/utils"
)

var sensitiveFields = map[string]bool{
	"cpf":      true,
	"phone":    true,
	"email":    true,
	"password": true,
}

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF for logging, keeping the first three and the
// seventh to ninth digits. Punctuation in the input is ignored.
func MaskCPF(cpf string) string {
	digits := utils.CPFDigits(cpf)
	if len(digits) != 11 {
		return "***.***.***-**"
	}
	return digits[:3] + ".***." + digits[6:9] + "-**"
}

// MaskSensitiveData masks sensitive data in a map
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))
	for k, v := range data {
		if sensitiveFields[k] {
			masked[k] = "********"
		} else {
			masked[k] = v
		}
	}
	return masked
}
