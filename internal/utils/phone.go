package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex     = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	phoneStripper  = regexp.MustCompile(`[^\d+]`)
	digitsStripper = regexp.MustCompile(`[^\d]`)
)

// IsValidPhone accepts anything that reduces to an E.164 number once
// spaces, dashes and parentheses are removed.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phoneStripper.ReplaceAllString(phone, ""))
}

// NormalizePhone returns phone in E.164 form, assuming countryCode when the
// number has none.
func NormalizePhone(phone, countryCode string) string {
	if strings.HasPrefix(strings.TrimSpace(phone), "+") {
		return "+" + digitsStripper.ReplaceAllString(phone, "")
	}

	cleaned := digitsStripper.ReplaceAllString(phone, "")
	code := strings.TrimPrefix(countryCode, "+")
	if len(cleaned) == 10 || !strings.HasPrefix(cleaned, code) {
		cleaned = code + cleaned
	}
	return "+" + cleaned
}

// TelURI turns a display number such as "(555) 010-0199" into a tel: link.
func TelURI(phone string) string {
	return "tel:" + NormalizePhone(phone, DefaultCountryCode)
}
