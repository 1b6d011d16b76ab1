// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

// MinPhoneDigits is the minimum digit count for a contact phone number
// after stripping formatting characters.
const MinPhoneDigits = 8

// CleanPhone strips every non-digit character from the input, keeping a
// single leading plus sign if present.
func CleanPhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if i == 0 && r == '+' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks that the phone number carries enough digits to be
// a dialable contact channel.
func ValidatePhone(phone string) error {
	cleaned := strings.TrimPrefix(CleanPhone(phone), "+")
	if len(cleaned) < MinPhoneDigits {
		return fmt.Errorf("phone number must contain at least %d digits", MinPhoneDigits)
	}
	return nil
}

// ValidateImageURL checks that the asset-host URL is an absolute http(s) URL.
func ValidateImageURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid image URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("image URL must use http or https")
	}
	if parsed.Host == "" {
		return fmt.Errorf("image URL must be absolute")
	}
	return nil
}
