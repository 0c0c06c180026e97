package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

var nonDigits = regexp.MustCompile(`\D`)

// GenerateOTP returns a 4-digit verification code in the range 1000-9999
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}

// NormalizePhone strips non-digit characters and keeps the trailing 10
// digits, the format worker phone numbers are stored in
func NormalizePhone(phone string) string {
	digits := nonDigits.ReplaceAllString(phone, "")
	if len(digits) >= 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

// ValidPhone reports whether a normalized phone number is a full 10 digits
func ValidPhone(phone string) bool {
	return len(phone) == 10 && nonDigits.FindStringIndex(phone) == nil
}
