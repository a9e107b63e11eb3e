package validation

import (
	"regexp"
	"strings"
)

// Identity document patterns
var (
	// Aadhaar is exactly 12 digits
	AadhaarPattern = `^\d{12}$`

	// PAN is 5 letters, 4 digits, 1 letter
	PANPattern = `^[A-Z]{5}\d{4}[A-Z]$`

	// Password min length for reset and login flows
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Aadhaar *regexp.Regexp
	PAN     *regexp.Regexp
}{
	Aadhaar: regexp.MustCompile(AadhaarPattern),
	PAN:     regexp.MustCompile(PANPattern),
}

// panHolderTypes is the set of valid 4th-character holder type codes in a PAN.
const panHolderTypes = "PCHFATBGLJ"

// ValidAadhaar reports whether the value is a well-formed aadhaar number.
func ValidAadhaar(aadhaar string) bool {
	return CompiledPatterns.Aadhaar.MatchString(strings.TrimSpace(aadhaar))
}

// ValidPAN reports whether the value is a well-formed PAN. For individual
// holders (type P) the 5th character must match the first letter of the
// holder's surname when one is supplied.
func ValidPAN(pan, surnameInitial string) bool {
	pan = strings.ToUpper(strings.TrimSpace(pan))
	if !CompiledPatterns.PAN.MatchString(pan) {
		return false
	}

	if !strings.ContainsRune(panHolderTypes, rune(pan[3])) {
		return false
	}

	if pan[3] == 'P' && surnameInitial != "" {
		if pan[4] != strings.ToUpper(surnameInitial)[0] {
			return false
		}
	}

	return true
}

// SurnameInitial extracts the first letter of the last word of a full name.
// Returns empty string when the name has no words.
func SurnameInitial(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return string([]rune(parts[len(parts)-1])[0:1])
}
