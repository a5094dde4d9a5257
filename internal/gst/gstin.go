package gst

import (
	"regexp"
	"strings"
)

// 2-digit state code, 5 letters, 4 digits, 1 letter, 1 alphanumeric,
// literal Z, 1 alphanumeric.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)

// Validation is the structural validation result for a GSTIN string.
type Validation struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// ValidateGSTIN checks the 15-character GSTIN structure. Blank input is
// valid because the field is optional on customer records. The 15th
// character's check-digit algorithm is NOT verified: a structurally valid
// string with a wrong check digit is accepted, matching the long-standing
// behavior callers depend on.
func ValidateGSTIN(value string) Validation {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v == "" {
		return Validation{Valid: true}
	}
	if !gstinPattern.MatchString(v) {
		return Validation{
			Valid: false,
			Error: "must be 15 characters: 2-digit state code, 5 letters, 4 digits, 1 letter, 1 alphanumeric, 'Z', 1 alphanumeric",
		}
	}
	return Validation{Valid: true}
}

// StateCodeFromGSTIN extracts the 2-digit state code prefix from a GSTIN.
// Returns an empty string when the input is too short.
func StateCodeFromGSTIN(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	if len(v) < 2 {
		return ""
	}
	return v[:2]
}

// IsHomeStateGSTIN reports whether the GSTIN's state code matches the
// configured home state's code.
func (c *Calculator) IsHomeStateGSTIN(value string) bool {
	code := StateCodeFromGSTIN(value)
	return code != "" && code == c.cfg.HomeStateCode
}
