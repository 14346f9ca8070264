// Package passenger validates per-booking passenger identity forms
// against supplier eligibility rules before an order is submitted.
package passenger

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	dobLayout = "2006-01-02"

	minBookingAge = 18
	maxBookingAge = 120

	// Many destinations require six months of passport validity on entry.
	passportValidityWarning = 6 * 31 * 24 * time.Hour
)

var countryCodeRe = regexp.MustCompile(`^[A-Z]{2}$`)

// Form carries the identity data entered (or pre-filled from a traveler
// profile) for one passenger. The draft never owns these fields.
type Form struct {
	GivenName              string
	FamilyName             string
	DateOfBirth            string
	Gender                 string
	Email                  string
	PhoneCountryCode       string
	PhoneNumber            string
	PassportNumber         string
	PassportIssuingCountry string
	PassportExpiryDate     string
}

// Violation names the first unmet rule for one passenger. Mirroring the
// booking UI, only one actionable message is reported per passenger.
type Violation struct {
	PassengerIndex int
	PassengerName  string
	Message        string
}

func (v Violation) Error() string {
	name := v.PassengerName
	if name == "" {
		name = fmt.Sprintf("passenger %d", v.PassengerIndex+1)
	}
	return fmt.Sprintf("%s: %s", name, v.Message)
}

// Result is the all-or-nothing outcome of validating a roster of forms.
// Warnings never block booking.
type Result struct {
	Valid      bool
	Violations []Violation
	Warnings   []string
}

// ValidateForms checks every form and collects the first violation per
// passenger. A booking may only proceed when Valid is true.
func ValidateForms(forms []Form, now time.Time) Result {
	result := Result{Valid: true}

	for i, form := range forms {
		name := displayName(form)

		if msg := validateForm(form, now); msg != "" {
			result.Valid = false
			result.Violations = append(result.Violations, Violation{
				PassengerIndex: i,
				PassengerName:  name,
				Message:        msg,
			})
			continue
		}

		if warn := expiryWarning(form, now); warn != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %s", name, warn))
		}
	}

	return result
}

// validateForm returns the first unmet rule, or "" when all pass.
func validateForm(form Form, now time.Time) string {
	if strings.TrimSpace(form.GivenName) == "" {
		return "given name is required"
	}
	if strings.TrimSpace(form.FamilyName) == "" {
		return "family name is required"
	}

	dob, err := time.Parse(dobLayout, form.DateOfBirth)
	if err != nil {
		return "date of birth must be in YYYY-MM-DD format"
	}
	age := ageAt(dob, now)
	if age < minBookingAge {
		return fmt.Sprintf("must be at least %d years old to book directly (age %d)", minBookingAge, age)
	}
	if age > maxBookingAge {
		return "date of birth is implausibly far in the past"
	}

	if !strings.Contains(form.Email, "@") {
		return "email address is invalid"
	}
	if digitCount(form.PhoneNumber) < 7 {
		return "phone number must contain at least 7 digits"
	}

	if strings.TrimSpace(form.PassportNumber) == "" {
		return "passport number is required"
	}
	if !countryCodeRe.MatchString(strings.ToUpper(strings.TrimSpace(form.PassportIssuingCountry))) {
		return "passport issuing country must be a 2-letter code"
	}

	expiry, err := time.Parse(dobLayout, form.PassportExpiryDate)
	if err != nil {
		return "passport expiry date must be in YYYY-MM-DD format"
	}
	if !expiry.After(now) {
		return "passport has expired"
	}

	return ""
}

func expiryWarning(form Form, now time.Time) string {
	expiry, err := time.Parse(dobLayout, form.PassportExpiryDate)
	if err != nil {
		return ""
	}
	if expiry.Sub(now) < passportValidityWarning {
		return "passport expires within 6 months; many destinations require longer validity"
	}
	return ""
}

func displayName(form Form) string {
	name := strings.TrimSpace(strings.TrimSpace(form.GivenName) + " " + strings.TrimSpace(form.FamilyName))
	return name
}

func ageAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	anniversary := dob.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	return age
}

func digitCount(s string) int {
	count := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
