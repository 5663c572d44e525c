package utils

import (
	"errors"
	"regexp"
	"strings"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateCountryName validates that a country name from the query string
// is safe and within reasonable limits. Real names carry spaces, commas
// and parentheses ("Bosnia and Herzegovina", "Congo (Kinshasa)"), so the
// check is a denylist rather than an allowlist.
func ValidateCountryName(name string) error {
	if name == "" {
		return errors.New("country name cannot be empty")
	}

	if len(name) > 100 {
		return errors.New("country name too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(name) {
		return errors.New("country name contains invalid characters")
	}

	return nil
}

// ValidateCountriesParam validates every entry of the countries query
// parameter, collecting per-field errors in the standard shape.
func ValidateCountriesParam(countries []string) map[string][]string {
	fieldErrors := make(map[string][]string)

	for _, name := range countries {
		if err := ValidateCountryName(name); err != nil {
			fieldErrors["countries"] = append(fieldErrors["countries"], err.Error())
		}
	}

	return fieldErrors
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}
