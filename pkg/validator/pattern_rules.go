package validator

import (
	"strings"

	"github.com/dmitrymomot/lexcheck/pkg/pattern"
)

var patternMessages = map[pattern.Name]string{
	pattern.AlphaOnly:      "must contain only letters",
	pattern.AllLowercase:   "must contain only lowercase letters",
	pattern.AllUppercase:   "must contain only uppercase letters",
	pattern.EmailFormat:    "must be a valid email address",
	pattern.USPhone:        "must be a phone number in the format 123-456-7890",
	pattern.DateMMDDYYYY:   "must be a date in the format MM/DD/YYYY",
	pattern.PostalCode:     "must be a 5-digit postal code",
	pattern.HexColor:       "must be a hex color such as #FFF or #FFFFFF",
	pattern.Time24h:        "must be a 24-hour time such as 14:30",
	pattern.ValidUsername:  "must be 3-16 letters, digits or underscores",
	pattern.URL:            "must be a valid URL",
	pattern.CreditCard:     "must be four groups of four digits separated by spaces or hyphens",
	pattern.Hashtag:        "must be a hashtag such as #golang",
	pattern.IPAddress:      "must be a valid IPv4 address",
	pattern.StrongPassword: "must be at least 8 characters with upper and lower case letters, a digit and one of @$!%*?&",
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Matches validates value against the named pattern.
// An unregistered name produces a rule that always fails.
func Matches(field, value string, name pattern.Name) Rule {
	fn, ok := pattern.Lookup(name)
	if !ok {
		return Rule{
			Check: func() bool { return false },
			Error: ValidationError{
				Field:          field,
				Message:        "unknown validator " + string(name),
				TranslationKey: "validation.unknown_validator",
				TranslationValues: map[string]any{
					"field":     field,
					"validator": string(name),
				},
			},
		}
	}

	return Rule{
		Check: func() bool {
			return fn(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        patternMessages[name],
			TranslationKey: "validation." + string(name),
			TranslationValues: map[string]any{
				"field":     field,
				"validator": string(name),
			},
		},
	}
}

// KnownValidator validates that value names a registered validator.
func KnownValidator(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := pattern.ParseName(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a known validator name",
			TranslationKey: "validation.unknown_validator",
			TranslationValues: map[string]any{
				"field":     field,
				"validator": value,
			},
		},
	}
}

// Convenience shortcuts for the most common form fields

func Email(field, value string) Rule {
	return Matches(field, value, pattern.EmailFormat)
}

func Phone(field, value string) Rule {
	return Matches(field, value, pattern.USPhone)
}

func Username(field, value string) Rule {
	return Matches(field, value, pattern.ValidUsername)
}

func Password(field, value string) Rule {
	return Matches(field, value, pattern.StrongPassword)
}

func URL(field, value string) Rule {
	return Matches(field, value, pattern.URL)
}

func PostalCode(field, value string) Rule {
	return Matches(field, value, pattern.PostalCode)
}
