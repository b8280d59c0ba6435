package pattern

import "regexp"

// In non-multiline mode `$` only matches at the very end of the input, so the
// patterns below reject a trailing newline.
var (
	alphaRegex     = regexp.MustCompile(`^[a-zA-Z]+$`)
	lowercaseRegex = regexp.MustCompile(`^[a-z]+$`)
	uppercaseRegex = regexp.MustCompile(`^[A-Z]+$`)

	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	usPhoneRegex    = regexp.MustCompile(`^[0-9]{3}-[0-9]{3}-[0-9]{4}$`)
	postalCodeRegex = regexp.MustCompile(`^[0-9]{5}$`)

	// No calendar validation: 02/30/2023 is accepted.
	dateRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12][0-9]|3[01])/[0-9]{4}$`)

	hexColorRegex = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	time24hRegex  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]{3,16}$`)

	urlRegex = regexp.MustCompile(`^(https?://)?[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}(:[0-9]+)?(/.*)?$`)

	// RE2 has no backreferences; the single-separator rule is spelled out as
	// two alternatives instead.
	creditCardRegex = regexp.MustCompile(`^[0-9]{4}(( [0-9]{4}){3}|(-[0-9]{4}){3})$`)

	hashtagRegex = regexp.MustCompile(`^#[a-zA-Z0-9]+$`)

	ipAddressRegex = regexp.MustCompile(
		`^((25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`,
	)

	// RE2 has no lookaheads either: the charset and length are one pattern and
	// each required class is checked separately.
	passwordCharsetRegex = regexp.MustCompile(`^[A-Za-z0-9@$!%*?&]{8,}$`)
	passwordLowerRegex   = regexp.MustCompile(`[a-z]`)
	passwordUpperRegex   = regexp.MustCompile(`[A-Z]`)
	passwordDigitRegex   = regexp.MustCompile(`[0-9]`)
	passwordSpecialRegex = regexp.MustCompile(`[@$!%*?&]`)
)

// IsAlphaOnly reports whether s consists of one or more ASCII letters.
func IsAlphaOnly(s string) bool {
	return alphaRegex.MatchString(s)
}

// IsAllLowercase reports whether s consists of one or more ASCII lowercase letters.
func IsAllLowercase(s string) bool {
	return lowercaseRegex.MatchString(s)
}

// IsAllUppercase reports whether s consists of one or more ASCII uppercase letters.
func IsAllUppercase(s string) bool {
	return uppercaseRegex.MatchString(s)
}

// IsEmailFormat reports whether s has the shape local@domain.tld, where the TLD
// has at least two letters. No RFC 5322 parsing is performed.
func IsEmailFormat(s string) bool {
	return emailRegex.MatchString(s)
}

// IsUSPhone reports whether s is exactly DDD-DDD-DDDD.
func IsUSPhone(s string) bool {
	return usPhoneRegex.MatchString(s)
}

// IsDateMMDDYYYY reports whether s is MM/DD/YYYY with month 01-12 and day 01-31.
func IsDateMMDDYYYY(s string) bool {
	return dateRegex.MatchString(s)
}

// IsPostalCode reports whether s is a 5-digit ZIP code.
func IsPostalCode(s string) bool {
	return postalCodeRegex.MatchString(s)
}

// IsHexColor reports whether s is # followed by exactly 3 or 6 hex digits.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// IsTime24h reports whether s is H:MM or HH:MM on a 24-hour clock.
func IsTime24h(s string) bool {
	return time24hRegex.MatchString(s)
}

// IsValidUsername reports whether s is 3 to 16 letters, digits or underscores.
func IsValidUsername(s string) bool {
	return usernameRegex.MatchString(s)
}

// IsURL reports whether s is a host with a TLD, optionally prefixed by http://
// or https:// and followed by a port and a path.
func IsURL(s string) bool {
	return urlRegex.MatchString(s)
}

// IsCreditCard reports whether s is four groups of four digits joined by the
// same separator, either all spaces or all hyphens.
func IsCreditCard(s string) bool {
	return creditCardRegex.MatchString(s)
}

// IsHashtag reports whether s is # followed by one or more letters or digits.
func IsHashtag(s string) bool {
	return hashtagRegex.MatchString(s)
}

// IsIPAddress reports whether s is a dotted-quad IPv4 address with octets 0-255.
func IsIPAddress(s string) bool {
	return ipAddressRegex.MatchString(s)
}

// IsStrongPassword reports whether s is at least 8 characters drawn only from
// letters, digits and @$!%*?&, and contains at least one of each: lowercase
// letter, uppercase letter, digit and special character.
func IsStrongPassword(s string) bool {
	return passwordCharsetRegex.MatchString(s) &&
		passwordLowerRegex.MatchString(s) &&
		passwordUpperRegex.MatchString(s) &&
		passwordDigitRegex.MatchString(s) &&
		passwordSpecialRegex.MatchString(s)
}
