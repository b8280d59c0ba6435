// Package pattern provides a registry of independent, named string predicates
// that classify an input as matching a fixed lexical pattern or not.
//
// Every predicate has the signature func(string) bool, holds no state and
// is safe for concurrent use. Patterns are compiled once when the package is
// initialised and reused for the life of the process.
//
// # Matching
//
// All predicates match the whole string: the pattern must account for every
// character from first to last. A valid value followed by any extra character,
// trailing newline included, is rejected. Character classes are ASCII only.
//
// # Registry
//
// Predicates are reachable directly (IsEmailFormat, IsUSPhone, ...) or by name
// through Lookup and Match:
//
//	ok, err := pattern.Match(pattern.HexColor, "#FFF")
//	if errors.Is(err, pattern.ErrUnknownValidator) {
//	    // name is not registered
//	}
//
// MatchValue accepts untyped input, such as a value decoded from JSON or
// YAML, and reports ErrInvalidArgument when it is not text. Malformed text is
// never an error; it is simply a negative result.
//
// # Available validators
//
//   - alpha_only, all_lowercase, all_uppercase
//   - email_format, url, hashtag, valid_username
//   - us_phone, postal_code, credit_card, ip_address
//   - date_mmddyyyy, time_24h, hex_color
//   - strong_password
package pattern
