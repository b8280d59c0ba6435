package pattern

import (
	"fmt"
	"slices"
)

// Name identifies a registered validator.
type Name string

const (
	AlphaOnly      Name = "alpha_only"
	AllLowercase   Name = "all_lowercase"
	AllUppercase   Name = "all_uppercase"
	EmailFormat    Name = "email_format"
	USPhone        Name = "us_phone"
	DateMMDDYYYY   Name = "date_mmddyyyy"
	PostalCode     Name = "postal_code"
	HexColor       Name = "hex_color"
	Time24h        Name = "time_24h"
	ValidUsername  Name = "valid_username"
	URL            Name = "url"
	CreditCard     Name = "credit_card"
	Hashtag        Name = "hashtag"
	IPAddress      Name = "ip_address"
	StrongPassword Name = "strong_password"
)

func (n Name) String() string { return string(n) }

// Func is a pure predicate over a string.
type Func func(string) bool

// order is the declaration order returned by Names.
var order = []Name{
	AlphaOnly,
	AllLowercase,
	AllUppercase,
	EmailFormat,
	USPhone,
	DateMMDDYYYY,
	PostalCode,
	HexColor,
	Time24h,
	ValidUsername,
	URL,
	CreditCard,
	Hashtag,
	IPAddress,
	StrongPassword,
}

// registry is never written after init.
var registry = map[Name]Func{
	AlphaOnly:      IsAlphaOnly,
	AllLowercase:   IsAllLowercase,
	AllUppercase:   IsAllUppercase,
	EmailFormat:    IsEmailFormat,
	USPhone:        IsUSPhone,
	DateMMDDYYYY:   IsDateMMDDYYYY,
	PostalCode:     IsPostalCode,
	HexColor:       IsHexColor,
	Time24h:        IsTime24h,
	ValidUsername:  IsValidUsername,
	URL:            IsURL,
	CreditCard:     IsCreditCard,
	Hashtag:        IsHashtag,
	IPAddress:      IsIPAddress,
	StrongPassword: IsStrongPassword,
}

// Lookup returns the predicate registered under name.
func Lookup(name Name) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

// Names returns all registered validator names in declaration order.
func Names() []Name {
	return slices.Clone(order)
}

// ParseName converts a raw identifier into a registered Name.
func ParseName(s string) (Name, error) {
	name := Name(s)
	if _, ok := registry[name]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownValidator, s)
	}
	return name, nil
}

// Match applies the validator registered under name to text.
func Match(name Name, text string) (bool, error) {
	fn, ok := registry[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownValidator, string(name))
	}
	return fn(text), nil
}

// MatchValue is Match for untyped input. Only string and non-nil *string
// values are classified; anything else yields ErrInvalidArgument.
func MatchValue(name Name, v any) (bool, error) {
	fn, ok := registry[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownValidator, string(name))
	}

	switch s := v.(type) {
	case string:
		return fn(s), nil
	case *string:
		if s != nil {
			return fn(*s), nil
		}
	}
	return false, fmt.Errorf("%w: got %T", ErrInvalidArgument, v)
}
