// Package batch classifies many inputs against named validators in one call.
//
// Cases are decoded from YAML (or JSON) documents:
//
//	cases:
//	  - validator: postal_code
//	    text: "12345"
//	  - validator: hex_color
//	    text: "#FFF"
//
// An unquoted scalar such as 12345 decodes as a number and is reported as
// invalid_argument rather than classified.
//
// Run evaluates cases concurrently with a bounded errgroup and preserves the
// input order in its result slice.
package batch
