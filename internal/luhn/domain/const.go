// Package domain defines the value types of the luhn module: normalized digit
// strings, check digit results, issuer numbering rules and integer ranges.
package domain

// Card number length constraints applied by the validator.
const (
	// MinCardLength is the shortest normalized number that can be valid.
	MinCardLength = 13

	// MaxCardLength is the longest normalized number that can be valid.
	MaxCardLength = 16

	// LuhnCheckFailed is the text rendering of NoCheckDigit.
	LuhnCheckFailed = "Luhn check failed"
)
