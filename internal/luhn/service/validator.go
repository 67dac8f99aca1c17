package service

import "github.com/allisson/luhn/internal/luhn/domain"

type validator struct {
	requireIssuer bool
}

// NewValidator creates a Validator. With requireIssuer set, a number must also
// match one of the issuer rules to be valid.
func NewValidator(requireIssuer bool) Validator {
	return &validator{requireIssuer: requireIssuer}
}

// IsValid reports whether text is a valid card number. It never fails; empty or
// malformed input is simply invalid.
func (v *validator) IsValid(text string) bool {
	return validDigits(domain.Normalize(text), v.requireIssuer)
}

// IsValidDigits is IsValid for input that holds only ASCII decimal digits. It
// skips normalization and does not copy digits.
func (v *validator) IsValidDigits(digits []byte) bool {
	return validDigits(digits, v.requireIssuer)
}

// validDigits applies the length, checksum and optional issuer rules to
// normalized digits.
func validDigits[T ~string | ~[]byte](digits T, requireIssuer bool) bool {
	length := len(digits)
	if length < domain.MinCardLength || length > domain.MaxCardLength {
		return false
	}

	var scratch [domain.MaxCardLength]int
	seq := domain.AppendDigits(scratch[:0], digits)
	if !checkDigitOf(seq[:length-1]).Matches(digits[length-1]) {
		return false
	}

	if requireIssuer {
		_, ok := domain.Classify(domain.NumericString(digits))
		return ok
	}
	return true
}

// Explain validates text and records the first rule that failed.
func (v *validator) Explain(text string) domain.ValidationResult {
	n := domain.Normalize(text)
	result := domain.ValidationResult{
		Normalized: n,
		Expected:   domain.NoCheckDigit,
	}

	if n.IsEmpty() {
		result.Reason = domain.ReasonEmpty
		return result
	}

	result.Expected = CheckDigit(n.Body())
	if issuer, ok := domain.Classify(n); ok {
		result.Issuer = issuer
	}

	switch {
	case n.Len() < domain.MinCardLength || n.Len() > domain.MaxCardLength:
		result.Reason = domain.ReasonLength
	case !result.Expected.Matches(n.CheckChar()):
		result.Reason = domain.ReasonChecksum
	case v.requireIssuer && result.Issuer == "":
		result.Reason = domain.ReasonIssuer
	default:
		result.Valid = true
	}

	return result
}

// Classify returns the issuer whose rule matches the digits of text.
func Classify(text string) (domain.Issuer, bool) {
	return domain.Classify(domain.Normalize(text))
}
