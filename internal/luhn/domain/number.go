package domain

import "strings"

// NumericString is a string made only of the ASCII digits '0' to '9'.
// The zero value is the empty number, which is never Luhn-valid.
type NumericString string

// Normalize drops every character of text that is not an ASCII decimal digit.
// It never fails; input without digits yields the empty NumericString.
func Normalize(text string) NumericString {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}

	return NumericString(b.String())
}

// Len returns the number of digits.
func (n NumericString) Len() int {
	return len(n)
}

// IsEmpty reports whether the number holds no digits.
func (n NumericString) IsEmpty() bool {
	return len(n) == 0
}

// DigitSequence holds digit values, index 0 being the most significant digit.
type DigitSequence []int

// Digits returns the digit values of n.
func (n NumericString) Digits() DigitSequence {
	return AppendDigits(make(DigitSequence, 0, len(n)), n)
}

// AppendDigits appends the value of every character of digits to dst and
// returns the extended sequence. digits must hold only ASCII decimal digits.
func AppendDigits[T ~string | ~[]byte](dst DigitSequence, digits T) DigitSequence {
	for i := 0; i < len(digits); i++ {
		dst = append(dst, int(digits[i]-'0'))
	}
	return dst
}

// Body returns every digit except the last one. The empty number has an empty body.
func (n NumericString) Body() NumericString {
	if len(n) == 0 {
		return ""
	}
	return n[:len(n)-1]
}

// CheckChar returns the last digit character, or 0 for the empty number.
func (n NumericString) CheckChar() byte {
	if len(n) == 0 {
		return 0
	}
	return n[len(n)-1]
}

// String returns the digits as a plain string.
func (n NumericString) String() string {
	return string(n)
}
