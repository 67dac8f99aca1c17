package service

import "github.com/allisson/luhn/internal/luhn/domain"

// DigitSum returns the Luhn-weighted sum of body, which must not include the
// check digit. Walking from the rightmost digit, every second digit is doubled,
// starting with the rightmost one. A doubled value above 9 is reduced to the sum
// of its two digits.
func DigitSum(body domain.NumericString) int {
	return weightedSum(body.Digits())
}

// CheckDigit returns the digit that completes body. When the weighted sum is
// already a multiple of 10 it returns domain.NoCheckDigit instead of '0'.
func CheckDigit(body domain.NumericString) domain.CheckResult {
	return checkDigitOf(body.Digits())
}

func weightedSum(digits domain.DigitSequence) int {
	sum := 0
	length := len(digits)

	for i := 0; i < length; i++ {
		digit := digits[length-1-i]

		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit = digit%10 + 1
			}
		}

		sum += digit
	}

	return sum
}

func checkDigitOf(body domain.DigitSequence) domain.CheckResult {
	sum := weightedSum(body)
	if sum%10 == 0 {
		return domain.NoCheckDigit
	}
	return domain.NewCheckDigit(10 - sum%10)
}
