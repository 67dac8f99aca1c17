package domain

// CheckResult is either a computed check digit or NoCheckDigit.
//
// NoCheckDigit is returned when the weighted sum of the body is already a
// multiple of 10. It never matches a digit character, so a number whose only
// valid check digit would be '0' is rejected.
type CheckResult struct {
	digit byte
	ok    bool
}

// NoCheckDigit is the failure result of check digit generation.
var NoCheckDigit = CheckResult{}

// NewCheckDigit returns the CheckResult holding the digit d. Values outside
// [0,9] yield NoCheckDigit.
func NewCheckDigit(d int) CheckResult {
	if d < 0 || d > 9 {
		return NoCheckDigit
	}
	return CheckResult{digit: byte('0' + d), ok: true}
}

// Digit returns the check digit character and true, or 0 and false for NoCheckDigit.
func (r CheckResult) Digit() (byte, bool) {
	return r.digit, r.ok
}

// Found reports whether r holds a digit.
func (r CheckResult) Found() bool {
	return r.ok
}

// Matches reports whether r holds exactly the digit character c.
func (r CheckResult) Matches(c byte) bool {
	return r.ok && r.digit == c
}

// String renders the digit, or LuhnCheckFailed for NoCheckDigit.
func (r CheckResult) String() string {
	if !r.ok {
		return LuhnCheckFailed
	}
	return string(r.digit)
}
