package domain

// Reason explains why a number failed validation.
type Reason string

const (
	ReasonNone     Reason = ""
	ReasonEmpty    Reason = "empty"
	ReasonLength   Reason = "length"
	ReasonChecksum Reason = "checksum"
	ReasonIssuer   Reason = "issuer"
)

// ValidationResult is the outcome of validating one input.
type ValidationResult struct {
	// Normalized holds the digits of the input.
	Normalized NumericString
	// Valid is true when every rule passed.
	Valid bool
	// Reason is the first rule that failed, or ReasonNone when Valid.
	Reason Reason
	// Expected is the check digit computed from the body.
	Expected CheckResult
	// Issuer is set when the number matched an issuer rule.
	Issuer Issuer
}

// Masked returns the normalized number with its middle digits hidden.
func (r ValidationResult) Masked() string {
	return Mask(r.Normalized)
}
