// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/luhn/internal/errors"
	"github.com/allisson/luhn/internal/luhn/domain"
)

// metricNameRegex matches a valid Prometheus metric name prefix
var metricNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// MetricName validates a Prometheus-compatible metric namespace
var MetricName = validation.NewStringRuleWithError(
	func(s string) bool {
		return metricNameRegex.MatchString(s)
	},
	validation.NewError("validation_metric_name", "must be a valid metric name"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// IssuerName validates that a string names one of the known issuers
var IssuerName = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_issuer_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if _, err := domain.ParseIssuer(s); err != nil {
		return validation.NewError("validation_issuer", "must be one of "+issuerList())
	}
	return nil
})

// issuerList renders the known issuer identifiers in classification order
func issuerList() string {
	rules := domain.IssuerRules()
	names := make([]string, len(rules))
	for i, rule := range rules {
		names[i] = rule.Issuer.String()
	}
	return strings.Join(names, ", ")
}
