package usecase

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/luhn/internal/validation"
)

// MaxGenerateCount caps how many numbers one Generate call returns.
const MaxGenerateCount = 1000

// GenerateInput contains the parameters for generating test card numbers.
type GenerateInput struct {
	Issuer string
	Count  int
}

// Validate checks if the generate input is valid.
func (i *GenerateInput) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.Issuer,
			validation.Required,
			customValidation.NotBlank,
			customValidation.IssuerName,
		),
		validation.Field(&i.Count,
			validation.Required,
			validation.Min(1),
			validation.Max(MaxGenerateCount),
		),
	)
	return customValidation.WrapValidationError(err)
}
