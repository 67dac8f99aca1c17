package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/allisson/luhn/internal/luhn/domain"
)

// maxGenerateAttempts bounds the redraws when a body has no check digit.
const maxGenerateAttempts = 64

type numberGenerator struct{}

// NewNumberGenerator creates a generator of random card numbers that follow an
// issuer's numbering rule and pass validation. Randomness comes from crypto/rand.
func NewNumberGenerator() NumberGenerator {
	return &numberGenerator{}
}

// Generate picks one of the issuer's templates, fills the digits after the
// prefix at random and appends the check digit. Bodies whose weighted sum is a
// multiple of 10 have no check digit and are drawn again.
func (g *numberGenerator) Generate(issuer domain.Issuer) (string, error) {
	rule, err := domain.RuleFor(issuer)
	if err != nil {
		return "", err
	}

	n, err := randomInt(len(rule.Templates))
	if err != nil {
		return "", err
	}
	tmpl := rule.Templates[n]

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		body, err := randomBody(tmpl.Prefix, tmpl.Length-1)
		if err != nil {
			return "", err
		}

		check := CheckDigit(body)
		if c, ok := check.Digit(); ok {
			return string(body) + string(c), nil
		}
	}

	return "", fmt.Errorf("no check digit found for %s after %d attempts", issuer, maxGenerateAttempts)
}

// randomBody returns prefix followed by random digits up to length.
func randomBody(prefix string, length int) (domain.NumericString, error) {
	if len(prefix) >= length {
		return "", fmt.Errorf("%w: %q leaves no room for random digits", domain.ErrInvalidPrefix, prefix)
	}

	body := make([]byte, length)
	copy(body, prefix)

	for i := len(prefix); i < length; i++ {
		d, err := randomInt(10)
		if err != nil {
			return "", err
		}
		body[i] = byte('0' + d)
	}

	return domain.NumericString(body), nil
}

func randomInt(upper int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(upper)))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random digit: %w", err)
	}
	return int(n.Int64()), nil
}
