package domain

import (
	"fmt"
	"regexp"
)

// Issuer names a card numbering scheme.
type Issuer string

const (
	IssuerVisa       Issuer = "visa"
	IssuerMasterCard Issuer = "mastercard"
	IssuerAmex       Issuer = "amex"
	IssuerDiners     Issuer = "diners"
	IssuerDiscover   Issuer = "discover"
	IssuerJCB        Issuer = "jcb"
)

// String returns the issuer identifier.
func (i Issuer) String() string {
	return string(i)
}

// DisplayName returns the human-readable issuer name.
func (i Issuer) DisplayName() string {
	switch i {
	case IssuerVisa:
		return "Visa"
	case IssuerMasterCard:
		return "MasterCard"
	case IssuerAmex:
		return "American Express"
	case IssuerDiners:
		return "Diners Club"
	case IssuerDiscover:
		return "Discover"
	case IssuerJCB:
		return "JCB"
	default:
		return string(i)
	}
}

// NumberTemplate is one prefix and total length an issuer assigns numbers from.
type NumberTemplate struct {
	Prefix string
	Length int
}

// IssuerRule pairs an issuer with the pattern its numbers follow.
type IssuerRule struct {
	Issuer    Issuer
	Templates []NumberTemplate
	pattern   *regexp.Regexp
}

// Match reports whether n follows the rule's length and prefix constraints.
func (r IssuerRule) Match(n NumericString) bool {
	return r.pattern.MatchString(string(n))
}

// issuerRules is ordered; Classify returns the first match.
var issuerRules = []IssuerRule{
	{
		Issuer:    IssuerVisa,
		Templates: []NumberTemplate{{"4", 13}, {"4", 16}},
		pattern:   regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`),
	},
	{
		Issuer: IssuerMasterCard,
		Templates: []NumberTemplate{
			{"51", 16}, {"52", 16}, {"53", 16}, {"54", 16}, {"55", 16},
		},
		pattern: regexp.MustCompile(`^5[1-5][0-9]{14}$`),
	},
	{
		Issuer:    IssuerAmex,
		Templates: []NumberTemplate{{"34", 15}, {"37", 15}},
		pattern:   regexp.MustCompile(`^3[47][0-9]{13}$`),
	},
	{
		Issuer: IssuerDiners,
		Templates: []NumberTemplate{
			{"300", 14}, {"301", 14}, {"302", 14}, {"303", 14}, {"304", 14}, {"305", 14},
			{"36", 14}, {"38", 14},
		},
		pattern: regexp.MustCompile(`^3(?:0[0-5]|[68][0-9])[0-9]{11}$`),
	},
	{
		Issuer:    IssuerDiscover,
		Templates: []NumberTemplate{{"6011", 16}, {"65", 16}},
		pattern:   regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`),
	},
	{
		Issuer:    IssuerJCB,
		Templates: []NumberTemplate{{"2131", 15}, {"1800", 15}, {"35", 16}},
		pattern:   regexp.MustCompile(`^(?:2131|1800|35[0-9]{3})[0-9]{11}$`),
	},
}

// IssuerRules returns the fixed rule set in classification order.
func IssuerRules() []IssuerRule {
	rules := make([]IssuerRule, len(issuerRules))
	copy(rules, issuerRules)
	return rules
}

// Classify returns the issuer of the first rule n matches.
func Classify(n NumericString) (Issuer, bool) {
	for _, rule := range issuerRules {
		if rule.Match(n) {
			return rule.Issuer, true
		}
	}
	return "", false
}

// RuleFor returns the rule of issuer i.
func RuleFor(i Issuer) (IssuerRule, error) {
	for _, rule := range issuerRules {
		if rule.Issuer == i {
			return rule, nil
		}
	}
	return IssuerRule{}, fmt.Errorf("%w: %s", ErrUnknownIssuer, i)
}

// ParseIssuer converts an issuer identifier such as "visa" into an Issuer.
func ParseIssuer(name string) (Issuer, error) {
	rule, err := RuleFor(Issuer(name))
	if err != nil {
		return "", err
	}
	return rule.Issuer, nil
}
