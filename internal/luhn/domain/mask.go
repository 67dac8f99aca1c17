package domain

import "strings"

// Mask keeps the first six and last four digits and replaces the rest with '*'.
// Numbers of ten digits or fewer are fully masked.
func Mask(n NumericString) string {
	length := n.Len()
	if length <= 10 {
		return strings.Repeat("*", length)
	}

	var b strings.Builder
	b.Grow(length)
	b.WriteString(string(n[:6]))
	b.WriteString(strings.Repeat("*", length-10))
	b.WriteString(string(n[length-4:]))

	return b.String()
}
