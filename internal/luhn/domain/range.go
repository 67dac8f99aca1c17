package domain

import "strconv"

// Range is a closed interval of integers. A Range with Start greater than End
// is empty.
type Range struct {
	Start int64
	End   int64
}

// ParseRange parses both bounds as base-10 int64 values. Surrounding text is
// not trimmed; a bound that does not parse fails with *ParseError.
func ParseRange(start, end string) (Range, error) {
	s, err := strconv.ParseInt(start, 10, 64)
	if err != nil {
		return Range{}, &ParseError{Field: "start", Input: start, Err: err}
	}

	e, err := strconv.ParseInt(end, 10, 64)
	if err != nil {
		return Range{}, &ParseError{Field: "end", Input: end, Err: err}
	}

	return Range{Start: s, End: e}, nil
}

// Empty reports whether the range holds no integers.
func (r Range) Empty() bool {
	return r.Start > r.End
}

// LastOffset returns End-Start as an unsigned value, which does not overflow
// for any non-empty range. It is zero for empty ranges.
func (r Range) LastOffset() uint64 {
	if r.Empty() {
		return 0
	}
	return uint64(r.End) - uint64(r.Start)
}

// At returns the integer at offset off from Start.
func (r Range) At(off uint64) int64 {
	return int64(uint64(r.Start) + off)
}
