package service

import (
	"context"
	"strconv"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/luhn/internal/luhn/domain"
)

// cancelCheckInterval is how many candidates a worker tests between context checks.
const cancelCheckInterval = 4096

// digitValidator is implemented by validators that can judge normalized digits
// without converting them to a string.
type digitValidator interface {
	IsValidDigits(digits []byte) bool
}

type rangeCounter struct {
	validator Validator
	digits    digitValidator
	workers   int
	chunkSize uint64
}

// NewRangeCounter creates a RangeCounter that splits a range into chunks of
// chunkSize integers and tests up to workers chunks at a time.
func NewRangeCounter(validator Validator, workers int, chunkSize uint64) RangeCounter {
	if workers < 1 {
		workers = 1
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	digits, _ := validator.(digitValidator)
	return &rangeCounter{
		validator: validator,
		digits:    digits,
		workers:   workers,
		chunkSize: chunkSize,
	}
}

// Count returns how many integers of r are valid once rendered in base 10.
// An empty range counts 0. The scan stops with ctx.Err() when ctx is done.
func (c *rangeCounter) Count(ctx context.Context, r domain.Range) (int64, error) {
	if r.Empty() {
		return 0, nil
	}

	var total atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	last := r.LastOffset()
	for off := uint64(0); ; off += c.chunkSize {
		if gctx.Err() != nil {
			break
		}

		hiOff := last
		if last-off >= c.chunkSize {
			hiOff = off + c.chunkSize - 1
		}
		lo, hi := r.At(off), r.At(hiOff)

		g.Go(func() error {
			n, err := c.countChunk(gctx, lo, hi)
			total.Add(n)
			return err
		})

		if hiOff == last {
			break
		}
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return total.Load(), nil
}

// countChunk scans lo..hi inclusive. A validator that accepts raw digits gets
// the formatted candidate without its sign, which is what normalization keeps.
func (c *rangeCounter) countChunk(ctx context.Context, lo, hi int64) (int64, error) {
	var count int64
	buf := make([]byte, 0, 20)

	for i, seen := lo, 0; ; i, seen = i+1, seen+1 {
		if seen%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return count, err
			}
		}

		buf = strconv.AppendInt(buf[:0], i, 10)
		if c.isValid(buf) {
			count++
		}

		if i == hi {
			return count, nil
		}
	}
}

func (c *rangeCounter) isValid(candidate []byte) bool {
	if c.digits == nil {
		return c.validator.IsValid(string(candidate))
	}
	if candidate[0] == '-' {
		candidate = candidate[1:]
	}
	return c.digits.IsValidDigits(candidate)
}
