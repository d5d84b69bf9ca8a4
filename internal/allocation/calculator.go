// internal/allocation/calculator.go

// Package allocation computes how an earning is split across a user's
// buckets. It is pure: no storage access, no side effects.
package allocation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pocketbook/internal/util"
)

var hundred = decimal.NewFromInt(100)

// BucketShare is the slice of a bucket the calculator needs: its identity
// and its current budget percentage.
type BucketShare struct {
	BucketID string
	Budget   decimal.Decimal
}

// Allocation is one bucket's share of an earning. BucketPercentage is the
// budget percentage used to compute Value, recorded so later rescaling of
// the allocation can use the original split rather than whatever the
// bucket's budget has been edited to since.
type Allocation struct {
	BucketID         string
	Value            decimal.Decimal
	BucketPercentage decimal.Decimal
}

// ValidateBudgets checks the earning precondition: at least one bucket, and
// budget percentages summing to exactly 100. No tolerance band.
func ValidateBudgets(buckets []BucketShare) error {
	if len(buckets) == 0 {
		return fmt.Errorf("at least one bucket is required before recording an earning: %w", util.ErrPreconditionFailed)
	}

	total := decimal.Zero
	for _, b := range buckets {
		total = total.Add(b.Budget)
	}
	if !total.Equal(hundred) {
		return fmt.Errorf("total bucket budget percentage is %s, must be 100: %w", total.String(), util.ErrPreconditionFailed)
	}
	return nil
}

// Split distributes value across buckets proportionally to their budget
// percentages. Each allocation value is value * budget / 100, rounded
// half-even to the cent; the sum of allocations therefore matches value to
// within one cent per bucket. Fails if ValidateBudgets fails.
func Split(value decimal.Decimal, buckets []BucketShare) ([]Allocation, error) {
	if err := ValidateBudgets(buckets); err != nil {
		return nil, err
	}

	allocations := make([]Allocation, 0, len(buckets))
	for _, b := range buckets {
		allocations = append(allocations, Allocation{
			BucketID:         b.BucketID,
			Value:            Rescale(value, b.Budget),
			BucketPercentage: b.Budget,
		})
	}
	return allocations, nil
}

// Rescale computes a single allocation value for an earning value and a
// percentage. The earning update path calls this with the allocation's
// stored percentage snapshot, never with the bucket's current budget.
func Rescale(value, percentage decimal.Decimal) decimal.Decimal {
	return value.Mul(percentage).Div(hundred).RoundBank(2)
}
