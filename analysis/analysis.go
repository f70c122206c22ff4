// Package analysis bundles the decompositions of a permutation into a single report
// and computes reports for batches of permutations concurrently.
package analysis

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/Pro7ech/symmetric/notation"
	"github.com/Pro7ech/symmetric/perm"
	"github.com/Pro7ech/symmetric/utils/concurrency"
)

// Report gathers the decompositions and invariants of a permutation.
type Report struct {
	Input          string             `json:"input"`
	Cycles         perm.Decomposition `json:"cycles"`
	Transpositions perm.Decomposition `json:"transpositions"`
	Sign           int                `json:"sign"`
	Order          *big.Int           `json:"order"`
	CycleType      []int              `json:"cycle_type"`
	// ThreeCycles is nil for odd permutations.
	ThreeCycles perm.Decomposition `json:"three_cycles,omitempty"`
}

// Analyze returns the [Report] of x.
func Analyze(eval *perm.Evaluator, x perm.PermutationLike) (r Report, err error) {

	if r.Input, err = notation.FormatPermutation(eval, x); err != nil {
		return Report{}, fmt.Errorf("notation.FormatPermutation: %w", err)
	}

	if r.Cycles, err = eval.CycleDecomp(x); err != nil {
		return Report{}, fmt.Errorf("eval.CycleDecomp: %w", err)
	}

	if r.Transpositions, err = eval.TranspositionDecomp(x); err != nil {
		return Report{}, fmt.Errorf("eval.TranspositionDecomp: %w", err)
	}

	if r.Sign, err = eval.Sign(x); err != nil {
		return Report{}, fmt.Errorf("eval.Sign: %w", err)
	}

	if r.Order, err = eval.Order(x); err != nil {
		return Report{}, fmt.Errorf("eval.Order: %w", err)
	}

	if r.CycleType, err = eval.CycleType(x); err != nil {
		return Report{}, fmt.Errorf("eval.CycleType: %w", err)
	}

	if r.ThreeCycles, err = eval.ThreeCycleDecomp(x); err != nil {
		if !errors.Is(err, perm.ErrOddPermutation) {
			return Report{}, fmt.Errorf("eval.ThreeCycleDecomp: %w", err)
		}
		r.ThreeCycles, err = nil, nil
	}

	return
}

// AnalyzeAll returns the reports of the inputs, in the same order.
// At most workers inputs are analyzed at the same time; workers < 1 is treated as 1.
// The first error encountered is returned, along with a nil slice.
func AnalyzeAll(eval *perm.Evaluator, inputs []perm.PermutationLike, workers int) (reports []Report, err error) {

	workers = max(1, min(workers, len(inputs)))

	ids := make([]int, workers)
	for i := range ids {
		ids[i] = i
	}

	pool := concurrency.NewPool(ids)

	reports = make([]Report, len(inputs))

	for i := range inputs {
		pool.Go(func(worker int) (err error) {
			if reports[i], err = Analyze(eval, inputs[i]); err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			return
		})
	}

	if err = pool.Wait(); err != nil {
		return nil, err
	}

	return
}
