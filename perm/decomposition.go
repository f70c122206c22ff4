package perm

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/Pro7ech/symmetric/utils/bignum"
	"github.com/emirpasic/gods/sets/treeset"
)

// Parity is the parity of a permutation.
type Parity int

const (
	Even = Parity(1)
	Odd  = Parity(-1)
)

func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// CycleDecomp returns the disjoint cycles of length greater than one whose product is x.
//
// Each orbit starts at the smallest element not yet visited and lists its elements
// in the order they are visited, so that the output is deterministic.
// The identity yields an empty decomposition.
func (eval Evaluator) CycleDecomp(x PermutationLike) (cycles Decomposition, err error) {

	var sigma Permutation
	if sigma, err = eval.ToPermutation(x); err != nil {
		return nil, err
	}

	domain := eval.params.Domain()
	elements := make([]interface{}, len(domain))
	for i := range domain {
		elements[i] = domain[i]
	}

	remaining := treeset.NewWithIntComparator(elements...)

	cycles = Decomposition{}

	for it := remaining.Iterator(); it.First(); it = remaining.Iterator() {

		start := it.Value().(int)

		cycle := Cycle{start}
		for next := sigma[start]; next != start; next = sigma[next] {
			cycle = append(cycle, next)
		}

		for _, e := range cycle {
			remaining.Remove(e)
		}

		if len(cycle) > 1 {
			cycles = append(cycles, cycle)
		}
	}

	return
}

// TranspositionDecomp returns a sequence of transpositions whose ordered product is x.
//
// A [Cycle] c0, ..., c(k-1) is decomposed as (c0, c(k-1)), (c0, c(k-2)), ..., (c0, c1).
// A [Permutation] is first decomposed into disjoint cycles (see [Evaluator.CycleDecomp]),
// and the decompositions of the cycles are concatenated in that order.
func (eval Evaluator) TranspositionDecomp(x PermutationLike) (transpositions Decomposition, err error) {

	switch x := x.(type) {
	case Cycle:

		if err = eval.checkCycle(x); err != nil {
			return nil, err
		}

		return x.Transpositions(), nil

	default:

		var cycles Decomposition
		if cycles, err = eval.CycleDecomp(x); err != nil {
			return nil, err
		}

		transpositions = Decomposition{}
		for _, c := range cycles {
			transpositions = append(transpositions, c.Transpositions()...)
		}

		return
	}
}

// Sign returns (-1)^k where k is the number of transpositions
// returned by [Evaluator.TranspositionDecomp].
func (eval Evaluator) Sign(x PermutationLike) (sign int, err error) {
	var parity Parity
	if parity, err = eval.Parity(x); err != nil {
		return 0, err
	}
	return int(parity), nil
}

// Parity returns the parity of x.
func (eval Evaluator) Parity(x PermutationLike) (Parity, error) {
	transpositions, err := eval.TranspositionDecomp(x)
	if err != nil {
		return 0, err
	}
	if len(transpositions)&1 == 1 {
		return Odd, nil
	}
	return Even, nil
}

// CycleType returns the lengths of the disjoint cycles of x
// of length greater than one, in decreasing order.
func (eval Evaluator) CycleType(x PermutationLike) (lengths []int, err error) {

	var cycles Decomposition
	if cycles, err = eval.CycleDecomp(x); err != nil {
		return nil, err
	}

	lengths = make([]int, len(cycles))
	for i := range cycles {
		lengths[i] = cycles[i].Len()
	}

	slices.Sort(lengths)
	slices.Reverse(lengths)

	return
}

// Order returns the smallest k > 0 such that x^k is the identity,
// which is the least common multiple of the lengths of its disjoint cycles.
func (eval Evaluator) Order(x PermutationLike) (order *big.Int, err error) {

	var lengths []int
	if lengths, err = eval.CycleType(x); err != nil {
		return nil, err
	}

	return bignum.LCMOf(lengths...), nil
}
