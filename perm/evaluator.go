package perm

import (
	"fmt"
)

// Evaluator is a struct that holds the necessary elements to perform
// the operations of the symmetric group on the domain of its [Parameters].
// An Evaluator has no internal buffers and is safe for concurrent use.
type Evaluator struct {
	params Parameters
}

// NewEvaluator instantiates a new [Evaluator] from the given [Parameters].
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{params: params}
}

// GetParameters returns a pointer to the underlying [Parameters].
func (eval Evaluator) GetParameters() *Parameters {
	return &eval.params
}

// Identity returns the permutation fixing every element of the domain.
func (eval Evaluator) Identity() Permutation {
	return eval.params.Identity()
}

// ToPermutation normalizes x to its explicit mapping.
// A [Permutation] is validated and returned as a copy, so that ToPermutation is idempotent.
// A [Cycle] is validated and converted to the mapping that is the identity
// everywhere except on the elements of the cycle, each of which maps to its successor.
func (eval Evaluator) ToPermutation(x PermutationLike) (sigma Permutation, err error) {
	switch x := x.(type) {
	case Permutation:
		if err = eval.checkPermutation(x); err != nil {
			return nil, err
		}
		return *x.Clone(), nil
	case Cycle:
		return eval.Permutation(x)
	default:
		return nil, fmt.Errorf("%w: invalid type %T", ErrMalformed, x)
	}
}

// Permutation converts a cycle to its explicit mapping.
func (eval Evaluator) Permutation(c Cycle) (sigma Permutation, err error) {

	if err = eval.checkCycle(c); err != nil {
		return nil, err
	}

	sigma = eval.params.Identity()
	for i := range c {
		sigma[c[i]] = c[(i+1)%len(c)]
	}

	return
}

// Compose returns the permutation i -> sigma[tau[i]], that is tau is applied first.
func (eval Evaluator) Compose(sigma, tau PermutationLike) (Permutation, error) {

	s, err := eval.ToPermutation(sigma)
	if err != nil {
		return nil, fmt.Errorf("sigma: %w", err)
	}

	t, err := eval.ToPermutation(tau)
	if err != nil {
		return nil, fmt.Errorf("tau: %w", err)
	}

	out := make(Permutation, eval.params.N())
	for i := 1; i <= eval.params.N(); i++ {
		out[i] = s[t[i]]
	}

	return out, nil
}

// Product returns the left fold of [Evaluator.Compose] over xs starting from the identity:
// Product(p1, p2, p3) = Compose(Compose(Compose(id, p1), p2), p3).
// The last factor is applied first, as when reading cycle notation from right to left.
func (eval Evaluator) Product(xs ...PermutationLike) (product Permutation, err error) {
	product = eval.params.Identity()
	for i, x := range xs {
		if product, err = eval.Compose(product, x); err != nil {
			return nil, fmt.Errorf("factor %d: %w", i, err)
		}
	}
	return
}

// Inverse returns the permutation undoing x.
func (eval Evaluator) Inverse(x PermutationLike) (inverse Permutation, err error) {

	var sigma Permutation
	if sigma, err = eval.ToPermutation(x); err != nil {
		return nil, err
	}

	inverse = make(Permutation, len(sigma))
	for k, v := range sigma {
		inverse[v] = k
	}

	return
}

func (eval Evaluator) checkCycle(c Cycle) error {
	seen := make(map[int]bool, len(c))
	for _, x := range c {
		if !eval.params.InDomain(x) {
			return fmt.Errorf("cycle %v: %w: %d not in [1, %d]", []int(c), ErrOutOfDomain, x, eval.params.N())
		}
		if seen[x] {
			return fmt.Errorf("cycle %v: %w: %d", []int(c), ErrRepeatedElement, x)
		}
		seen[x] = true
	}
	return nil
}

func (eval Evaluator) checkPermutation(p Permutation) error {

	if p == nil {
		return fmt.Errorf("%w: nil mapping", ErrMalformed)
	}

	if len(p) != eval.params.N() {
		return fmt.Errorf("%w: %d keys for a domain of size %d", ErrNotBijective, len(p), eval.params.N())
	}

	images := make(map[int]bool, len(p))
	for k, v := range p {
		if !eval.params.InDomain(k) {
			return fmt.Errorf("mapping key: %w: %d not in [1, %d]", ErrOutOfDomain, k, eval.params.N())
		}
		if !eval.params.InDomain(v) {
			return fmt.Errorf("mapping value: %w: %d not in [1, %d]", ErrOutOfDomain, v, eval.params.N())
		}
		if images[v] {
			return fmt.Errorf("%w: %d has several preimages", ErrNotBijective, v)
		}
		images[v] = true
	}

	return nil
}
