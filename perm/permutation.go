// Package perm implements the algebra of the symmetric group on a finite domain {1, ..., n}:
// conversion between mapping and cycle notation, decomposition into disjoint cycles,
// transpositions and 3-cycles, sign, and composition.
package perm

import (
	"fmt"
	"slices"

	"github.com/Pro7ech/symmetric/utils/structs"
	"github.com/google/go-cmp/cmp"
)

// PermutationLike is the sum type accepted by the [Evaluator].
// It is implemented by [Permutation] (explicit mapping) and [Cycle] (cycle notation)
// and can be normalized to a [Permutation] with [Evaluator.ToPermutation].
type PermutationLike interface {
	isPermutationLike()
}

// Permutation is a bijective mapping of the domain onto itself,
// stored as a key -> value pair for every element of the domain.
type Permutation map[int]int

func (Permutation) isPermutationLike() {}

// Apply returns the image of x. Elements absent from the mapping are fixed.
func (p Permutation) Apply(x int) int {
	if y, ok := p[x]; ok {
		return y
	}
	return x
}

// Clone returns a deep copy of the object.
func (p Permutation) Clone() *Permutation {
	if p == nil {
		return nil
	}
	pCpy := make(Permutation, len(p))
	for k, v := range p {
		pCpy[k] = v
	}
	return &pCpy
}

// Equal returns true if both mappings are identical.
func (p Permutation) Equal(other *Permutation) bool {
	if other == nil {
		return false
	}
	return len(p) == len(*other) && cmp.Equal(map[int]int(p), map[int]int(*other))
}

// IsIdentity returns true if the permutation fixes every element.
func (p Permutation) IsIdentity() bool {
	for k, v := range p {
		if k != v {
			return false
		}
	}
	return true
}

// Support returns the elements moved by the permutation, in ascending order.
func (p Permutation) Support() (support []int) {
	support = []int{}
	for k, v := range p {
		if k != v {
			support = append(support, k)
		}
	}
	slices.Sort(support)
	return
}

// Cycle is an ordered sequence of distinct elements mapping each
// element to the next one, the last element being mapped to the first.
// A cycle of length zero or one is the identity.
type Cycle []int

func (Cycle) isPermutationLike() {}

// Len returns the length of the cycle.
func (c Cycle) Len() int {
	return len(c)
}

// Next returns the image of x in the cycle.
// This method panics if x does not belong to the cycle.
func (c Cycle) Next(x int) int {
	i := slices.Index(c, x)
	if i < 0 {
		panic(fmt.Errorf("%w: element %d is not in cycle %v", ErrPrecondition, x, []int(c)))
	}
	return c[(i+1)%len(c)]
}

// Clone returns a deep copy of the object.
func (c Cycle) Clone() *Cycle {
	cCpy := slices.Clone(c)
	return &cCpy
}

// Equal returns true if both cycles list the same elements in the same order.
// Rotations of a cycle are not considered equal, see [Cycle.Canonical].
func (c Cycle) Equal(other *Cycle) bool {
	return other != nil && slices.Equal(c, *other)
}

// Canonical returns the rotation of the cycle starting with its smallest element.
func (c Cycle) Canonical() (canonical Cycle) {
	if len(c) == 0 {
		return Cycle{}
	}
	i := slices.Index(c, slices.Min(c))
	canonical = make(Cycle, 0, len(c))
	canonical = append(canonical, c[i:]...)
	return append(canonical, c[:i]...)
}

// Transpositions returns the transpositions (c0, c(k-1)), (c0, c(k-2)), ..., (c0, c1)
// whose ordered product is the cycle c0, ..., c(k-1).
// Cycles of length smaller than two yield an empty decomposition.
func (c Cycle) Transpositions() (transpositions Decomposition) {
	transpositions = Decomposition{}
	for i := len(c) - 1; i > 0; i-- {
		transpositions = append(transpositions, Cycle{c[0], c[i]})
	}
	return
}

// Decomposition is an ordered sequence of cycles denoting their product.
// See [Evaluator.Product] for the multiplication convention.
type Decomposition = structs.Vector[Cycle]

// Factors converts a slice of permutations or cycles, e.g. a [Decomposition],
// to the variadic arguments of [Evaluator.Product].
func Factors[S ~[]E, E PermutationLike](xs S) (factors []PermutationLike) {
	factors = make([]PermutationLike, len(xs))
	for i := range xs {
		factors[i] = xs[i]
	}
	return
}
