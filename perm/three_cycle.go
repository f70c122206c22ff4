package perm

import (
	"fmt"
)

// Relation describes how the elements of two transpositions (a, b) and (c, d) overlap.
type Relation int

const (
	// Disjoint means {a, b} and {c, d} share no element.
	Disjoint = Relation(iota)
	// ShareFirstFirst means a = c.
	ShareFirstFirst
	// ShareFirstSecond means a = d.
	ShareFirstSecond
	// ShareSecondFirst means b = c.
	ShareSecondFirst
	// ShareSecondSecond means b = d.
	ShareSecondSecond
	// Identical means {a, b} = {c, d}.
	Identical
)

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case ShareFirstFirst:
		return "ShareFirstFirst"
	case ShareFirstSecond:
		return "ShareFirstSecond"
	case ShareSecondFirst:
		return "ShareSecondFirst"
	case ShareSecondSecond:
		return "ShareSecondSecond"
	case Identical:
		return "Identical"
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Classify returns the [Relation] between the transpositions t0 = (a, b) and t1 = (c, d).
// This method panics if t0 or t1 is not a transposition of two distinct elements.
func Classify(t0, t1 Cycle) Relation {

	checkTransposition(t0)
	checkTransposition(t1)

	a, b, c, d := t0[0], t0[1], t1[0], t1[1]

	switch {
	case (a == c && b == d) || (a == d && b == c):
		return Identical
	case a == c:
		return ShareFirstFirst
	case a == d:
		return ShareFirstSecond
	case b == c:
		return ShareSecondFirst
	case b == d:
		return ShareSecondSecond
	default:
		return Disjoint
	}
}

// Merge rewrites the product of the transpositions t0 = (a, b) and t1 = (c, d)
// as a product of 3-cycles:
//
//	Disjoint          : (a b c)(b c d)
//	ShareFirstFirst   : (a d b)
//	ShareFirstSecond  : (a c b)
//	ShareSecondFirst  : (a b d)
//	ShareSecondSecond : (a b c)
//	Identical         : the empty product
//
// This method panics if t0 or t1 is not a transposition of two distinct elements.
func Merge(t0, t1 Cycle) Decomposition {

	relation := Classify(t0, t1)

	a, b, c, d := t0[0], t0[1], t1[0], t1[1]

	switch relation {
	case Disjoint:
		return Decomposition{{a, b, c}, {b, c, d}}
	case ShareFirstFirst:
		return Decomposition{{a, d, b}}
	case ShareFirstSecond:
		return Decomposition{{a, c, b}}
	case ShareSecondFirst:
		return Decomposition{{a, b, d}}
	case ShareSecondSecond:
		return Decomposition{{a, b, c}}
	default:
		return Decomposition{}
	}
}

// ThreeCycleDecomp returns a sequence of 3-cycles whose ordered product is x.
//
// The transpositions returned by [Evaluator.TranspositionDecomp] are merged
// pairwise, see [Merge]. The method returns an error wrapping [ErrPrecondition]
// if x is not an even permutation.
func (eval Evaluator) ThreeCycleDecomp(x PermutationLike) (cycles Decomposition, err error) {

	var parity Parity
	if parity, err = eval.Parity(x); err != nil {
		return nil, err
	}

	if parity != Even {
		return nil, fmt.Errorf("cannot ThreeCycleDecomp: %w", ErrOddPermutation)
	}

	var transpositions Decomposition
	if transpositions, err = eval.TranspositionDecomp(x); err != nil {
		return nil, err
	}

	// Even parity implies an even number of transpositions.
	if len(transpositions)&1 == 1 {
		panic(fmt.Errorf("invalid transposition decomposition: %d transpositions for an even permutation", len(transpositions)))
	}

	cycles = Decomposition{}
	for i := 0; i < len(transpositions); i += 2 {
		cycles = append(cycles, Merge(transpositions[i], transpositions[i+1])...)
	}

	return
}

func checkTransposition(t Cycle) {
	if len(t) != 2 || t[0] == t[1] {
		panic(fmt.Errorf("%w: %v is not a transposition", ErrPrecondition, []int(t)))
	}
}
