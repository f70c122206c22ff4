// Package notation parses and prints permutations in cycle notation ("(1 2 4)(3 5)"),
// mapping notation ("{1:2, 2:4, 4:1}") and list notation ("[5, 6, 1, 4, 2]").
package notation

import (
	"strconv"
	"strings"

	"github.com/Pro7ech/symmetric/perm"
	"github.com/pkg/errors"
)

// Parse parses s and returns its factors in written order.
// A mapping yields a single [perm.Permutation] holding only the listed pairs,
// a list yields a single [perm.Cycle] and cycle notation yields one [perm.Cycle] per
// parenthesized group. The factors are not validated against any domain, see [ParseWith].
func Parse(s string) (factors []perm.PermutationLike, err error) {

	if strings.TrimSpace(s) == "" {
		return nil, errors.New("cannot parse empty expression")
	}

	expr, err := parseExpression.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse %q", s)
	}

	switch {
	case expr.Mapping != nil:

		p := perm.Permutation{}
		for _, kv := range expr.Mapping.Pairs {
			if _, ok := p[kv.Key]; ok {
				return nil, errors.Errorf("cannot parse %q: duplicate key %d", s, kv.Key)
			}
			p[kv.Key] = kv.Value
		}

		return []perm.PermutationLike{p}, nil

	case expr.List != nil:
		return []perm.PermutationLike{perm.Cycle(expr.List.Elements)}, nil

	default:

		factors = make([]perm.PermutationLike, len(expr.Cycles))
		for i, c := range expr.Cycles {
			factors[i] = perm.Cycle(c.Elements)
		}

		return factors, nil
	}
}

// ParseWith parses s and validates it against the domain of eval.
//
// A single cycle is returned as a [perm.Cycle], so that it keeps its written order.
// A mapping is completed with fixed points for the unlisted elements of the domain.
// A product of several cycles is multiplied with [perm.Evaluator.Product] and
// returned as a [perm.Permutation].
func ParseWith(eval *perm.Evaluator, s string) (x perm.PermutationLike, err error) {

	factors, err := Parse(s)
	if err != nil {
		return nil, err
	}

	params := eval.GetParameters()

	for i := range factors {
		if p, ok := factors[i].(perm.Permutation); ok {
			for _, e := range params.Domain() {
				if _, ok := p[e]; !ok {
					p[e] = e
				}
			}
		}
	}

	if len(factors) == 1 {
		if _, err = eval.ToPermutation(factors[0]); err != nil {
			return nil, errors.Wrapf(err, "invalid permutation %q", s)
		}
		return factors[0], nil
	}

	var product perm.Permutation
	if product, err = eval.Product(factors...); err != nil {
		return nil, errors.Wrapf(err, "invalid permutation %q", s)
	}

	return product, nil
}

// Format returns the cycle notation of a sequence of cycles, e.g. "(1 2 4)(3 5)".
// The empty sequence is printed as "()".
func Format(cycles perm.Decomposition) string {

	if len(cycles) == 0 {
		return "()"
	}

	var sb strings.Builder
	for _, c := range cycles {
		sb.WriteByte('(')
		for i, e := range c {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(e))
		}
		sb.WriteByte(')')
	}

	return sb.String()
}

// FormatPermutation returns the cycle notation of the disjoint cycle decomposition of x.
func FormatPermutation(eval *perm.Evaluator, x perm.PermutationLike) (string, error) {
	cycles, err := eval.CycleDecomp(x)
	if err != nil {
		return "", err
	}
	return Format(cycles), nil
}
