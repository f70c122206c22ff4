package notation

import (
	"testing"

	"github.com/Pro7ech/symmetric/perm"
	"github.com/stretchr/testify/require"
)

func TestNotation(t *testing.T) {

	params, err := perm.NewParametersFromLiteral(perm.ParametersLiteral{N: 8})
	require.NoError(t, err)
	eval := perm.NewEvaluator(params)

	t.Run("Parse/Cycles", func(t *testing.T) {
		factors, err := Parse("(1 2 4)(3, 5)")
		require.NoError(t, err)
		require.Equal(t, []perm.PermutationLike{perm.Cycle{1, 2, 4}, perm.Cycle{3, 5}}, factors)

		factors, err = Parse("()")
		require.NoError(t, err)
		require.Len(t, factors, 1)
		require.Equal(t, 0, factors[0].(perm.Cycle).Len())
	})

	t.Run("Parse/List", func(t *testing.T) {
		factors, err := Parse("[5, 6, 1, 4, 2]")
		require.NoError(t, err)
		require.Equal(t, []perm.PermutationLike{perm.Cycle{5, 6, 1, 4, 2}}, factors)
	})

	t.Run("Parse/Mapping", func(t *testing.T) {
		factors, err := Parse("{1:2, 2:3, 3:1}")
		require.NoError(t, err)
		require.Equal(t, []perm.PermutationLike{perm.Permutation{1: 2, 2: 3, 3: 1}}, factors)
	})

	t.Run("Parse/Invalid", func(t *testing.T) {
		for _, s := range []string{"", "  ", "(1 2", "{1:2, 1:3}", "[1 2]", "{1:}", "(a b)"} {
			_, err := Parse(s)
			require.Error(t, err, s)
		}
	})

	t.Run("ParseWith/Cycle", func(t *testing.T) {
		x, err := ParseWith(eval, "(5 6 1 4 2)")
		require.NoError(t, err)
		require.Equal(t, perm.Cycle{5, 6, 1, 4, 2}, x)

		transpositions, err := eval.TranspositionDecomp(x)
		require.NoError(t, err)
		require.True(t, transpositions.Equal(perm.Decomposition{{5, 2}, {5, 4}, {5, 1}, {5, 6}}))
	})

	t.Run("ParseWith/Mapping", func(t *testing.T) {
		x, err := ParseWith(eval, "{1:2, 2:3, 3:1}")
		require.NoError(t, err)
		require.Equal(t, perm.Permutation{1: 2, 2: 3, 3: 1, 4: 4, 5: 5, 6: 6, 7: 7, 8: 8}, x)
	})

	t.Run("ParseWith/Product", func(t *testing.T) {
		x, err := ParseWith(eval, "(1 2 4)(3 5)(7 8)")
		require.NoError(t, err)
		want := perm.Permutation{1: 2, 2: 4, 3: 5, 4: 1, 5: 3, 6: 6, 7: 8, 8: 7}
		require.Equal(t, want, x)

		// Not disjoint: (1 2)(2 3) sends 3 to 1.
		x, err = ParseWith(eval, "(1 2)(2 3)")
		require.NoError(t, err)
		require.Equal(t, 1, x.(perm.Permutation)[3])
	})

	t.Run("ParseWith/Malformed", func(t *testing.T) {
		_, err := ParseWith(eval, "(1 9)")
		require.ErrorIs(t, err, perm.ErrOutOfDomain)

		_, err = ParseWith(eval, "{1:2}")
		require.ErrorIs(t, err, perm.ErrNotBijective)

		_, err = ParseWith(eval, "(1 2)(3 3)")
		require.ErrorIs(t, err, perm.ErrRepeatedElement)
	})

	t.Run("Format", func(t *testing.T) {
		require.Equal(t, "()", Format(nil))
		require.Equal(t, "(1 2 4)(3 5)", Format(perm.Decomposition{{1, 2, 4}, {3, 5}}))

		s, err := FormatPermutation(eval, perm.Permutation{1: 2, 2: 4, 3: 5, 4: 1, 5: 3, 6: 6, 7: 8, 8: 7})
		require.NoError(t, err)
		require.Equal(t, "(1 2 4)(3 5)(7 8)", s)

		s, err = FormatPermutation(eval, eval.Identity())
		require.NoError(t, err)
		require.Equal(t, "()", s)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, s := range []string{"(1 4 2 5 6)", "(1 2 4)(3 5)(7 8)", "(2 8)(3 7 6)"} {
			x, err := ParseWith(eval, s)
			require.NoError(t, err)
			have, err := FormatPermutation(eval, x)
			require.NoError(t, err)
			require.Equal(t, s, have)
		}
	})
}
