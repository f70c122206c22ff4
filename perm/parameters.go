package perm

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// DefaultN is the domain size substituted when [ParametersLiteral.N] is left unset.
const DefaultN = 8

// ParametersLiteral is a literal representation of the parameters of the symmetric group.
// It has public fields and is used to express unchecked user-defined parameters literally
// into Go programs. The NewParametersFromLiteral function is used to generate the actual
// checked parameters from the literal representation.
//
// If N is left unset, [DefaultN] is substituted at parameter creation.
type ParametersLiteral struct {
	N int `json:",omitempty"`
}

// Parameters represents the checked parameters of the symmetric group on the domain {1, ..., n}.
// Its fields are private and immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	n int
}

// NewParametersFromLiteral instantiates a set of [Parameters] from a [ParametersLiteral].
// It returns the empty parameters Parameters{} and a non-nil error if the specified
// parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	switch {
	case pl.N == 0:
		pl.N = DefaultN
	case pl.N < 0:
		return Parameters{}, fmt.Errorf("invalid parameters: N=%d must be positive", pl.N)
	}

	return Parameters{n: pl.N}, nil
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{N: p.n}
}

// N returns the size of the domain.
func (p Parameters) N() int {
	return p.n
}

// Domain returns the elements of the domain {1, ..., n} in ascending order.
func (p Parameters) Domain() (domain []int) {
	domain = make([]int, p.n)
	for i := range domain {
		domain[i] = i + 1
	}
	return
}

// InDomain returns true if x belongs to the domain.
func (p Parameters) InDomain(x int) bool {
	return x >= 1 && x <= p.n
}

// Identity returns the permutation fixing every element of the domain.
func (p Parameters) Identity() (id Permutation) {
	id = make(Permutation, p.n)
	for i := 1; i <= p.n; i++ {
		id[i] = i
	}
	return
}

// Equal returns true if the receiver and other define the same domain.
func (p Parameters) Equal(other *Parameters) bool {
	return other != nil && cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
