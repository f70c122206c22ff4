package perm

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrPrecondition    = errors.New("precondition violation")
	ErrOddPermutation  = fmt.Errorf("%w: permutation is odd", ErrPrecondition)
	ErrMalformed       = errors.New("malformed permutation")
	ErrOutOfDomain     = fmt.Errorf("%w: element outside of the domain", ErrMalformed)
	ErrRepeatedElement = fmt.Errorf("%w: repeated element", ErrMalformed)
	ErrNotBijective    = fmt.Errorf("%w: mapping is not a bijection of the domain", ErrMalformed)
)
