// Package structs implements helpers to generalize vectors of structs.
package structs

// Equatable is implemented by types that can be compared
// against another instance of the same type.
type Equatable[T any] interface {
	Equal(*T) bool
}

// Cloner is implemented by types that can return a deep copy of themselves.
type Cloner[V any] interface {
	Clone() *V
}
