package structs

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Vector is a struct wrapping a slice of components of type T.
// T can be:
//   - uint, uint64, uint32, uint16, uint8/byte, int, int64, int32, int16, int8, float64, float32.
//   - Or any object that implements Cloner or Equatable depending on
//     the method called.
type Vector[T any] []T

// Size returns the size of the receiver.
func (v Vector[T]) Size() int {
	return len(v)
}

// Clone returns a deep copy of the object.
// If T is not a primitive type, this method requires that T implements Cloner.
func (v Vector[T]) Clone() (vcpy Vector[T]) {

	if v == nil {
		return nil
	}

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32:
		vcpy = Vector[T](make([]T, len(v)))
		copy(vcpy, v)
	default:
		if _, isClonable := any(&t).(Cloner[T]); !isClonable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Cloner[T])))
		}

		vcpy = Vector[T](make([]T, len(v)))
		for i := range v {
			vcpy[i] = *any(&v[i]).(Cloner[T]).Clone()
		}
	}

	return
}

// Equal returns true if the receiver and other have the same size
// and their components are pairwise equal.
// If T is not a primitive type, this method requires that T implements Equatable.
func (v Vector[T]) Equal(other Vector[T]) bool {

	if len(v) != len(other) {
		return false
	}

	var t T
	switch any(t).(type) {
	case uint, uint64, uint32, uint16, uint8, int, int64, int32, int16, int8, float64, float32:
		for i := range v {
			if !cmp.Equal(v[i], other[i]) {
				return false
			}
		}
	default:
		if _, isEquatable := any(&t).(Equatable[T]); !isEquatable {
			panic(fmt.Errorf("component of type %T does not comply to %T", t, new(Equatable[T])))
		}

		for i := range v {
			if !any(&v[i]).(Equatable[T]).Equal(&other[i]) {
				return false
			}
		}
	}

	return true
}

// Concat returns a new vector holding the components of the
// receiver followed by the components of each of the others.
// Components are not deep-copied.
func (v Vector[T]) Concat(others ...Vector[T]) (out Vector[T]) {
	size := len(v)
	for i := range others {
		size += len(others[i])
	}
	out = make(Vector[T], 0, size)
	out = append(out, v...)
	for i := range others {
		out = append(out, others[i]...)
	}
	return
}
