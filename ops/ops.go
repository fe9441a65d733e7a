// Package ops holds algorithms written once against stride.Sequence and
// stride.Mutable. Each call is instantiated for the concrete sequence type,
// so an owned array, a byte-strided field and a computed range all run the
// same loop without interface dispatch.
package ops

import (
	"github.com/rawbytedev/stride"
	"golang.org/x/exp/constraints"
)

// Number is any type the arithmetic helpers accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds every element of s.
func Sum[T Number, S stride.Sequence[T]](s S) T {
	var acc T
	for i, n := 0, s.Len(); i < n; i++ {
		acc += s.At(i)
	}
	return acc
}

// Dot is the inner product over the shorter of a and b.
func Dot[T Number, A stride.Sequence[T], B stride.Sequence[T]](a A, b B) T {
	var acc T
	for i, n := 0, min(a.Len(), b.Len()); i < n; i++ {
		acc += a.At(i) * b.At(i)
	}
	return acc
}

// Min returns the smallest element; ok is false for an empty sequence.
func Min[T constraints.Ordered, S stride.Sequence[T]](s S) (v T, ok bool) {
	n := s.Len()
	if n == 0 {
		return v, false
	}
	v = s.At(0)
	for i := 1; i < n; i++ {
		if x := s.At(i); x < v {
			v = x
		}
	}
	return v, true
}

// Max returns the largest element; ok is false for an empty sequence.
func Max[T constraints.Ordered, S stride.Sequence[T]](s S) (v T, ok bool) {
	n := s.Len()
	if n == 0 {
		return v, false
	}
	v = s.At(0)
	for i := 1; i < n; i++ {
		if x := s.At(i); x > v {
			v = x
		}
	}
	return v, true
}

// Reduce folds s from the left, starting from init.
func Reduce[T, U any, S stride.Sequence[T]](s S, init U, f func(U, T) U) U {
	acc := init
	for i, n := 0, s.Len(); i < n; i++ {
		acc = f(acc, s.At(i))
	}
	return acc
}

// Equal reports whether a and b have the same length and elements.
func Equal[T comparable, A stride.Sequence[T], B stride.Sequence[T]](a A, b B) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// IndexOf returns the first index holding v, or -1.
func IndexOf[T comparable, S stride.Sequence[T]](s S, v T) int {
	for i, n := 0, s.Len(); i < n; i++ {
		if s.At(i) == v {
			return i
		}
	}
	return -1
}

// Fill writes v to every element of s.
func Fill[T any, S stride.Mutable[T]](s S, v T) {
	for i, n := 0, s.Len(); i < n; i++ {
		s.Set(i, v)
	}
}

// CopyInto writes min(dst.Len(), src.Len()) elements of src into dst and
// returns the count. dst and src must not overlap unless they are the same
// layout with dst starting at or before src.
func CopyInto[T any, D stride.Mutable[T], S stride.Sequence[T]](dst D, src S) int {
	n := min(dst.Len(), src.Len())
	for i := 0; i < n; i++ {
		dst.Set(i, src.At(i))
	}
	return n
}
