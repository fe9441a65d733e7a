package stride

import "unsafe"

// View is a mutable, non-owning window over contiguous storage. It is valid
// only while the storage it points at is; it never extends or ends that
// storage's lifetime as far as its owner is concerned.
type View[T any] = Seq[T, ElemCursor[T]]

// ConstView is the read-only form of View.
type ConstView[T any] = ConstSeq[T, ElemCursor[T]]

// ViewOf views the elements of s in place.
func ViewOf[T any](s []T) View[T] {
	return ViewAt(unsafe.SliceData(s), len(s))
}

// ViewAt views n elements starting at p.
func ViewAt[T any](p *T, n int) View[T] {
	return NewSeq[T](elemCursorAt(p), n)
}

// ConstViewOf views the elements of s in place, read-only.
func ConstViewOf[T any](s []T) ConstView[T] {
	return ConstViewAt(unsafe.SliceData(s), len(s))
}

// ConstViewAt views n elements starting at p, read-only.
func ConstViewAt[T any](p *T, n int) ConstView[T] {
	return NewConstSeq[T](elemCursorAt(p), n)
}

// Unsafe returns the viewed elements as a Go slice sharing the same storage.
func Unsafe[T any](v ConstView[T]) []T {
	if v.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.begin.addr(0)), v.n)
}
