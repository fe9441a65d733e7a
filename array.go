package stride

import "unsafe"

// noCopy makes go vet's copylocks check flag accidental Array copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array owns a fixed-size block of elements. It has the full surface of View
// and adds allocation on construction and a single release through Free.
//
// Arrays are handled by pointer. Copying the struct would alias the storage
// under two owners; use Clone for an independent copy. Views and slices taken
// from an Array borrow its storage and must not be used after Free.
type Array[T any] struct {
	_ noCopy
	Seq[T, ElemCursor[T]]
	data []T
}

// Buffer is an owned block of bytes.
type Buffer = Array[byte]

// NewArray allocates n zero-valued elements. Like make, it panics when n is
// negative or the allocation cannot be satisfied.
func NewArray[T any](n int) *Array[T] {
	return adopt(make([]T, n))
}

// NewBuffer allocates n zeroed bytes.
func NewBuffer(n int) *Buffer { return NewArray[byte](n) }

// ArrayOf copies values into a new Array.
func ArrayOf[T any](values ...T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)
	return adopt(data)
}

// CopyOf materializes any read-only sequence into a new Array.
func CopyOf[T any, C Cursor[T, C]](s ConstSeq[T, C]) *Array[T] {
	return adopt(s.Collect())
}

func adopt[T any](data []T) *Array[T] {
	return &Array[T]{Seq: ViewOf(data), data: data}
}

// View borrows the whole array.
func (a *Array[T]) View() View[T] { return a.Seq }

// ConstView borrows the whole array read-only.
func (a *Array[T]) ConstView() ConstView[T] { return a.Seq.Const() }

// Clone returns a deep copy with its own storage.
func (a *Array[T]) Clone() *Array[T] { return ArrayOf(a.data...) }

// Free drops the storage. It reports whether this call released it; later
// calls are no-ops. Views taken earlier become invalid; the elements are
// zeroed first so a stale view reads zero values instead of old data, and
// with -tags stridedebug indexing such a view panics.
func (a *Array[T]) Free() bool {
	if a.data == nil {
		return false
	}
	if len(a.data) > 0 {
		markFreed(unsafe.Pointer(unsafe.SliceData(a.data)))
	}
	clear(a.data)
	a.data = nil
	a.Seq = Seq[T, ElemCursor[T]]{}
	return true
}

// Freed reports whether Free has released the storage.
func (a *Array[T]) Freed() bool { return a.data == nil }
