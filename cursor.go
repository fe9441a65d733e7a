package stride

import "unsafe"

// Cursor is a copyable handle to a logical position in some data source.
// C is the concrete cursor type itself, so sequences built over a cursor are
// instantiated per layout and never call through an interface value.
//
// Moving a cursor past the bound of the sequence it came from, or reading
// through such a cursor, is undefined. Bounds are a caller contract.
type Cursor[T any, C any] interface {
	// Get returns the element at the current position.
	Get() T
	// At returns the element n positions ahead without moving.
	At(n int) T
	Next() C
	Add(n int) C
	Equal(o C) bool
	// Sub returns the distance c - o in logical positions.
	Sub(o C) int
}

// RefCursor is a Cursor backed by addressable storage.
type RefCursor[T any, C any] interface {
	Cursor[T, C]
	// Ref returns the address of the element n positions ahead.
	Ref(n int) *T
}

// ElemCursor walks contiguous storage one element at a time.
// The address is derived from base+index on dereference only, so an end
// cursor never holds a pointer past the allocation.
type ElemCursor[T any] struct {
	base unsafe.Pointer
	i    int
}

func elemCursorAt[T any](p *T) ElemCursor[T] {
	return ElemCursor[T]{base: unsafe.Pointer(p)}
}

func (c ElemCursor[T]) addr(n int) unsafe.Pointer {
	var zero T
	return unsafe.Add(c.base, (c.i+n)*int(unsafe.Sizeof(zero)))
}

func (c ElemCursor[T]) origin() unsafe.Pointer { return c.base }

func (c ElemCursor[T]) Get() T       { return *(*T)(c.addr(0)) }
func (c ElemCursor[T]) At(n int) T   { return *(*T)(c.addr(n)) }
func (c ElemCursor[T]) Ref(n int) *T { return (*T)(c.addr(n)) }

func (c ElemCursor[T]) Next() ElemCursor[T] { return ElemCursor[T]{c.base, c.i + 1} }

func (c ElemCursor[T]) Add(n int) ElemCursor[T] { return ElemCursor[T]{c.base, c.i + n} }

// uaddr is the effective address as an integer. It never becomes a pointer,
// so it is safe for end cursors too.
func (c ElemCursor[T]) uaddr() uintptr {
	var zero T
	return uintptr(c.base) + uintptr(c.i)*unsafe.Sizeof(zero)
}

// Equal reports whether both cursors address the same element, even when
// they were taken from different views of the same storage. Zero-size
// elements share one address, so for them the index decides.
func (c ElemCursor[T]) Equal(o ElemCursor[T]) bool {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return c.base == o.base && c.i == o.i
	}
	return c.uaddr() == o.uaddr()
}

// Sub returns c - o in elements, measured between effective addresses.
func (c ElemCursor[T]) Sub(o ElemCursor[T]) int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return c.i - o.i
	}
	return int(int64(c.uaddr()-o.uaddr()) / int64(size))
}

// ByteCursor walks memory a fixed number of bytes at a time. The step may be
// smaller, equal to or larger than the size of T; pointing base at a struct
// field and stepping by the struct size reads that field out of every element
// of an array of structs.
type ByteCursor[T any] struct {
	base unsafe.Pointer
	i    int
	step int
}

func (c ByteCursor[T]) addr(n int) unsafe.Pointer {
	return unsafe.Add(c.base, (c.i+n)*c.step)
}

func (c ByteCursor[T]) origin() unsafe.Pointer { return c.base }

func (c ByteCursor[T]) Get() T       { return *(*T)(c.addr(0)) }
func (c ByteCursor[T]) At(n int) T   { return *(*T)(c.addr(n)) }
func (c ByteCursor[T]) Ref(n int) *T { return (*T)(c.addr(n)) }

func (c ByteCursor[T]) Next() ByteCursor[T] { return ByteCursor[T]{c.base, c.i + 1, c.step} }

func (c ByteCursor[T]) Add(n int) ByteCursor[T] { return ByteCursor[T]{c.base, c.i + n, c.step} }

func (c ByteCursor[T]) uaddr() uintptr {
	return uintptr(c.base) + uintptr(c.i*c.step)
}

// Equal compares effective addresses. A zero step (the zero cursor) falls
// back to comparing base and index.
func (c ByteCursor[T]) Equal(o ByteCursor[T]) bool {
	if c.step == 0 || o.step == 0 {
		return c.base == o.base && c.i == o.i
	}
	return c.uaddr() == o.uaddr()
}

// Sub returns c - o in steps, measured between effective addresses.
func (c ByteCursor[T]) Sub(o ByteCursor[T]) int {
	if c.step == 0 {
		return c.i - o.i
	}
	return int(int64(c.uaddr()-o.uaddr()) / int64(c.step))
}

// Step returns the distance in bytes between successive elements.
func (c ByteCursor[T]) Step() int { return c.step }

// FuncCursor produces values by calling f with the current index. Nothing is
// cached: every Get or At calls f again.
type FuncCursor[T any] struct {
	f func(int) T
	i int
}

func (c FuncCursor[T]) Get() T     { return c.f(c.i) }
func (c FuncCursor[T]) At(n int) T { return c.f(c.i + n) }

func (c FuncCursor[T]) Next() FuncCursor[T] { return FuncCursor[T]{c.f, c.i + 1} }

func (c FuncCursor[T]) Add(n int) FuncCursor[T] { return FuncCursor[T]{c.f, c.i + n} }

// Equal compares indices only; funcs are not comparable.
func (c FuncCursor[T]) Equal(o FuncCursor[T]) bool { return c.i == o.i }

func (c FuncCursor[T]) Sub(o FuncCursor[T]) int { return c.i - o.i }

// Index returns the position the cursor will pass to its function.
func (c FuncCursor[T]) Index() int { return c.i }

// StrideCursor advances an inner cursor k positions per step.
type StrideCursor[T any, C Cursor[T, C]] struct {
	inner C
	k     int
}

func (c StrideCursor[T, C]) Get() T     { return c.inner.Get() }
func (c StrideCursor[T, C]) At(n int) T { return c.inner.At(n * c.k) }

func (c StrideCursor[T, C]) Next() StrideCursor[T, C] {
	return StrideCursor[T, C]{c.inner.Add(c.k), c.k}
}

func (c StrideCursor[T, C]) Add(n int) StrideCursor[T, C] {
	return StrideCursor[T, C]{c.inner.Add(n * c.k), c.k}
}

func (c StrideCursor[T, C]) Equal(o StrideCursor[T, C]) bool { return c.inner.Equal(o.inner) }

func (c StrideCursor[T, C]) Sub(o StrideCursor[T, C]) int { return c.inner.Sub(o.inner) / c.k }

// Inner returns the wrapped cursor at the current position.
func (c StrideCursor[T, C]) Inner() C { return c.inner }

func (c StrideCursor[T, C]) origin() unsafe.Pointer { return originOf(c.inner) }

// RefStrideCursor is StrideCursor over addressable storage.
type RefStrideCursor[T any, C RefCursor[T, C]] struct {
	inner C
	k     int
}

func (c RefStrideCursor[T, C]) Get() T       { return c.inner.Get() }
func (c RefStrideCursor[T, C]) At(n int) T   { return c.inner.At(n * c.k) }
func (c RefStrideCursor[T, C]) Ref(n int) *T { return c.inner.Ref(n * c.k) }

func (c RefStrideCursor[T, C]) Next() RefStrideCursor[T, C] {
	return RefStrideCursor[T, C]{c.inner.Add(c.k), c.k}
}

func (c RefStrideCursor[T, C]) Add(n int) RefStrideCursor[T, C] {
	return RefStrideCursor[T, C]{c.inner.Add(n * c.k), c.k}
}

func (c RefStrideCursor[T, C]) Equal(o RefStrideCursor[T, C]) bool {
	return c.inner.Equal(o.inner)
}

func (c RefStrideCursor[T, C]) Sub(o RefStrideCursor[T, C]) int {
	return c.inner.Sub(o.inner) / c.k
}

func (c RefStrideCursor[T, C]) Inner() C { return c.inner }

func (c RefStrideCursor[T, C]) origin() unsafe.Pointer { return originOf(c.inner) }

func originOf(c any) unsafe.Pointer {
	if o, ok := c.(originer); ok {
		return o.origin()
	}
	return nil
}

var _ RefCursor[int, ElemCursor[int]] = ElemCursor[int]{}
var _ RefCursor[int, ByteCursor[int]] = ByteCursor[int]{}
var _ Cursor[int, FuncCursor[int]] = FuncCursor[int]{}
var _ Cursor[int, StrideCursor[int, FuncCursor[int]]] = StrideCursor[int, FuncCursor[int]]{}
var _ RefCursor[int, RefStrideCursor[int, ElemCursor[int]]] = RefStrideCursor[int, ElemCursor[int]]{}
