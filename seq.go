package stride

import (
	"fmt"
	"iter"
	"unsafe"
)

// Sequence is the query surface shared by every variant. Algorithms take a
// type parameter constrained by it so each layout gets its own instantiation.
type Sequence[T any] interface {
	Len() int
	At(i int) T
}

// Mutable is a Sequence whose elements can be written.
type Mutable[T any] interface {
	Sequence[T]
	Set(i int, v T)
}

// ConstSeq is a read-only bounded sequence: a start cursor plus a length.
// The cursor is valid for exactly Len() forward steps.
type ConstSeq[T any, C Cursor[T, C]] struct {
	begin C
	n     int
}

// NewConstSeq wraps a start cursor and a length.
func NewConstSeq[T any, C Cursor[T, C]](begin C, n int) ConstSeq[T, C] {
	return ConstSeq[T, C]{begin: begin, n: n}
}

func (s ConstSeq[T, C]) Len() int    { return s.n }
func (s ConstSeq[T, C]) Empty() bool { return s.n == 0 }
func (s ConstSeq[T, C]) Begin() C    { return s.begin }

// End is always Begin advanced by Len; it is never stored.
func (s ConstSeq[T, C]) End() C { return s.begin.Add(s.n) }

// At returns element i. There is no bounds check outside debug builds.
func (s ConstSeq[T, C]) At(i int) T {
	if debug {
		s.assertIndex(i)
	}
	return s.begin.At(i)
}

// Checked is At with a bounds check.
func (s ConstSeq[T, C]) Checked(i int) (T, error) {
	if uint(i) >= uint(s.n) {
		var zero T
		return zero, fmt.Errorf("Seq.Checked(%d) len %d: %w", i, s.n, ErrOutOfRange)
	}
	return s.begin.At(i), nil
}

// Slice returns elements [off, off+n) without copying.
func (s ConstSeq[T, C]) Slice(off, n int) ConstSeq[T, C] {
	if debug {
		s.assertRange(off, n)
	}
	return ConstSeq[T, C]{begin: s.begin.Add(off), n: n}
}

// CheckedSlice is Slice with a range check.
func (s ConstSeq[T, C]) CheckedSlice(off, n int) (ConstSeq[T, C], error) {
	if !inRange(off, n, s.n) {
		return ConstSeq[T, C]{}, fmt.Errorf("Seq.CheckedSlice(%d,%d) len %d: %w", off, n, s.n, ErrOutOfRange)
	}
	return ConstSeq[T, C]{begin: s.begin.Add(off), n: n}, nil
}

// All yields index/value pairs from Begin to End.
func (s ConstSeq[T, C]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c := s.begin
		for i := 0; i < s.n; i++ {
			if !yield(i, c.Get()) {
				return
			}
			c = c.Next()
		}
	}
}

// Values yields the elements from Begin to End.
func (s ConstSeq[T, C]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c, end := s.begin, s.End(); !c.Equal(end); c = c.Next() {
			if !yield(c.Get()) {
				return
			}
		}
	}
}

// CopyTo copies min(Len, len(dst)) elements into dst and returns the count.
func (s ConstSeq[T, C]) CopyTo(dst []T) int {
	n := min(s.n, len(dst))
	c := s.begin
	for i := 0; i < n; i++ {
		dst[i] = c.Get()
		c = c.Next()
	}
	return n
}

// Collect copies the sequence into a new slice.
func (s ConstSeq[T, C]) Collect() []T {
	out := make([]T, s.n)
	s.CopyTo(out)
	return out
}

// originer is implemented by cursors that address storage, so debug builds
// can tell whether that storage belonged to a freed Array.
type originer interface {
	origin() unsafe.Pointer
}

func assertLive(c any) {
	if o, ok := c.(originer); ok && isFreed(o.origin()) {
		panic("stride: access through a view of a freed Array")
	}
}

func (s ConstSeq[T, C]) assertIndex(i int) {
	assertLive(s.begin)
	if uint(i) >= uint(s.n) {
		panic(fmt.Sprintf("stride: index %d out of range [0:%d]", i, s.n))
	}
}

func (s ConstSeq[T, C]) assertRange(off, n int) {
	assertLive(s.begin)
	if !inRange(off, n, s.n) {
		panic(fmt.Sprintf("stride: slice [%d:%d] out of range [0:%d]", off, off+n, s.n))
	}
}

func inRange(off, n, size int) bool {
	return off >= 0 && n >= 0 && off <= size && n <= size-off
}

// Seq is a bounded sequence over addressable storage. It carries the whole
// read-only surface of ConstSeq and adds writes.
type Seq[T any, C RefCursor[T, C]] struct {
	ConstSeq[T, C]
}

// NewSeq wraps a start cursor and a length.
func NewSeq[T any, C RefCursor[T, C]](begin C, n int) Seq[T, C] {
	return Seq[T, C]{ConstSeq[T, C]{begin: begin, n: n}}
}

// Ref returns the address of element i.
func (s Seq[T, C]) Ref(i int) *T {
	if debug {
		s.assertIndex(i)
	}
	return s.begin.Ref(i)
}

// Set writes v to element i. There is no bounds check outside debug builds.
func (s Seq[T, C]) Set(i int, v T) {
	if debug {
		s.assertIndex(i)
	}
	*s.begin.Ref(i) = v
}

// CheckedSet is Set with a bounds check.
func (s Seq[T, C]) CheckedSet(i int, v T) error {
	if uint(i) >= uint(s.n) {
		return fmt.Errorf("Seq.CheckedSet(%d) len %d: %w", i, s.n, ErrOutOfRange)
	}
	*s.begin.Ref(i) = v
	return nil
}

// Slice returns a mutable window [off, off+n) sharing storage with s.
func (s Seq[T, C]) Slice(off, n int) Seq[T, C] {
	return Seq[T, C]{s.ConstSeq.Slice(off, n)}
}

// CheckedSlice is Slice with a range check.
func (s Seq[T, C]) CheckedSlice(off, n int) (Seq[T, C], error) {
	cs, err := s.ConstSeq.CheckedSlice(off, n)
	if err != nil {
		return Seq[T, C]{}, err
	}
	return Seq[T, C]{cs}, nil
}

// Const drops write access.
func (s Seq[T, C]) Const() ConstSeq[T, C] { return s.ConstSeq }

// Refs yields the address of each element in order.
func (s Seq[T, C]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		c := s.begin
		for i := 0; i < s.n; i++ {
			if !yield(i, c.Ref(0)) {
				return
			}
			c = c.Next()
		}
	}
}
