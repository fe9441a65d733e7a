package stride

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/rawbytedev/stride/internal/common"
)

// MemStride is a mutable sequence of values a fixed number of bytes apart.
type MemStride[T any] = Seq[T, ByteCursor[T]]

// ConstMemStride is the read-only form of MemStride.
type ConstMemStride[T any] = ConstSeq[T, ByteCursor[T]]

// MemStrideAt reads n values of T starting at p, step bytes apart.
func MemStrideAt[T any](p *T, n, step int) MemStride[T] {
	return NewSeq[T](ByteCursor[T]{base: unsafe.Pointer(p), step: step}, n)
}

// ConstMemStrideAt is the read-only form of MemStrideAt.
func ConstMemStrideAt[T any](p *T, n, step int) ConstMemStride[T] {
	return NewConstSeq[T](ByteCursor[T]{base: unsafe.Pointer(p), step: step}, n)
}

// FieldOf views one field of every element of structs without copying.
// field must return the address of a field inside the struct it is given.
func FieldOf[S, F any](structs []S, field func(*S) *F) MemStride[F] {
	if len(structs) == 0 {
		return MemStride[F]{}
	}
	var zero S
	return MemStrideAt(field(&structs[0]), len(structs), int(unsafe.Sizeof(zero)))
}

// BytesAs reinterprets buf as n values of T, the first at byte off and the
// rest step bytes apart. Unlike the raw constructors it validates the span:
// T must hold no pointers, the span must fit in buf, and with
// opts.CheckAlignment every element must be aligned for T.
//
// The result aliases buf; writes through it show up in buf.
func BytesAs[T any](buf []byte, off, n, step int, opts Options) (MemStride[T], error) {
	var zero T
	t := reflect.TypeFor[T]()
	if !common.IsPlain(t) {
		return MemStride[T]{}, fmt.Errorf("BytesAs[%s]: %w", t, ErrNotPlain)
	}
	if step <= 0 {
		return MemStride[T]{}, fmt.Errorf("BytesAs[%s] step %d: %w", t, step, ErrBadStep)
	}
	if n == 0 {
		return MemStride[T]{}, nil
	}
	size := int(unsafe.Sizeof(zero))
	if !common.SpanFits(len(buf), off, n, step, size) {
		return MemStride[T]{}, fmt.Errorf("BytesAs[%s] off %d n %d step %d len %d: %w",
			t, off, n, step, len(buf), ErrShortBuffer)
	}
	p := unsafe.Pointer(&buf[off])
	if opts.CheckAlignment && !common.Aligned(p, step, unsafe.Alignof(zero)) {
		return MemStride[T]{}, fmt.Errorf("BytesAs[%s] off %d step %d: %w", t, off, step, ErrMisaligned)
	}
	return MemStrideAt((*T)(p), n, step), nil
}
