package stride

// ConstStride is every k-th element of another read-only sequence.
type ConstStride[T any, C Cursor[T, C]] = ConstSeq[T, StrideCursor[T, C]]

// MutStride is every k-th element of a mutable sequence.
type MutStride[T any, C RefCursor[T, C]] = Seq[T, RefStrideCursor[T, C]]

// NewStride builds a strided sequence of n elements from a start cursor,
// stepping k source positions per element. k must be positive.
func NewStride[T any, C Cursor[T, C]](begin C, n, k int) ConstStride[T, C] {
	mustStep(k)
	return NewConstSeq[T](StrideCursor[T, C]{inner: begin, k: k}, n)
}

// NewMutStride is NewStride over addressable storage.
func NewMutStride[T any, C RefCursor[T, C]](begin C, n, k int) MutStride[T, C] {
	mustStep(k)
	return NewSeq[T](RefStrideCursor[T, C]{inner: begin, k: k}, n)
}

// Stride picks src[0], src[k], src[2k], ...; the result has src.Len()/k
// elements.
func Stride[T any, C Cursor[T, C]](src ConstSeq[T, C], k int) ConstStride[T, C] {
	mustStep(k)
	return NewStride[T](src.begin, src.n/k, k)
}

// StrideMut is Stride with writes going through to src.
func StrideMut[T any, C RefCursor[T, C]](src Seq[T, C], k int) MutStride[T, C] {
	mustStep(k)
	return NewMutStride[T](src.begin, src.n/k, k)
}

func mustStep(k int) {
	if k <= 0 {
		panic("stride: non-positive stride")
	}
}
