// Package stride gives one indexing and traversal surface to sequences of
// fixed-size elements regardless of where they live:
//
//   - Array owns contiguous storage.
//   - View and ConstView borrow contiguous storage.
//   - ConstStride and MutStride take every k-th element of another sequence.
//   - MemStride and ConstMemStride read values a fixed number of bytes apart,
//     such as one field of an interleaved vertex buffer.
//   - FuncArray computes element i by calling a function.
//
// All variants are instantiations of two generic bases, ConstSeq and Seq,
// over a concrete Cursor type, so algorithms written once against Sequence
// or Mutable are compiled per layout instead of dispatching through an
// interface.
//
// Indexing is unchecked for speed: reading outside [0, Len()) is undefined.
// Checked, CheckedSet and CheckedSlice validate bounds and return
// ErrOutOfRange; building with -tags stridedebug adds assertions to the
// unchecked accessors as well.
//
// Nothing here is safe for concurrent mutation. Views, slices and strides
// borrow the storage of their source and must not outlive it. With
// -tags stridedebug, indexing or slicing a view of an Array after its Free
// panics; views of memory the package did not allocate, and FieldOf or
// BytesAs views into an Array's interior, are not tracked.
package stride

var (
	_ Mutable[int]  = View[int]{}
	_ Sequence[int] = ConstView[int]{}
	_ Mutable[int]  = (*Array[int])(nil)
	_ Mutable[int]  = MemStride[int]{}
	_ Sequence[int] = ConstMemStride[int]{}
	_ Sequence[int] = FuncArray[int]{}
	_ Sequence[int] = ConstStride[int, ElemCursor[int]]{}
	_ Mutable[int]  = MutStride[int, ElemCursor[int]]{}
)
