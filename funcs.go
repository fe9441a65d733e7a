package stride

import "golang.org/x/exp/constraints"

// FuncArray is a read-only sequence computed on demand with no storage.
type FuncArray[T any] = ConstSeq[T, FuncCursor[T]]

// Generate returns the sequence f(0), f(1), ..., f(n-1). f is called on every
// access; wrap its result if it is expensive and needs memoizing.
func Generate[T any](n int, f func(int) T) FuncArray[T] {
	return NewConstSeq[T](FuncCursor[T]{f: f}, n)
}

// Iota is the arithmetic progression start, start+step, ...
func Iota[T constraints.Integer | constraints.Float](n int, start, step T) FuncArray[T] {
	return Generate(n, func(i int) T { return start + T(i)*step })
}

// Repeat is v repeated n times.
func Repeat[T any](n int, v T) FuncArray[T] {
	return Generate(n, func(int) T { return v })
}

// Random is a pseudo-random stream where element i depends only on seed and
// i, so repeated reads agree and any index is reachable in O(1).
func Random(n int, seed uint64) FuncArray[uint64] {
	return Generate(n, func(i int) uint64 { return splitmix64(seed + uint64(i)*golden) })
}

// RandomFloat64 is Random mapped onto [0, 1).
func RandomFloat64(n int, seed uint64) FuncArray[float64] {
	return Generate(n, func(i int) float64 {
		return float64(splitmix64(seed+uint64(i)*golden)>>11) * 0x1.0p-53
	})
}

// Map applies f to each element of src lazily.
func Map[T, U any, C Cursor[T, C]](src ConstSeq[T, C], f func(T) U) FuncArray[U] {
	begin := src.begin
	return Generate(src.n, func(i int) U { return f(begin.At(i)) })
}

const golden = 0x9e3779b97f4a7c15

func splitmix64(x uint64) uint64 {
	x += golden
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
