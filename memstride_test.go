package stride

import (
	"encoding/binary"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/require"
)

type vertex struct {
	Pos   [3]float32
	Color uint32
	UV    [2]float32
}

func makeVertices(n int) []vertex {
	vs := make([]vertex, n)
	for i := range vs {
		f := float32(i)
		vs[i] = vertex{Pos: [3]float32{f, f + 0.5, -f}, Color: uint32(0xff000000 | i), UV: [2]float32{f / 10, 1}}
	}
	return vs
}

func TestFieldOf(t *testing.T) {
	vs := makeVertices(6)
	colors := FieldOf(vs, func(v *vertex) *uint32 { return &v.Color })
	require.Equal(t, len(vs), colors.Len())
	require.Equal(t, int(unsafe.Sizeof(vertex{})), colors.Begin().Step())
	for i := range vs {
		require.Equal(t, vs[i].Color, colors.At(i))
	}

	colors.Set(2, 0x12345678)
	require.Equal(t, uint32(0x12345678), vs[2].Color)

	pos := FieldOf(vs, func(v *vertex) *[3]float32 { return &v.Pos })
	require.Equal(t, [3]float32{4, 4.5, -4}, pos.At(4))

	ys := FieldOf(vs, func(v *vertex) *float32 { return &v.Pos[1] })
	require.Equal(t, float32(5.5), ys.At(5))
}

func TestFieldOfEmpty(t *testing.T) {
	s := FieldOf([]vertex(nil), func(v *vertex) *uint32 { return &v.Color })
	require.True(t, s.Empty())
	require.Empty(t, s.Collect())
}

func TestFieldStrideThenSubrange(t *testing.T) {
	vs := makeVertices(10)
	colors := FieldOf(vs, func(v *vertex) *uint32 { return &v.Color }).Const()
	every := Stride(colors.Slice(1, 9), 4)
	require.Equal(t, []uint32{vs[1].Color, vs[5].Color}, every.Collect())
}

func TestMemStrideAddressing(t *testing.T) {
	condition := func(seed []byte, a, b, c uint8) bool {
		off := 4 * int(a%4)
		step := 4 * (int(b%6) + 1)
		n := int(c % 12)
		buf := make([]byte, off+n*step+8)
		copy(buf, seed)
		s, err := BytesAs[uint32](buf, off, n, step, Options{})
		if err != nil {
			return false
		}
		for i := 0; i < n; i++ {
			want := binary.NativeEndian.Uint32(buf[off+i*step:])
			if s.At(i) != want {
				return false
			}
		}
		return s.Len() == n
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestBytesAsReadsAndWrites(t *testing.T) {
	const step = 12
	buf := make([]byte, 4*step)
	for i := 0; i < 4; i++ {
		binary.NativeEndian.PutUint64(buf[i*step+4:], uint64(i)*1000)
	}
	s, err := BytesAs[uint64](buf, 4, 4, step, Options{})
	require.NoError(t, err)
	require.Equal(t, []uint64{0, 1000, 2000, 3000}, s.Collect())

	s.Set(1, 7)
	require.Equal(t, uint64(7), binary.NativeEndian.Uint64(buf[step+4:]))
}

func TestBytesAsOverlappingStep(t *testing.T) {
	buf := make([]byte, 8)
	for i := 0; i < 4; i++ {
		binary.NativeEndian.PutUint16(buf[2*i:], uint16(i+1))
	}
	pairs, err := BytesAs[[2]uint16](buf, 0, 3, 2, SafeOptions)
	require.NoError(t, err)
	require.Equal(t, [][2]uint16{{1, 2}, {2, 3}, {3, 4}}, pairs.Collect())
}

func TestBytesAsErrors(t *testing.T) {
	buf := make([]byte, 64)

	_, err := BytesAs[*int](buf, 0, 1, 8, Options{})
	require.ErrorIs(t, err, ErrNotPlain)
	_, err = BytesAs[struct {
		A int32
		S string
	}](buf, 0, 1, 24, Options{})
	require.ErrorIs(t, err, ErrNotPlain)

	_, err = BytesAs[uint32](buf, 0, 2, 0, Options{})
	require.ErrorIs(t, err, ErrBadStep)

	_, err = BytesAs[uint32](buf, 60, 2, 4, Options{})
	require.ErrorIs(t, err, ErrShortBuffer)
	_, err = BytesAs[uint64](buf, -1, 1, 8, Options{})
	require.ErrorIs(t, err, ErrShortBuffer)

	_, err = BytesAs[uint32](buf, 1, 2, 4, SafeOptions)
	require.ErrorIs(t, err, ErrMisaligned)
	_, err = BytesAs[uint32](buf, 0, 2, 6, SafeOptions)
	require.ErrorIs(t, err, ErrMisaligned)

	_, err = BytesAs[uint32](buf, 0, 2, 6, Options{})
	require.NoError(t, err)

	_, err = BytesAs[struct{}](make([]byte, 4), 4, 1, 1, Options{})
	require.ErrorIs(t, err, ErrShortBuffer)
	_, err = BytesAs[[0]uint32](nil, 0, 2, 4, SafeOptions)
	require.ErrorIs(t, err, ErrShortBuffer)

	s, err := BytesAs[uint32](buf, 64, 0, 4, SafeOptions)
	require.NoError(t, err)
	require.True(t, s.Empty())
}

func TestMemStrideAtWideStep(t *testing.T) {
	rows := [][4]int32{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	col := ConstMemStrideAt(&rows[0][2], len(rows), int(unsafe.Sizeof(rows[0])))
	require.Equal(t, []int32{3, 7, 11}, col.Collect())
	require.True(t, col.End().Equal(col.Begin().Add(3)))
}
