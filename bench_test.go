package stride

import "testing"

var sinkF32 float32

func sumSeq[C Cursor[float32, C]](s ConstSeq[float32, C]) float32 {
	var acc float32
	for i := 0; i < s.Len(); i++ {
		acc += s.At(i)
	}
	return acc
}

func BenchmarkSliceBaseline(b *testing.B) {
	data := make([]float32, 4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var acc float32
		for _, v := range data {
			acc += v
		}
		sinkF32 = acc
	}
}

func BenchmarkViewAt(b *testing.B) {
	a := NewArray[float32](4096)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = sumSeq(a.ConstView())
	}
}

func BenchmarkViewCursorWalk(b *testing.B) {
	v := NewArray[float32](4096).ConstView()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var acc float32
		for c, end := v.Begin(), v.End(); !c.Equal(end); c = c.Next() {
			acc += c.Get()
		}
		sinkF32 = acc
	}
}

func BenchmarkFieldStride(b *testing.B) {
	vs := makeVertices(4096)
	ys := FieldOf(vs, func(v *vertex) *float32 { return &v.Pos[1] }).Const()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = sumSeq(ys)
	}
}

func BenchmarkIndexStride(b *testing.B) {
	flat := NewArray[float32](3 * 4096)
	ys := Stride(flat.ConstView().Slice(1, flat.Len()-1), 3)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = sumSeq(ys)
	}
}

func BenchmarkBytesAs(b *testing.B) {
	buf := make([]byte, 16*4096)
	s, err := BytesAs[float32](buf, 4, 4096, 16, SafeOptions)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = sumSeq(s.Const())
	}
}

func BenchmarkGenerate(b *testing.B) {
	s := Iota[float32](4096, 0, 0.5)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkF32 = sumSeq(s)
	}
}

func BenchmarkSubrangeConstruct(b *testing.B) {
	v := NewArray[float32](4096).ConstView()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sub := v.Slice(i%2048, 2048)
		sinkF32 = sub.At(0)
	}
}
