package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/stride"
	"github.com/rawbytedev/stride/ops"
)

// Heap-profiles a hot loop over every sequence layout. Only the owning
// arrays should show up as allocation sites.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	type Vertex struct {
		Pos    [3]float32
		Normal [3]float32
		UV     [2]float32
	}
	verts := make([]Vertex, 1<<12)
	for i := range verts {
		verts[i].Pos = [3]float32{float32(i), float32(i) * 2, 0}
		verts[i].UV = [2]float32{float32(i) / float32(len(verts)), 0}
	}
	flat := stride.NewArray[float32](3 * len(verts))
	for i := 0; i < flat.Len(); i++ {
		flat.Set(i, float32(i))
	}
	defer flat.Free()

	var acc float32
	for i := 0; i < 10000; i++ {
		ys := stride.FieldOf(verts, func(v *Vertex) *float32 { return &v.Pos[1] })
		acc += ops.Sum[float32](ys)
		acc += ops.Sum[float32](stride.Stride(flat.ConstView().Slice(1, flat.Len()-1), 3))
		acc += ops.Sum[float32](stride.Iota[float32](len(verts), 0, 0.25))
		u, _ := ops.Max[float32](stride.FieldOf(verts, func(v *Vertex) *float32 { return &v.UV[0] }))
		acc += u
	}
	log.Printf("checksum %g", acc)
	if err := pprof.WriteHeapProfile(f); err != nil {
		log.Fatal(err)
	}
}
